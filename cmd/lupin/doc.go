// Package lupin provides the command-line interface for the lupin bundle
// scanner. It configures subcommands (scan, detectors), parses flags, and
// executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/adnxy/react-native-lupin/cmd/lupin"
//	func main() { lupin.Execute() }
package lupin
