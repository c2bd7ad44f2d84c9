package main

import "github.com/adnxy/react-native-lupin/cmd/lupin"

func main() { lupin.Execute() }
