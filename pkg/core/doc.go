// Package core provides a small, stable facade over lupin's internal engine
// for external integrations. It deliberately re-exports a narrow API surface
// so CI plugins and third-party tools can depend on a stable import path
// without exposing internal implementation packages.
//
// Example:
//
//	data, _ := os.ReadFile("main.jsbundle")
//	rep, _ := core.Scan("main.jsbundle", data, core.Options{})
//	_ = core.MarshalFindings(os.Stdout, rep.Findings)
package core
