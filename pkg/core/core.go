package core

import (
	"github.com/adnxy/react-native-lupin/internal/engine"
	"github.com/adnxy/react-native-lupin/internal/report"
	"github.com/adnxy/react-native-lupin/internal/rules"
	"github.com/adnxy/react-native-lupin/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Options = engine.Options
type Input = engine.Input
type Finding = types.Finding
type Severity = types.Severity
type Report = report.Report
type MultiReport = report.MultiReport

// Scan runs the full detector pipeline over one bundle's bytes.
func Scan(name string, data []byte, opts Options) (Report, []error) {
	return engine.Scan(name, data, opts)
}

// ScanAll scans multiple bundles concurrently and merges the results in
// input order.
func ScanAll(inputs []Input, opts Options) (MultiReport, []error) {
	return engine.ScanAll(inputs, opts)
}

// DetectorIDs returns the built-in detector IDs in registration order.
// This is exposed for convenience to avoid importing internals directly.
func DetectorIDs() []string { return rules.NewRegistry().IDs() }
