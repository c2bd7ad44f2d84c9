package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/adnxy/react-native-lupin/internal/report"
	"github.com/adnxy/react-native-lupin/internal/rules"
	"github.com/adnxy/react-native-lupin/internal/types"
)

// Defaults for pipeline behavior. Callers override via Options.
const (
	DefaultMaxFindings   = 5000
	DefaultDedupWindow   = 50
	DefaultSnippetRadius = 60
	DefaultValueCap      = 120
)

// Options controls one scan. The zero value plus withDefaults is a usable
// configuration with the built-in registry.
type Options struct {
	Registry      *rules.Registry
	MaxFindings   int
	ShowThreshold types.Severity
	FailThreshold types.Severity
	DedupWindow   int
	SnippetRadius int
	Threads       int
}

func (o Options) withDefaults() Options {
	if o.Registry == nil {
		o.Registry = rules.NewRegistry()
	}
	if o.MaxFindings <= 0 {
		o.MaxFindings = DefaultMaxFindings
	}
	if !o.ShowThreshold.Valid() {
		o.ShowThreshold = types.SevMed
	}
	if !o.FailThreshold.Valid() {
		o.FailThreshold = types.SevMed
	}
	if o.DedupWindow <= 0 {
		o.DedupWindow = DefaultDedupWindow
	}
	if o.SnippetRadius <= 0 {
		o.SnippetRadius = DefaultSnippetRadius
	}
	return o
}

// Scan runs every registered detector over one bundle and produces a report.
// A detector that panics contributes nothing for this input; its error is
// returned alongside the report and the remaining detectors still run. Once
// MaxFindings raw findings are collected, later detectors are not invoked.
func Scan(name string, data []byte, opts Options) (report.Report, []error) {
	opts = opts.withDefaults()
	text := string(data)

	var raw []types.Finding
	var errs []error
	for _, d := range opts.Registry.Detectors() {
		if len(raw) >= opts.MaxFindings {
			break
		}
		matches, err := runDetector(d, text)
		if err != nil {
			errs = append(errs, fmt.Errorf("detector %s on %s: %w", d.ID(), name, err))
			continue
		}
		for _, m := range matches {
			if len(raw) >= opts.MaxFindings {
				break
			}
			raw = append(raw, normalize(d, m, text, opts))
		}
	}

	findings := dedupe(raw, opts.DedupWindow)
	sortFindings(findings)
	hist := report.Histogram(findings)

	displayed := 0
	for _, f := range findings {
		if f.Severity.AtLeast(opts.ShowThreshold) {
			displayed++
		}
	}

	rep := report.Report{
		Meta: report.Meta{
			File:            name,
			SizeBytes:       len(data),
			ScannedAt:       time.Now().UTC(),
			RuntimeHint:     runtimeHint(text),
			HasSourceMapURL: hasSourceMapURL(text),
		},
		Findings: findings,
		Summary: report.Summary{
			Total:             len(findings),
			SeverityBreakdown: hist,
			DisplayedOnScreen: displayed,
			ShowLevel:         string(opts.ShowThreshold),
		},
	}
	return rep, errs
}

// runDetector isolates a single detector: a panic inside Detect becomes an
// error instead of aborting the whole scan.
func runDetector(d rules.Detector, text string) (matches []rules.RawMatch, err error) {
	defer func() {
		if r := recover(); r != nil {
			matches = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return d.Detect(text), nil
}

// sortFindings orders by severity descending, then position ascending. The
// sort is stable so equal findings keep their registry order.
func sortFindings(fs []types.Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].Severity.Rank() != fs[j].Severity.Rank() {
			return fs[i].Severity.Rank() > fs[j].Severity.Rank()
		}
		return fs[i].Position < fs[j].Position
	})
}

// runtimeHint guesses the JS engine/packager that produced the bundle.
func runtimeHint(text string) string {
	switch {
	case strings.Contains(text, "HermesInternal"):
		return "hermes"
	case strings.Contains(text, "__METRO_GLOBAL_PREFIX__") || strings.Contains(text, "__BUNDLE_START_TIME__"):
		return "metro"
	case strings.Contains(text, "__webpack_require__") || strings.Contains(text, "webpackJsonp"):
		return "webpack"
	case strings.Contains(text, "$RefreshReg$"):
		return "dev"
	default:
		return "unknown"
	}
}

func hasSourceMapURL(text string) bool {
	return strings.Contains(text, "//# sourceMappingURL=") ||
		strings.Contains(text, "//@ sourceMappingURL=")
}
