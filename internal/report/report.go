package report

import (
	"time"

	"github.com/adnxy/react-native-lupin/internal/types"
)

// Meta describes the scanned input.
type Meta struct {
	File            string    `json:"file"`
	SizeBytes       int       `json:"sizeBytes"`
	ScannedAt       time.Time `json:"scannedAt"`
	RuntimeHint     string    `json:"runtimeHint"`
	HasSourceMapURL bool      `json:"hasSourceMapURL"`
}

// Summary aggregates one input's findings.
type Summary struct {
	Total             int                    `json:"total"`
	SeverityBreakdown map[types.Severity]int `json:"severityBreakdown"`
	DisplayedOnScreen int                    `json:"displayedOnScreen"`
	ShowLevel         string                 `json:"showLevel"`
}

// Report is the complete output of one single-bundle scan pass. Whether a
// report blocks is always derived from the findings, never stored.
type Report struct {
	Meta     Meta            `json:"meta"`
	Findings []types.Finding `json:"findings"`
	Summary  Summary         `json:"summary"`
}

// Blocking reports whether any finding meets or exceeds the fail threshold.
func (r Report) Blocking(fail types.Severity) bool {
	return anyAtLeast(r.Findings, fail)
}

// Displayed returns the findings at or above the show threshold.
func (r Report) Displayed(show types.Severity) []types.Finding {
	var out []types.Finding
	for _, f := range r.Findings {
		if f.Severity.AtLeast(show) {
			out = append(out, f)
		}
	}
	return out
}

// RepoInfo is best-effort git attribution for CI reports.
type RepoInfo struct {
	Repo   string `json:"repo,omitempty"`
	Commit string `json:"commit,omitempty"`
	Branch string `json:"branch,omitempty"`
}

// MultiSummary aggregates findings across bundles.
type MultiSummary struct {
	SeverityBreakdown map[types.Severity]int `json:"severityBreakdown"`
	ShowLevel         string                 `json:"showLevel"`
}

// MultiReport merges independent per-bundle reports. Each finding carries its
// source bundle tag.
type MultiReport struct {
	ScannedAt     time.Time       `json:"scannedAt"`
	Bundles       int             `json:"bundles"`
	TotalFindings int             `json:"totalFindings"`
	Findings      []types.Finding `json:"findings"`
	Summary       MultiSummary    `json:"summary"`
	Repo          *RepoInfo       `json:"repo,omitempty"`
}

// Blocking reports whether any bundle's findings meet the fail threshold;
// the per-bundle flags combine with logical OR.
func (m MultiReport) Blocking(fail types.Severity) bool {
	return anyAtLeast(m.Findings, fail)
}

// Displayed returns the findings at or above the show threshold.
func (m MultiReport) Displayed(show types.Severity) []types.Finding {
	var out []types.Finding
	for _, f := range m.Findings {
		if f.Severity.AtLeast(show) {
			out = append(out, f)
		}
	}
	return out
}

func anyAtLeast(fs []types.Finding, th types.Severity) bool {
	for _, f := range fs {
		if f.Severity.AtLeast(th) {
			return true
		}
	}
	return false
}

// Histogram counts findings per severity in a single pass.
func Histogram(fs []types.Finding) map[types.Severity]int {
	h := map[types.Severity]int{}
	for _, f := range fs {
		h[f.Severity]++
	}
	return h
}
