package types

import "fmt"

// Severity is the risk level of a finding. The set is closed and totally
// ordered: info < low < medium < high < critical.
type Severity string

const (
	SevInfo     Severity = "info"
	SevLow      Severity = "low"
	SevMed      Severity = "medium"
	SevHigh     Severity = "high"
	SevCritical Severity = "critical"
)

var sevRank = map[Severity]int{
	SevInfo:     0,
	SevLow:      1,
	SevMed:      2,
	SevHigh:     3,
	SevCritical: 4,
}

// Levels returns all severities in ascending order.
func Levels() []Severity {
	return []Severity{SevInfo, SevLow, SevMed, SevHigh, SevCritical}
}

// Rank returns the position of s in the severity order. Unknown values rank
// below info so they never satisfy a threshold.
func (s Severity) Rank() int {
	if r, ok := sevRank[s]; ok {
		return r
	}
	return -1
}

// Valid reports whether s is one of the five known levels.
func (s Severity) Valid() bool {
	_, ok := sevRank[s]
	return ok
}

// AtLeast reports whether s meets or exceeds the threshold t.
func (s Severity) AtLeast(t Severity) bool {
	return s.Rank() >= t.Rank()
}

// ParseSeverity converts user input into a Severity.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.Valid() {
		return "", fmt.Errorf("unknown severity %q (expected info|low|medium|high|critical)", s)
	}
	return sev, nil
}

// Finding is one normalized, positioned, severity-tagged report of a detected
// pattern in a bundle. Position is a byte offset into the scanned text.
type Finding struct {
	Detector string            `json:"id"`
	Title    string            `json:"title"`
	Severity Severity          `json:"severity"`
	Message  string            `json:"message"`
	Position int               `json:"position"`
	Snippet  string            `json:"snippet"`
	Match    string            `json:"match"`
	Metadata map[string]string `json:"meta,omitempty"`
	Bundle   string            `json:"bundle,omitempty"` // source input in multi-bundle reports
}
