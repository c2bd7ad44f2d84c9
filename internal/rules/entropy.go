package rules

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/adnxy/react-native-lupin/internal/types"
)

// Cutoffs for the unformatted-secret heuristic. Long or encoded-looking
// strings need only moderate entropy because natural language rarely matches
// those character classes at length; anything else must clear the higher bar.
const (
	entropyModerate = 4.0
	entropyStrict   = 4.5
	entropyMinLen   = 16
	entropyLongLen  = 20
	entropyMaxLen   = 200
)

var (
	reCandidateLiteral = regexp.MustCompile(`["']([A-Za-z0-9+/=_.:-]{16,200})["']`)
	reBase64Full       = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)
	reHexFull          = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	// dotted/slashed identifiers and short paths, e.g. com.example.app
	rePathish = regexp.MustCompile(`^[A-Za-z0-9_]+(?:[./-][A-Za-z0-9_]+)+$`)
)

// entropyDetector flags quoted string literals whose Shannon entropy suggests
// random key material rather than language or identifiers. The score is
// attached as metadata only; it never changes severity.
type entropyDetector struct{}

func (entropyDetector) ID() string               { return "high_entropy_string" }
func (entropyDetector) Title() string            { return "High-entropy string literal" }
func (entropyDetector) Severity() types.Severity { return types.SevMed }

func (entropyDetector) Detect(text string) []RawMatch {
	var out []RawMatch
	for _, loc := range reCandidateLiteral.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		s := text[start:end]
		if len(s) < entropyLongLen && rePathish.MatchString(s) {
			continue
		}
		h := Entropy(s)
		if !likelySecret(s, h) {
			continue
		}
		out = append(out, RawMatch{
			Index:   start,
			Match:   s,
			Message: "high-entropy string literal, possible unformatted secret",
			Meta: map[string]string{
				"entropy": fmt.Sprintf("%.2f", h),
				"length":  strconv.Itoa(len(s)),
			},
		})
	}
	return out
}

func likelySecret(s string, h float64) bool {
	if h >= entropyStrict {
		return true
	}
	return h >= entropyModerate && (looksEncoded(s) || len(s) >= entropyLongLen)
}

// looksEncoded reports whether the whole string fits a base64 or hex alphabet.
func looksEncoded(s string) bool {
	return reBase64Full.MatchString(s) || reHexFull.MatchString(s)
}

// Entropy returns the Shannon entropy of s in bits per character.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	for _, r := range s {
		count[r]++
	}
	h := 0.0
	n := float64(len([]rune(s)))
	for _, c := range count {
		p := float64(c) / n
		h += -p * math.Log2(p)
	}
	return h
}
