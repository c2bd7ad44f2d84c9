package rules

import (
	"regexp"

	"github.com/adnxy/react-native-lupin/internal/types"
)

const defaultContextRadius = 80

// Rule is a regex-backed Detector. Pattern finds candidate hits; Context, when
// set, is a second pass that must match within ContextRadius bytes around the
// hit (RE2 has no lookaround, so context lives in a separate regex). Exclude
// drops matches that are known noise.
type Rule struct {
	RuleID        string
	Name          string
	Level         types.Severity
	Pattern       *regexp.Regexp
	Context       *regexp.Regexp
	ContextRadius int
	Exclude       *regexp.Regexp
	Note          string
}

func (r *Rule) ID() string               { return r.RuleID }
func (r *Rule) Title() string            { return r.Name }
func (r *Rule) Severity() types.Severity { return r.Level }

func (r *Rule) Detect(text string) []RawMatch {
	var out []RawMatch
	for _, loc := range r.Pattern.FindAllStringIndex(text, -1) {
		m := text[loc[0]:loc[1]]
		if r.Exclude != nil && r.Exclude.MatchString(m) {
			continue
		}
		if r.Context != nil && !r.Context.MatchString(surrounding(text, loc[0], loc[1], r.radius())) {
			continue
		}
		out = append(out, RawMatch{Index: loc[0], Match: m, Message: r.Note})
	}
	return out
}

func (r *Rule) radius() int {
	if r.ContextRadius > 0 {
		return r.ContextRadius
	}
	return defaultContextRadius
}

// surrounding returns the text window radius bytes around [start,end), clipped
// to bounds. Bundles are typically one minified line, so windows, not lines.
func surrounding(text string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
