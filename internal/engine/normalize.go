package engine

import (
	"strings"

	"github.com/adnxy/react-native-lupin/internal/rules"
	"github.com/adnxy/react-native-lupin/internal/types"
)

var newlineCollapser = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// normalize converts one raw match into a canonical Finding with a bounded,
// single-line snippet and capped values.
func normalize(d rules.Detector, m rules.RawMatch, text string, opts Options) types.Finding {
	pos := m.Index
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}
	return types.Finding{
		Detector: d.ID(),
		Title:    d.Title(),
		Severity: d.Severity(),
		Message:  truncateMiddle(m.Message, DefaultValueCap),
		Position: pos,
		Snippet:  snippet(text, pos, opts.SnippetRadius),
		Match:    truncateMiddle(m.Match, DefaultValueCap),
		Metadata: m.Meta,
	}
}

// snippet is a symmetric window around pos, clipped to text bounds, with line
// breaks collapsed to spaces so it stays single-line-safe for rendering.
func snippet(text string, pos, radius int) string {
	lo := pos - radius
	if lo < 0 {
		lo = 0
	}
	hi := pos + radius
	if hi > len(text) {
		hi = len(text)
	}
	return newlineCollapser.Replace(text[lo:hi])
}

// truncateMiddle caps s at max bytes by keeping the head and tail around a
// single ellipsis, so long values stay recognizable without inflating the
// report.
func truncateMiddle(s string, max int) string {
	if len(s) <= max || max < 8 {
		return s
	}
	head := max / 2
	tail := max - head - 1
	return s[:head] + "…" + s[len(s)-tail:]
}
