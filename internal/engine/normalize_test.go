package engine

import (
	"strings"
	"testing"
)

func TestSnippetWindowClipped(t *testing.T) {
	text := strings.Repeat("a", 200)
	if got := snippet(text, 0, 60); len(got) != 60 {
		t.Fatalf("left-clipped snippet length = %d", len(got))
	}
	if got := snippet(text, 100, 60); len(got) != 120 {
		t.Fatalf("centered snippet length = %d", len(got))
	}
	if got := snippet(text, 199, 60); len(got) != 61 {
		t.Fatalf("right-clipped snippet length = %d", len(got))
	}
}

func TestSnippetCollapsesNewlines(t *testing.T) {
	got := snippet("line1\nline2\r\nline3\rline4", 0, 60)
	if strings.ContainsAny(got, "\r\n") {
		t.Fatalf("snippet contains line breaks: %q", got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	short := "abcdef"
	if truncateMiddle(short, 120) != short {
		t.Fatalf("short value must not be truncated")
	}
	long := strings.Repeat("L", 100) + strings.Repeat("R", 100)
	got := truncateMiddle(long, 120)
	if len(got) > 120+len("…") {
		t.Fatalf("truncated value too long: %d", len(got))
	}
	if !strings.HasPrefix(got, "LLLL") || !strings.HasSuffix(got, "RRRR") {
		t.Fatalf("head/tail not preserved: %q", got)
	}
	if strings.Count(got, "…") != 1 {
		t.Fatalf("expected a single ellipsis: %q", got)
	}
}
