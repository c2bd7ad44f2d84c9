package rules

import (
	"strings"
	"testing"
)

func TestEntropyBounds(t *testing.T) {
	if got := Entropy(""); got != 0 {
		t.Fatalf("empty string entropy = %f", got)
	}
	if got := Entropy(strings.Repeat("a", 40)); got != 0 {
		t.Fatalf("repeated char entropy = %f, want 0", got)
	}
	// 40 distinct base64 characters: entropy log2(40) ≈ 5.32
	random := "AbCdEfGhIjKlMnOpQrStUvWxYz01234567+/89ZQ"
	if got := Entropy(random); got < 4.0 {
		t.Fatalf("random base64 entropy = %f, want >= 4.0", got)
	}
}

func TestEntropyDetectorFlagsRandomLiteral(t *testing.T) {
	random := "AbCdEfGhIjKlMnOpQrStUvWxYz01234567+/89ZQ"
	text := `var secret = "` + random + `";`
	fs := entropyDetector{}.Detect(text)
	if len(fs) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(fs))
	}
	if fs[0].Match != random {
		t.Fatalf("wrong match %q", fs[0].Match)
	}
	if fs[0].Meta["entropy"] == "" || fs[0].Meta["length"] != "40" {
		t.Fatalf("missing metadata: %v", fs[0].Meta)
	}
}

func TestEntropyDetectorIgnoresRepeatedChars(t *testing.T) {
	text := `var x = "` + strings.Repeat("A", 40) + `";`
	if fs := (entropyDetector{}).Detect(text); len(fs) != 0 {
		t.Fatalf("repeated-char literal should not be flagged, got %d", len(fs))
	}
}

func TestEntropyDetectorIgnoresIdentifiers(t *testing.T) {
	for _, s := range []string{
		`require("com.example.app")`,
		`import("./modules/vendor.js")`,
		`"react-native-gesture"`,
	} {
		if fs := (entropyDetector{}).Detect(s); len(fs) != 0 {
			t.Fatalf("identifier %q should not be flagged", s)
		}
	}
}

func TestLooksEncoded(t *testing.T) {
	if !looksEncoded("deadbeefDEADBEEF00") {
		t.Fatalf("hex string should look encoded")
	}
	if !looksEncoded("QWxhZGRpbjpvcGVuIHNlc2FtZQ==") {
		t.Fatalf("base64 string should look encoded")
	}
	if looksEncoded("not_encoded-at.all") {
		t.Fatalf("punctuated string should not look encoded")
	}
}
