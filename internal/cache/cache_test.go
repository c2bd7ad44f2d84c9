package cache

import (
	"testing"
	"time"

	"github.com/adnxy/react-native-lupin/internal/report"
	"github.com/adnxy/react-native-lupin/internal/types"
)

func TestHashStable(t *testing.T) {
	a := Hash([]byte("bundle contents"))
	b := Hash([]byte("bundle contents"))
	if a != b {
		t.Fatalf("hash not stable: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("hash length = %d", len(a))
	}
	if Hash([]byte("other")) == a {
		t.Fatalf("different content hashed equal")
	}
	if Hash(nil) != "0000000000000000" {
		t.Fatalf("empty hash sentinel changed")
	}
}

func TestDBRoundTrip(t *testing.T) {
	dir := t.TempDir()
	db := DB{Entries: map[string]string{"a.bundle": Hash([]byte("abc"))}}
	if err := Save(dir, db); err != nil {
		t.Fatal(err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.Entries["a.bundle"] != db.Entries["a.bundle"] {
		t.Fatalf("entries lost: %+v", got)
	}
	if !got.Unchanged("a.bundle", []byte("abc")) {
		t.Fatalf("unchanged content reported as changed")
	}
	if got.Unchanged("a.bundle", []byte("abcd")) {
		t.Fatalf("changed content reported as unchanged")
	}
}

func TestLoadMissing(t *testing.T) {
	db, err := Load(t.TempDir())
	if err == nil {
		t.Fatalf("expected error for missing cache")
	}
	if db.Entries == nil {
		t.Fatalf("missing cache must still yield a usable DB")
	}
}

func TestResultsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rep := report.MultiReport{
		ScannedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Bundles:       1,
		TotalFindings: 1,
		Findings: []types.Finding{{
			Detector: "eval_usage", Title: "eval() usage", Severity: types.SevMed,
			Message: "m", Position: 4, Snippet: "eval(", Bundle: "a.bundle",
		}},
		Summary: report.MultiSummary{SeverityBreakdown: map[types.Severity]int{types.SevMed: 1}, ShowLevel: "medium"},
	}
	if err := SaveResults(dir, rep); err != nil {
		t.Fatal(err)
	}
	got, savedAt, err := LoadResults(dir)
	if err != nil {
		t.Fatal(err)
	}
	if savedAt.IsZero() {
		t.Fatalf("saved_at not recorded")
	}
	if len(got.Findings) != 1 || got.Findings[0].Detector != "eval_usage" {
		t.Fatalf("report lost in round trip: %+v", got)
	}
}
