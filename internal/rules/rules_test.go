package rules

import "testing"

func TestRegistryIDsUnique(t *testing.T) {
	reg := NewRegistry()
	seen := map[string]bool{}
	for _, id := range reg.IDs() {
		if id == "" {
			t.Fatalf("empty detector id")
		}
		if seen[id] {
			t.Fatalf("duplicate detector id %q", id)
		}
		seen[id] = true
	}
	if reg.Len() < 20 {
		t.Fatalf("registry unexpectedly small: %d detectors", reg.Len())
	}
}

func TestRegistryDetectorsIsCopy(t *testing.T) {
	reg := NewRegistry()
	ds := reg.Detectors()
	ds[0] = nil
	if reg.Detectors()[0] == nil {
		t.Fatalf("mutating the returned slice must not affect the registry")
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Lookup("eval_usage"); !ok {
		t.Fatalf("expected eval_usage detector")
	}
	if _, ok := reg.Lookup("nope"); ok {
		t.Fatalf("unexpected detector")
	}
}

func TestDetectorsAreDeterministic(t *testing.T) {
	text := `var k="sk-proj-` + "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopq" + `";eval(x);`
	for _, d := range NewRegistry().Detectors() {
		a := d.Detect(text)
		b := d.Detect(text)
		if len(a) != len(b) {
			t.Fatalf("%s: detect not repeatable", d.ID())
		}
		for i := range a {
			if a[i].Index != b[i].Index || a[i].Match != b[i].Match {
				t.Fatalf("%s: detect not deterministic", d.ID())
			}
		}
	}
}

func TestRuleContextFilter(t *testing.T) {
	r := &Rule{
		RuleID:  "x",
		Name:    "x",
		Pattern: reConsoleLog,
		Context: reSensitiveNearby,
	}
	if got := r.Detect(`console.log("hello world")`); len(got) != 0 {
		t.Fatalf("context filter should drop benign log, got %d", len(got))
	}
	if got := r.Detect(`console.log("token", token)`); len(got) != 1 {
		t.Fatalf("expected one finding near sensitive context, got %d", len(got))
	}
}
