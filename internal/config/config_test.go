package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	content := []byte("fail_on: high\nmax_findings: 100\nno_color: true\n")
	if err := os.WriteFile(filepath.Join(dir, ".lupin.yml"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FailOn == nil || *cfg.FailOn != "high" {
		t.Fatalf("fail_on = %v", cfg.FailOn)
	}
	if cfg.MaxFindings == nil || *cfg.MaxFindings != 100 {
		t.Fatalf("max_findings = %v", cfg.MaxFindings)
	}
	if cfg.NoColor == nil || !*cfg.NoColor {
		t.Fatalf("no_color = %v", cfg.NoColor)
	}
	if cfg.Show != nil {
		t.Fatalf("show should be unset, got %v", *cfg.Show)
	}
}

func TestLoadLocalMissing(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing config")
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "lupin.yml")
	if err := os.WriteFile(p, []byte("fail_on: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadGlobalXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "lupin"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lupin", "config.yml"), []byte("show: low\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Show == nil || *cfg.Show != "low" {
		t.Fatalf("show = %v", cfg.Show)
	}
}
