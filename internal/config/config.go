package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for lupin. Pointer fields
// distinguish "unset" from zero so CLI flags can take precedence.
type FileConfig struct {
	Show           *string `yaml:"show"`
	FailOn         *string `yaml:"fail_on"`
	MaxFindings    *int    `yaml:"max_findings"`
	MinBundleBytes *int64  `yaml:"min_bundle_bytes"`
	Threads        *int    `yaml:"threads"`
	NoColor        *bool   `yaml:"no_color"`
	Enable         *string `yaml:"enable"`
	Disable        *string `yaml:"disable"`
	ProjectType    *string `yaml:"project_type"`
	NoCache        *bool   `yaml:"no_cache"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .lupin.yml/.yaml and lupin.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".lupin.yml", ".lupin.yaml", "lupin.yml", "lupin.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "lupin", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
