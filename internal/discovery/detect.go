package discovery

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ProjectType is the closed set of project layouts lupin knows how to search.
type ProjectType string

const (
	ProjectReactNative ProjectType = "react-native"
	ProjectExpo        ProjectType = "expo"
	ProjectNext        ProjectType = "next"
	ProjectWeb         ProjectType = "web"
	ProjectUnknown     ProjectType = "unknown"
)

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// DetectProjectType inspects package.json in root to pick a search pattern
// set. Expo wins over plain React Native because expo projects also depend on
// react-native. Absent or unreadable manifests yield ProjectUnknown.
func DetectProjectType(root string) ProjectType {
	b, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return ProjectUnknown
	}
	var pkg packageJSON
	if err := json.Unmarshal(b, &pkg); err != nil {
		return ProjectUnknown
	}
	has := func(name string) bool {
		if _, ok := pkg.Dependencies[name]; ok {
			return true
		}
		_, ok := pkg.DevDependencies[name]
		return ok
	}
	switch {
	case has("expo"):
		return ProjectExpo
	case has("react-native"):
		return ProjectReactNative
	case has("next"):
		return ProjectNext
	case len(pkg.Dependencies) > 0 || len(pkg.DevDependencies) > 0:
		return ProjectWeb
	default:
		return ProjectUnknown
	}
}
