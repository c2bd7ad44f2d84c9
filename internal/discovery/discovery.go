// Package discovery locates compiled JavaScript bundles in a project tree.
// The scan pipeline treats its output purely as an ordered input-path list.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// DefaultMinBundleBytes pre-filters files too small to be a main bundle.
const DefaultMinBundleBytes = 10000

// Bundle is one discovered candidate with its size in bytes.
type Bundle struct {
	Path string
	Size int64
}

var patternsByType = map[ProjectType][]string{
	ProjectReactNative: {
		"android/app/build/**/index.android.bundle",
		"android/app/src/main/assets/index.android.bundle",
		"ios/**/main.jsbundle",
		"*.jsbundle",
	},
	ProjectExpo: {
		"dist/**/*.js",
		"dist/bundles/**/*.js",
		"android/app/build/**/index.android.bundle",
		"ios/**/main.jsbundle",
	},
	ProjectNext: {
		".next/static/chunks/**/*.js",
		".next/server/**/*.js",
		"out/_next/static/chunks/**/*.js",
	},
	ProjectWeb: {
		"dist/**/*.js",
		"build/static/js/*.js",
		"build/**/*.bundle.js",
		"public/**/*.bundle.js",
	},
}

// Patterns returns the glob set for a project type. Unknown projects search
// the union of all known layouts.
func Patterns(pt ProjectType) []string {
	if ps, ok := patternsByType[pt]; ok {
		return ps
	}
	var all []string
	seen := map[string]bool{}
	for _, t := range []ProjectType{ProjectReactNative, ProjectExpo, ProjectNext, ProjectWeb} {
		for _, p := range patternsByType[t] {
			if !seen[p] {
				seen[p] = true
				all = append(all, p)
			}
		}
	}
	return all
}

// FindBundles searches root for bundle candidates of the given project type.
// Files smaller than minSize bytes are dropped as unlikely main bundles.
// Results are absolute paths in deterministic (sorted) order.
func FindBundles(root string, pt ProjectType, minSize int64) ([]Bundle, error) {
	if minSize <= 0 {
		minSize = DefaultMinBundleBytes
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	fsys := os.DirFS(absRoot)

	seen := map[string]bool{}
	var out []Bundle
	for _, pat := range Patterns(pt) {
		matches, err := doublestar.Glob(fsys, pat)
		if err != nil {
			// a malformed pattern should not sink the whole search
			continue
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			info, err := fs.Stat(fsys, m)
			if err != nil || info.IsDir() {
				continue
			}
			if info.Size() < minSize {
				continue
			}
			out = append(out, Bundle{
				Path: filepath.Join(absRoot, filepath.FromSlash(m)),
				Size: info.Size(),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}
