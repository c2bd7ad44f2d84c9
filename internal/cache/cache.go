// Package cache persists incremental scan state: per-bundle content hashes to
// skip unchanged inputs, and the last multi-bundle report for cached viewing.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
)

// DB maps bundle path to content hash (xxhash hex).
type DB struct {
	Entries map[string]string `json:"entries"`
}

func dbPath(root string) string {
	// Prefer storing cache under .git to avoid accidental commits
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "lupincache.json")
	}
	return filepath.Join(root, ".lupincache.json")
}

// Load reads the hash cache for root; a missing or corrupt cache yields an
// empty DB and the error for callers that care.
func Load(root string) (DB, error) {
	var db DB
	b, err := os.ReadFile(dbPath(root))
	if err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	return db, nil
}

// Save writes the hash cache for root.
func Save(root string, db DB) error {
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(dbPath(root), b, 0o644)
}

// Unchanged reports whether path's content hash matches the cached entry.
func (db DB) Unchanged(path string, data []byte) bool {
	if db.Entries == nil {
		return false
	}
	return db.Entries[path] == Hash(data)
}

// Hash returns a 16-hex-digit xxhash of b.
func Hash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
