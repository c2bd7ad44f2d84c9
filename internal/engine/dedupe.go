package engine

import (
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/adnxy/react-native-lupin/internal/types"
)

// fingerprint collapses near-duplicate findings: same detector, same token
// (matched text, or message when the match is empty), positions in the same
// fixed-size bucket. A struct key avoids the delimiter collisions a
// concatenated string key would allow.
type fingerprint struct {
	detector string
	token    uint64
	bucket   int
}

// dedupe keeps the first finding per fingerprint. This bounds output when
// greedy global patterns re-match adjacent or repeated text, at the accepted
// cost of merging truly distinct occurrences inside one window.
func dedupe(fs []types.Finding, window int) []types.Finding {
	if len(fs) == 0 {
		return fs
	}
	seen := make(map[fingerprint]bool, len(fs))
	out := make([]types.Finding, 0, len(fs))
	for _, f := range fs {
		token := f.Match
		if token == "" {
			token = f.Message
		}
		fp := fingerprint{
			detector: f.Detector,
			token:    xxhash.Sum64String(token),
			bucket:   f.Position / window,
		}
		if seen[fp] {
			continue
		}
		seen[fp] = true
		out = append(out, f)
	}
	return out
}
