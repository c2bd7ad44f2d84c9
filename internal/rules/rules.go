package rules

import "github.com/adnxy/react-native-lupin/internal/types"

// RawMatch is one hit produced by a Detector before normalization. Index is a
// byte offset into the scanned text.
type RawMatch struct {
	Index   int
	Match   string
	Message string
	Meta    map[string]string
}

// Detector is a named, stateless check over the full bundle text. Detect must
// be pure: same input, same output, any number of times.
type Detector interface {
	ID() string
	Title() string
	Severity() types.Severity
	Detect(text string) []RawMatch
}

// Registry is the ordered, immutable collection of detectors for one process.
// Order fixes iteration order only; severity governs display.
type Registry struct {
	detectors []Detector
}

// NewRegistry assembles the default detector set from the topic groups.
func NewRegistry() *Registry {
	var ds []Detector
	ds = append(ds, secretRules()...)
	ds = append(ds, storageRules()...)
	ds = append(ds, networkRules()...)
	ds = append(ds, authRules()...)
	ds = append(ds, buildRules()...)
	ds = append(ds, permissionRules()...)
	ds = append(ds, frameworkRules()...)
	return &Registry{detectors: ds}
}

// NewRegistryFrom builds a registry from an explicit detector list. Intended
// for tests and embedders that bring their own checks.
func NewRegistryFrom(detectors ...Detector) *Registry {
	ds := make([]Detector, len(detectors))
	copy(ds, detectors)
	return &Registry{detectors: ds}
}

// Detectors returns the detectors in registration order. The returned slice is
// a copy; the registry itself cannot be mutated after construction.
func (r *Registry) Detectors() []Detector {
	out := make([]Detector, len(r.detectors))
	copy(out, r.detectors)
	return out
}

func (r *Registry) Len() int { return len(r.detectors) }

// IDs returns the detector IDs in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.detectors))
	for _, d := range r.detectors {
		out = append(out, d.ID())
	}
	return out
}

// Lookup finds a detector by ID.
func (r *Registry) Lookup(id string) (Detector, bool) {
	for _, d := range r.detectors {
		if d.ID() == id {
			return d, true
		}
	}
	return nil, false
}
