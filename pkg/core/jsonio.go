package core

import (
	"encoding/json"
	"io"
)

// MarshalFindings writes findings as indented JSON. An empty slice encodes as
// [] rather than null so downstream parsers always see an array.
func MarshalFindings(w io.Writer, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// UnmarshalFindings reads a findings array produced by MarshalFindings or by
// the report JSON output.
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	var out []Finding
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
