package report

import (
	"encoding/json"
	"io"
)

// WriteJSON pretty-prints a report for humans or pipelines.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ReadReport decodes a single-bundle report, useful for ingestion tests.
func ReadReport(r io.Reader) (Report, error) {
	var rep Report
	err := json.NewDecoder(r).Decode(&rep)
	return rep, err
}

// ReadMultiReport decodes a multi-bundle report.
func ReadMultiReport(r io.Reader) (MultiReport, error) {
	var rep MultiReport
	err := json.NewDecoder(r).Decode(&rep)
	return rep, err
}
