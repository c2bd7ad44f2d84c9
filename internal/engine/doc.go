// Package engine runs the detector registry over bundle text and turns raw
// matches into normalized, deduplicated, sorted reports. One bundle per Scan;
// ScanAll fans independent scans out over a worker pool and merges them.
package engine
