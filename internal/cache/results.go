package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/adnxy/react-native-lupin/internal/report"
)

type storedResults struct {
	SavedAt time.Time          `json:"saved_at"`
	Report  report.MultiReport `json:"report"`
}

func resultsPath(root string) string {
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "lupin_results.json")
	}
	return filepath.Join(root, ".lupin_results.json")
}

// SaveResults persists the last scan's report. Results can contain secret
// material in snippets, so the file is owner-only.
func SaveResults(root string, rep report.MultiReport) error {
	b, err := json.MarshalIndent(storedResults{SavedAt: time.Now().UTC(), Report: rep}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(resultsPath(root), b, 0o600)
}

// LoadResults returns the last saved report and when it was saved.
func LoadResults(root string) (report.MultiReport, time.Time, error) {
	var sr storedResults
	b, err := os.ReadFile(resultsPath(root))
	if err != nil {
		return report.MultiReport{}, time.Time{}, err
	}
	if err := json.Unmarshal(b, &sr); err != nil {
		return report.MultiReport{}, time.Time{}, err
	}
	return sr.Report, sr.SavedAt, nil
}
