package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, sampleFindings(), "1.0.0"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "2.1.0", doc["version"])

	runs := doc["runs"].([]any)
	require.Len(t, runs, 1)
	results := runs[0].(map[string]any)["results"].([]any)
	require.Len(t, results, 2)

	first := results[0].(map[string]any)
	require.Equal(t, "aws_access_key", first["ruleId"])
	require.Equal(t, "error", first["level"], "critical maps to error")

	second := results[1].(map[string]any)
	require.Equal(t, "warning", second["level"], "medium maps to warning")
}

func TestWriteSARIFEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, nil, "1.0.0"))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
}
