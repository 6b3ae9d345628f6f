package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/survey-charts/internal/types"
)

func TestExportCommand_WritesComparison(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "artifacts", "comparison.json")
	prev := exportOutput
	exportOutput = outPath
	defer func() { exportOutput = prev }()

	require.NoError(t, runExport(nil, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var cmp types.CoarseComparison
	require.NoError(t, json.Unmarshal(data, &cmp))
	assert.Equal(t, []string{"<25", "25-34", "35-44", "45-54", "55+"}, cmp.Target.Bins)
	assert.Len(t, cmp.Series, 5)
	assert.NotEmpty(t, cmp.RunID)
	assert.False(t, cmp.GeneratedAt.IsZero())

	for _, s := range cmp.Series {
		assert.Len(t, s.Values, 5, s.Survey)
	}
}
