package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/survey-charts/internal/config"
)

func TestBuildRenderTasks(t *testing.T) {
	tasks, err := buildRenderTasks(config.Defaults())
	require.NoError(t, err)
	require.Len(t, tasks, 6)

	files := make([]string, 0, len(tasks))
	for _, task := range tasks {
		require.NotNil(t, task.chart, task.file)
		files = append(files, task.file)
	}
	assert.Equal(t, []string{
		"opensuse_distribution",
		"linux_foundation_distribution",
		"debian_distribution",
		"cncf_distribution",
		"stackoverflow_distribution",
		"combined_comparison",
	}, files)
}

func TestRenderCommand_WritesAllCharts(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "media")
	prevOut, prevFormat := renderOutDir, renderFormat
	renderOutDir, renderFormat = outDir, "svg"
	defer func() { renderOutDir, renderFormat = prevOut, prevFormat }()

	require.NoError(t, runRender(nil, nil))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
	for _, entry := range entries {
		info, err := entry.Info()
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), entry.Name())
		assert.Equal(t, ".svg", filepath.Ext(entry.Name()))
	}
}

func TestRenderCommand_RejectsUnknownFormat(t *testing.T) {
	prevOut, prevFormat := renderOutDir, renderFormat
	renderOutDir, renderFormat = t.TempDir(), "bmp"
	defer func() { renderOutDir, renderFormat = prevOut, prevFormat }()

	assert.Error(t, runRender(nil, nil))
}
