package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/survey-charts/internal/dataset"
)

func TestPrintDistribution(t *testing.T) {
	d, err := dataset.OpenSUSE()
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDistribution(d)

	out := buf.String()
	assert.Contains(t, out, "openSUSE Maintainers Survey (2021)")
	assert.Contains(t, out, "35-49")
	assert.Contains(t, out, "42.00%")
}

func TestPrintDistribution_ShowsCounts(t *testing.T) {
	d, err := dataset.Debian()
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDistribution(d)
	assert.Contains(t, buf.String(), "378 respondents")
}

func TestPrintDistribution_BoxAlignsMultibyteLabels(t *testing.T) {
	d, err := dataset.OpenSUSE()
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDistribution(d)

	// "≤25" is three runes but five bytes; every box row must still close
	// its right border at the same column.
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "misaligned line: %q", line)
	}
}

func TestBoxLine_TruncatesByRunes(t *testing.T) {
	long := strings.Repeat("≥", boxWidth)
	got := boxLine(long, 20)
	assert.Equal(t, 20, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestPrintDistribution_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDistribution(nil)
	assert.Zero(t, buf.Len())
}

func TestPrintComparison(t *testing.T) {
	cmp, err := dataset.BuildComparison()
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintComparison(cmp)

	out := buf.String()
	assert.Contains(t, out, "Coarse comparison (coarse)")
	assert.Contains(t, out, "opensuse")
	assert.Contains(t, out, "debian")
}
