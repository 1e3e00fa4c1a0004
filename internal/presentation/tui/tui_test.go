package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/bloch/pkg/qubit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer(80)
	require.NoError(t, err)

	out, err := r("## Hadamard Gate\n\nCreates superposition.")
	require.NoError(t, err)
	assert.Contains(t, out, "Hadamard Gate")
	assert.Contains(t, out, "superposition")
}

func TestPlain(t *testing.T) {
	out, err := Plain("# title")
	require.NoError(t, err)
	assert.Equal(t, "# title", out)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n")
	assert.Contains(t, buf.String(), "v1.2.3")
	assert.Greater(t, strings.Count(buf.String(), "\n"), 4)
}

func TestPrintReadout(t *testing.T) {
	var buf bytes.Buffer
	PrintReadout(&buf, qubit.Vector{X: 1, Y: 0, Z: -1})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], ": 1"))
	assert.True(t, strings.HasSuffix(lines[1], ": 0"))
	assert.True(t, strings.HasSuffix(lines[2], ": -1"))
}
