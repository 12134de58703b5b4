package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plate = `SOL 101
CEND
TITLE = PLATE
BEGIN BULK
GRID,1,,0.,0.,0.
GRID,2,,1.,0.,0.
GRID,3,,1.,1.,0.
CTRIA3,1,5,1,2,3
PSHELL,5,7,.1
MAT1,7,1.+7,,.3
ENDDATA
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestWriteCommand(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "plate.bdf"), filepath.Join(dir, "large.bdf")
	require.NoError(t, os.WriteFile(in, []byte(plate), 0o644))

	_, err := run(t, "write", "-F", in, "-o", out, "--size", "16", "--enddata", "true")
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GRID*")
	assert.True(t, strings.HasSuffix(string(data), "ENDDATA\n"))
}

func TestCompareCommand(t *testing.T) {
	in := filepath.Join(t.TempDir(), "plate.bdf")
	require.NoError(t, os.WriteFile(in, []byte(plate), 0o644))
	_, err := run(t, "compare", "-F", in, "--double", "--size", "large")
	assert.NoError(t, err)
}

func TestStatsCommand(t *testing.T) {
	in := filepath.Join(t.TempDir(), "plate.bdf")
	require.NoError(t, os.WriteFile(in, []byte(plate), 0o644))
	out, err := run(t, "stats", "-F", in)
	require.NoError(t, err)
	assert.Contains(t, out, "GRID")
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "tri.su2"), filepath.Join(dir, "tri.bdf")
	mesh := "NDIME= 2\nNPOIN= 3\n0 0\n1 0\n0 1\nNELEM= 1\n5 0 1 2\n"
	require.NoError(t, os.WriteFile(in, []byte(mesh), 0o644))

	_, err := run(t, "convert", "-F", in, "-o", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CTRIA3")
	assert.Contains(t, string(data), "MAT1")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("warn", "json", &buf)
	log.Info("dropped")
	log.Warn("kept", "card", "GRID")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"card":"GRID"`)
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
}
