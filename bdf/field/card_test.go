package field

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCardSmall(t *testing.T) {
	out, err := PrintCard("GRID", []any{1, nil, 0., 1., 2., nil, nil, nil}, Small, Single)
	require.NoError(t, err)
	assert.Equal(t, "GRID           1              0.      1.      2.\n", out)

	// 10 data fields wrap after 8
	fields := []any{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out, err = PrintCard("SET1", fields, Small, Single)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "SET1           1       2       3       4       5       6       7       8", lines[0])
	assert.Equal(t, "               9      10", lines[1])
}

func TestPrintCardBlankContinuation(t *testing.T) {
	fields := make([]any, 17)
	fields[0] = 1
	fields[16] = 99
	out, err := PrintCard("PBAR", fields, Small, Single)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "+", lines[1])
	assert.Equal(t, "              99", lines[2])
}

func TestPrintCardLarge(t *testing.T) {
	out, err := PrintCard("GRID", []any{1, 0, 1.5, 2.5, 3.5}, Large, Single)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "GRID*                  1               0             1.5             2.5", lines[0])
	assert.Equal(t, "*                    3.5", lines[1])

	out, err = PrintCard("GRID", []any{1, 0, 1.5}, Large, Double)
	require.NoError(t, err)
	assert.Equal(t, "GRID*                  1               01.5000000000D+00\n", out)
}

func TestPrintCardErrors(t *testing.T) {
	_, err := PrintCard("GRID", []any{123456789}, Small, Single)
	assert.ErrorIs(t, err, ErrFieldOverflow)
	assert.Contains(t, err.Error(), "GRID field 2")

	_, err = PrintCard("GRID", []any{1}, Small, Double)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = PrintCard("VERYLONGNAME", nil, Small, Single)
	assert.ErrorIs(t, err, ErrFieldOverflow)
}

func TestTrimBlanks(t *testing.T) {
	assert.Equal(t, []any{1, nil, 2}, TrimBlanks([]any{1, nil, 2, nil, "", "  "}))
	assert.Empty(t, TrimBlanks([]any{nil, ""}))
}
