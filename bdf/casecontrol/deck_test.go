package casecontrol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `TITLE = WING
ECHO = NONE
DISP(PLOT) = ALL
SUBCASE 2
  LOAD = 20
SUBCASE 1
  LOAD = 10
  SPC = 1
BEGIN BULK
GRID,1,,0.,0.,0.
`

func TestParse(t *testing.T) {
	d, err := Parse(strings.Split(sample, "\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, d.Subcases())
	assert.True(t, d.HasSubcase(2))

	v, ok := d.Parameter(1, "load")
	require.True(t, ok)
	assert.Equal(t, "10", v)

	// falls back to the global requests
	v, ok = d.Parameter(2, "DISP")
	require.True(t, ok)
	assert.Equal(t, "ALL", v)

	_, ok = d.Parameter(2, "SPC")
	assert.False(t, ok)
}

func TestStringEndsWithBeginBulk(t *testing.T) {
	d, err := Parse(strings.Split(sample, "\n"))
	require.NoError(t, err)
	assert.Equal(t,
		"TITLE = WING\nECHO = NONE\nDISP(PLOT) = ALL\n"+
			"SUBCASE 1\n    LOAD = 10\n    SPC = 1\n"+
			"SUBCASE 2\n    LOAD = 20\n"+
			"BEGIN BULK\n",
		d.String())
	assert.Equal(t, "BEGIN BULK\n", New().String())
}

func TestAdd(t *testing.T) {
	d := New()
	require.NoError(t, d.Add(0, "echo", "NONE"))
	require.NoError(t, d.Add(3, "load", "5"))
	require.NoError(t, d.Add(3, "LOAD", "6"))
	assert.Error(t, d.Add(-1, "LOAD", "1"))

	v, _ := d.Parameter(3, "LOAD")
	assert.Equal(t, "6", v)
	assert.Equal(t, "ECHO = NONE\nSUBCASE 3\n    LOAD = 6\nBEGIN BULK\n", d.String())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]string{"SUBCASE X"})
	assert.ErrorIs(t, err, ErrBadSubcase)
	_, err = Parse([]string{"SUBCASE 1", "SUBCASE 1"})
	assert.ErrorIs(t, err, ErrBadSubcase)
}
