package InputParameters

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gobdf/bdf/field"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Test Case
FieldSize: large
Precision: double
Interspersed: false
EndData: true
Encoding: ISO-8859-1
Material:
  MID: 7
  E: 7.0e10
  NU: 0.33
Thickness: 0.002
`)
	ip := NewWriteParameters()
	require.NoError(t, ip.Parse(fileInput))

	opts, err := ip.WriterOptions()
	require.NoError(t, err)
	assert.Equal(t, field.Large, opts.Size)
	assert.Equal(t, field.Double, opts.Precision)
	assert.False(t, opts.Interspersed)
	require.NotNil(t, opts.EndData)
	assert.True(t, *opts.EndData)

	co := ip.ConvertOptions()
	assert.Equal(t, 7, co.Material.MID)
	assert.Equal(t, 7.0e10, co.Material.E)
	assert.Equal(t, 7850., co.Material.RHO, "unset keys keep their default")
	assert.Equal(t, 0.002, co.Thickness)
	assert.Equal(t, 1., co.Area)

	var buf bytes.Buffer
	ip.Fprint(&buf)
	assert.Contains(t, buf.String(), "\"Test Case\"")
	assert.Contains(t, buf.String(), "[ISO-8859-1]")
}

func TestDefaults(t *testing.T) {
	opts, err := NewWriteParameters().WriterOptions()
	require.NoError(t, err)
	assert.Equal(t, field.Small, opts.Size)
	assert.Equal(t, field.Single, opts.Precision)
	assert.True(t, opts.Interspersed)
	assert.Nil(t, opts.EndData)
}

func TestBadNames(t *testing.T) {
	_, err := (&WriteParameters{FieldSize: "huge"}).WriterOptions()
	assert.ErrorContains(t, err, "field size")
	_, err = (&WriteParameters{Precision: "quad"}).WriterOptions()
	assert.ErrorContains(t, err, "precision")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("FieldSize: large\n"), 0o644))
	ip, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "large", ip.FieldSize)
	assert.Equal(t, "single", ip.Precision)

	require.NoError(t, os.WriteFile(path, []byte("FieldSize: [\n"), 0o644))
	_, err = ReadFile(path)
	assert.Error(t, err)
}
