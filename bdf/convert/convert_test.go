package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gobdf/bdf/cards"
	"github.com/notargets/gobdf/bdf/writer"
)

const su2Square = `% two triangles and a bar
NDIME= 2
NPOIN= 4
0.0 0.0
1.0 0.0
1.0 1.0
0.0 1.0
NELEM= 3
5 0 1 2 0
5 0 2 3 1
3 0 2 2
NMARK= 1
MARKER_TAG= wall
MARKER_ELEMS= 2
3 0 1
3 1 2
`

const gambitPair = `        CONTROL INFO 2.4.6
** GAMBIT NEUTRAL FILE
pair
PROGRAM:                Gambit     VERSION:  2.4.6
     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL
         5         2         2         1         3         3
ENDOFSECTION
   NODAL COORDINATES 2.4.6
         1   0.0000000000e+00   0.0000000000e+00   0.0000000000e+00
         2   1.0000000000e+00   0.0000000000e+00   0.0000000000e+00
         3   0.0000000000e+00   1.0000000000e+00   0.0000000000e+00
         4   0.0000000000e+00   0.0000000000e+00   1.0000000000e+00
         5   1.0000000000e+00   1.0000000000e+00   1.0000000000e+00
ENDOFSECTION
      ELEMENTS/CELLS 2.4.6
         1  6  4        1        2        3        4
         2  6  4        2        3        4        5
ENDOFSECTION
       ELEMENT GROUP 2.4.6
GROUP:          1 ELEMENTS:          1 MATERIAL:          2 NFLAGS:          1
                           inner
       0
       1
ENDOFSECTION
       ELEMENT GROUP 2.4.6
GROUP:          2 ELEMENTS:          1 MATERIAL:          2 NFLAGS:          1
                           outer
       0
       2
ENDOFSECTION
 BOUNDARY CONDITIONS 2.4.6
                            wall       1       2       0       6
         1       6       1
         2       6       3
ENDOFSECTION
`

func TestReadSU2(t *testing.T) {
	m, err := ReadSU2(strings.NewReader(su2Square), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, m.Nodes.Keys())
	g, _ := m.Nodes.Get(3)
	assert.Equal(t, [3]float64{1, 1, 0}, g.X)

	assert.Equal(t, []int{1, 2, 3}, m.Elements.Keys())
	tri, _ := m.Elements.Get(2)
	assert.Equal(t, "CTRIA3", tri.Type())
	assert.Equal(t, []int{1, 3, 4}, tri.(*cards.Shell).Nodes)
	bar, _ := m.Elements.Get(3)
	assert.Equal(t, "CROD", bar.Type())

	// one property per family, one shared material
	assert.Equal(t, []int{1, 2}, m.Properties.Keys())
	assert.Equal(t, []int{1}, m.Materials.Keys())

	set, ok := m.Sets.Get(1)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, set.IDs)
}

func TestReadSU2Errors(t *testing.T) {
	for name, text := range map[string]string{
		"no dimension":  "NPOIN= 1\n0 0\n",
		"no points":     "NDIME= 2\n",
		"bad dimension": "NDIME= 4\n",
		"short points":  "NDIME= 2\nNPOIN= 2\n0 0\n",
		"unknown type":  "NDIME= 2\nNPOIN= 1\n0 0\nNELEM= 1\n7 0 0 0\n",
		"out of range":  "NDIME= 2\nNPOIN= 1\n0 0\nNELEM= 1\n3 0 1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadSU2(strings.NewReader(text), DefaultOptions())
			assert.Error(t, err)
		})
	}
}

func TestReadGambitNeutral(t *testing.T) {
	m, err := ReadGambitNeutral(strings.NewReader(gambitPair), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 5, m.Nodes.Len())
	assert.Equal(t, []int{1, 2}, m.Elements.Keys())

	// each group has its own PSOLID
	e1, _ := m.Elements.Get(1)
	e2, _ := m.Elements.Get(2)
	assert.Equal(t, "CTETRA", e1.Type())
	assert.Equal(t, []int{1}, e1.PropertyIDs())
	assert.Equal(t, []int{2}, e2.PropertyIDs())
	assert.Equal(t, []int{2, 3, 4, 5}, e2.(*cards.Solid).Nodes)

	set, ok := m.Sets.Get(1)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, set.IDs)
}

func TestGambitBrickOrdering(t *testing.T) {
	text := `     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL
         8         1         0         0         3         3
ENDOFSECTION
      ELEMENTS/CELLS 2.4.6
         1  4  8        1        2        3        4        5        6        7
               8
ENDOFSECTION
`
	m, err := ReadGambitNeutral(strings.NewReader(text), DefaultOptions())
	require.NoError(t, err)
	e, ok := m.Elements.Get(1)
	require.True(t, ok)
	assert.Equal(t, "CHEXA", e.Type())
	assert.Equal(t, []int{1, 2, 4, 3, 5, 6, 8, 7}, e.(*cards.Solid).Nodes)
}

func TestReadMeshFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.su2")
	require.NoError(t, os.WriteFile(path, []byte(su2Square), 0o644))

	m, err := ReadMeshFile(path, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writer.Write(m, &buf, writer.DefaultOptions()))
	out := buf.String()
	assert.Contains(t, out, "$NODES\n")
	assert.Contains(t, out, "CTRIA3         1       1       1       2       3\n")
	assert.Contains(t, out, "$SETS\n")

	_, err = ReadMeshFile(filepath.Join(dir, "square.msh"), DefaultOptions())
	assert.ErrorContains(t, err, "unsupported mesh format")
	_, err = ReadMeshFile(filepath.Join(dir, "missing.neu"), DefaultOptions())
	assert.Error(t, err)
}
