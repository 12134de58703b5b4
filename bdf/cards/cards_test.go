package cards

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gobdf/bdf/field"
)

func small(t *testing.T, c Card) string {
	t.Helper()
	out, err := c.Write(field.Small, field.Single)
	require.NoError(t, err)
	return out
}

func TestSPOINTS(t *testing.T) {
	s := &SPOINTS{}
	s.Add(9, 1, 2, 3, 5, 7, 3)
	assert.Equal(t, 1, s.ID())
	assert.Equal(t,
		"SPOINT         1THRU           3\n"+
			"SPOINT         5       7       9\n",
		small(t, s))
}

func TestShellAndSolidNames(t *testing.T) {
	for n, want := range map[int]string{3: "CTRIA3", 4: "CQUAD4", 6: "CTRIA6", 8: "CQUAD8"} {
		assert.Equal(t, want, (&Shell{Nodes: make([]int, n)}).Type())
	}
	for n, want := range map[int]string{4: "CTETRA", 10: "CTETRA", 5: "CPYRAM", 6: "CPENTA", 15: "CPENTA", 8: "CHEXA", 20: "CHEXA"} {
		assert.Equal(t, want, (&Solid{Nodes: make([]int, n)}).Type())
	}

	quad8 := &Shell{EID: 1, PID: 2, Nodes: []int{1, 2, 3, 4, 5, 6, 7, 8}, Theta: 30}
	assert.Equal(t,
		"CQUAD8         1       2       1       2       3       4       5       6\n"+
			"               7       8                                     30.\n",
		small(t, quad8))
}

func TestShellAndSolidNodeCounts(t *testing.T) {
	for _, e := range []Card{
		&Shell{EID: 7, PID: 1, Nodes: []int{1, 2, 3, 4, 5}},
		&Shell{EID: 8, PID: 1, Nodes: []int{1, 2}},
		&Solid{EID: 9, PID: 1, Nodes: []int{1, 2, 3, 4, 5, 6, 7}},
	} {
		_, err := e.Write(field.Small, field.Single)
		require.Error(t, err, "%T %d", e, e.ID())
		assert.ErrorIs(t, err, field.ErrInvalidValue)
		var re *RenderError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, e.ID(), re.ID)
		assert.ErrorIs(t, e.(Checker).Check(), field.ErrInvalidValue)
	}
	assert.Equal(t, "SHELL", (&Shell{Nodes: make([]int, 5)}).Type())
	assert.Equal(t, "SOLID", (&Solid{Nodes: make([]int, 7)}).Type())
	assert.NoError(t, (&Shell{Nodes: make([]int, 4)}).Check())
	assert.NoError(t, (&Solid{Nodes: make([]int, 13)}).Check())
}

func TestPropertyDefaultsAreBlank(t *testing.T) {
	p := &PSHELL{PID: 1, MID1: 2, T: 0.1, MID2: 2, Bending: 1, TST: 0.833333}
	assert.Equal(t, "PSHELL         1       2      .1       2\n", small(t, p))

	bush := &PBUSH{PID: 1, K: [6]float64{1000, 1000}, GE: [6]float64{0.1}}
	assert.Equal(t,
		"PBUSH          1K          1000.   1000.\n"+
			"                GE            .1\n",
		small(t, bush))
}

func TestMPCTerms(t *testing.T) {
	m := &MPC{SID: 1, Terms: []MPCTerm{
		{GridComponent{10, 1}, 1},
		{GridComponent{20, 2}, -1},
		{GridComponent{30, 3}, 0.5},
	}}
	assert.Equal(t,
		"MPC            1      10       1      1.              20       2     -1.\n"+
			"                      30       3      .5\n",
		small(t, m))
}

func TestTRIMAEQR(t *testing.T) {
	tr := &TRIM{SID: 1, Mach: 0.8, Q: 100, Variables: []TrimVariable{{"ANGLEA", 0.5}}, AEQR: 0.9}
	assert.Equal(t, "TRIM           1      .8    100.ANGLEA        .5                      .9\n", small(t, tr))

	tr.AEQR = 1
	assert.Equal(t, "TRIM           1      .8    100.ANGLEA        .5\n", small(t, tr))
}

func TestTable(t *testing.T) {
	tab := &Table{Name: "TABLED1", TID: 3, X: []float64{0, 1}, Y: []float64{1, 2}}
	assert.Equal(t,
		"TABLED1        3\n"+
			"              0.      1.      1.      2.ENDT\n",
		small(t, tab))

	tab.Y = tab.Y[:1]
	_, err := tab.Write(field.Small, field.Single)
	assert.ErrorIs(t, err, field.ErrInvalidValue)
}

func TestDMIG(t *testing.T) {
	m := NewDMIG("DMIG", "STIF", 6, 1, []DOF{{2, 1}, {1, 1}}, []DOF{{1, 1}})
	require.NoError(t, m.Set(DOF{1, 1}, DOF{1, 1}, 1, 0))
	require.NoError(t, m.Set(DOF{2, 1}, DOF{1, 1}, 2, 0))
	assert.Error(t, m.Set(DOF{3, 1}, DOF{1, 1}, 2, 0))

	assert.Equal(t,
		"DMIG    STIF           0       6       1\n"+
			"DMIG    STIF           1       1               1       1      1.\n"+
			"               2       1      2.\n",
		small(t, m))
	assert.Equal(t, "STIF", m.Key())
}

func TestDMI(t *testing.T) {
	m := &DMI{Name: "A", Form: 2, TIN: 1, Values: mat.NewDense(3, 2, []float64{
		1, 0,
		2, 0,
		0, 3,
	})}
	assert.Equal(t,
		"DMI     A              0       2       1                       3       2\n"+
			"DMI     A              1       1      1.      2.\n"+
			"DMI     A              2       3      3.\n",
		small(t, m))
}

func TestDEQATN(t *testing.T) {
	eq := &DEQATN{EQID: 10, Lines: []string{"F(A,B) = A+B", "*2.0"}}
	out := small(t, eq)
	assert.Equal(t, "DEQATN        10F(A,B) = A+B\n        *2.0\n", out)
}

func TestRenderErrorNamesTheCard(t *testing.T) {
	g := &GRID{NID: 123456789}
	_, err := g.Write(field.Small, field.Single)
	require.Error(t, err)

	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "GRID", re.Type)
	assert.Equal(t, 123456789, re.ID)
	assert.ErrorIs(t, err, field.ErrFieldOverflow)

	// large field holds the same id
	out, err := g.Write(field.Large, field.Single)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "GRID*          123456789"))
}

func TestRejectRoundTrip(t *testing.T) {
	r := &Reject{Fields: []any{"CFAKE", 1, 2.5, "ABC"}}
	assert.Equal(t, "CFAKE", r.Type())
	assert.Equal(t, 1, r.ID())
	assert.Equal(t, "CFAKE          1     2.5ABC\n", small(t, r))

	eq := &Reject{Fields: []any{"CFAKE", 1, "A=B"}}
	_, err := eq.Write(field.Small, field.Single)
	assert.ErrorIs(t, err, field.ErrInvalidValue)

	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "CFAKE", re.Type)
}

func TestKeyedCards(t *testing.T) {
	p := &PARAM{Name: "POST", Values: []any{-1}}
	assert.Equal(t, "PARAM   POST          -1\n", small(t, p))

	_, err := (&PARAM{Name: "POST", Values: []any{"TOOLONGVALUE"}}).Write(field.Small, field.Single)
	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "POST", re.Key)
	assert.Contains(t, re.Error(), "name=POST")
}
