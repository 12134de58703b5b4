package cards

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gobdf/bdf/field"
)

// DOF is a grid (or scalar point) and one of its components, the row or
// column key of a DMIG matrix.
type DOF struct {
	Grid, Component int
}

func (d DOF) compare(o DOF) int {
	if c := cmp.Compare(d.Grid, o.Grid); c != 0 {
		return c
	}
	return cmp.Compare(d.Component, o.Component)
}

// DMIG is a direct matrix input at grid points. Kind is one of DMIG, DMIJ,
// DMIJI or DMIK, which share one layout. Terms live in sparse DOK matrices
// indexed by the position of their DOF in Rows and Cols.
type DMIG struct {
	Kind  string
	Name  string
	IFO   int // 1 square, 2 rectangular, 6 symmetric, 9 rectangular by columns
	TIN   int // 1 real, 2 real double, 3 complex, 4 complex double
	TOUT  int
	Polar bool
	NCol  int

	Rows, Cols []DOF
	Real, Imag *sparse.DOK

	rowIndex, colIndex map[DOF]int
}

var dmigKinds = map[string]bool{"DMIG": true, "DMIJ": true, "DMIJI": true, "DMIK": true}

// IsDMIG reports whether name is a DMIG-like matrix card.
func IsDMIG(name string) bool { return dmigKinds[name] }

// NewDMIG returns an empty matrix over the given row and column DOFs.
func NewDMIG(kind, name string, ifo, tin int, rows, cols []DOF) *DMIG {
	m := &DMIG{
		Kind:     kind,
		Name:     name,
		IFO:      ifo,
		TIN:      tin,
		Rows:     slices.Clone(rows),
		Cols:     slices.Clone(cols),
		Real:     sparse.NewDOK(max(len(rows), 1), max(len(cols), 1)),
		rowIndex: make(map[DOF]int, len(rows)),
		colIndex: make(map[DOF]int, len(cols)),
	}
	for i, d := range m.Rows {
		m.rowIndex[d] = i
	}
	for j, d := range m.Cols {
		m.colIndex[d] = j
	}
	if m.Complex() {
		m.Imag = sparse.NewDOK(max(len(rows), 1), max(len(cols), 1))
	}
	if ifo == 9 {
		m.NCol = len(cols)
	}
	return m
}

// Complex reports whether the matrix carries imaginary terms
func (m *DMIG) Complex() bool { return m.TIN == 3 || m.TIN == 4 }

// Set stores the term at (row, col). im is ignored for real matrices.
func (m *DMIG) Set(row, col DOF, re, im float64) error {
	i, ok := m.rowIndex[row]
	if !ok {
		return fmt.Errorf("%s %s: row %v is not a matrix row", m.Kind, m.Name, row)
	}
	j, ok := m.colIndex[col]
	if !ok {
		return fmt.Errorf("%s %s: column %v is not a matrix column", m.Kind, m.Name, col)
	}
	m.Real.Set(i, j, re)
	if m.Imag != nil {
		m.Imag.Set(i, j, im)
	}
	return nil
}

func (m *DMIG) Type() string { return m.Kind }
func (m *DMIG) ID() int      { return 0 }
func (m *DMIG) Key() string  { return m.Name }

type matrixTerm struct {
	i, j   int
	re, im float64
}

// terms lists the nonzero terms of re (and im) in column major order
func terms(re, im mat.Matrix) []matrixTerm {
	byPos := make(map[[2]int]*matrixTerm)
	visit := func(src mat.Matrix, imaginary bool) {
		if src == nil {
			return
		}
		set := func(i, j int, v float64) {
			if v == 0 {
				return
			}
			t, ok := byPos[[2]int{i, j}]
			if !ok {
				t = &matrixTerm{i: i, j: j}
				byPos[[2]int{i, j}] = t
			}
			if imaginary {
				t.im = v
			} else {
				t.re = v
			}
		}
		if nz, ok := src.(mat.NonZeroDoer); ok {
			nz.DoNonZero(set)
			return
		}
		r, c := src.Dims()
		for j := 0; j < c; j++ {
			for i := 0; i < r; i++ {
				set(i, j, src.At(i, j))
			}
		}
	}
	visit(re, false)
	visit(im, true)
	out := make([]matrixTerm, 0, len(byPos))
	for _, t := range byPos {
		out = append(out, *t)
	}
	slices.SortFunc(out, func(a, b matrixTerm) int {
		if c := cmp.Compare(a.j, b.j); c != 0 {
			return c
		}
		return cmp.Compare(a.i, b.i)
	})
	return out
}

// Write renders the header card and one card per nonzero column, columns
// and rows in ascending DOF order.
func (m *DMIG) Write(size field.Size, prec field.Precision) (string, error) {
	if !dmigKinds[m.Kind] {
		return "", renderError(m, fmt.Errorf("%w: unknown matrix card %q", field.ErrInvalidValue, m.Kind))
	}
	polar := any(nil)
	if m.Polar {
		polar = 1
	}
	out, err := write(m, []any{m.Name, 0, m.IFO, m.TIN, blankInt(m.TOUT, 0), polar, nil, blankInt(m.NCol, 0)}, size, prec)
	if err != nil {
		return "", err
	}

	var im mat.Matrix
	if m.Imag != nil {
		im = m.Imag
	}
	byCol := make(map[int][]matrixTerm)
	for _, t := range terms(m.Real, im) {
		byCol[t.j] = append(byCol[t.j], t)
	}
	cols := make([]int, 0, len(byCol))
	for j := range byCol {
		cols = append(cols, j)
	}
	slices.SortFunc(cols, func(a, b int) int { return m.Cols[a].compare(m.Cols[b]) })

	for _, j := range cols {
		col := byCol[j]
		slices.SortFunc(col, func(a, b matrixTerm) int { return m.Rows[a.i].compare(m.Rows[b.i]) })
		fields := []any{m.Name, m.Cols[j].Grid, m.Cols[j].Component, nil}
		for _, t := range col {
			var b any
			if m.Complex() {
				b = t.im
			}
			fields = append(fields, m.Rows[t.i].Grid, m.Rows[t.i].Component, t.re, b)
		}
		card, err := write(m, fields, size, prec)
		if err != nil {
			return "", err
		}
		out += card
	}
	return out, nil
}

// DMI is a direct matrix input by row and column number. Only real
// matrices are written.
type DMI struct {
	Name   string
	Form   int // 1 square, 2 rectangular, 6 symmetric
	TIN    int
	TOUT   int
	Values mat.Matrix
}

func (m *DMI) Type() string { return "DMI" }
func (m *DMI) ID() int      { return 0 }
func (m *DMI) Key() string  { return m.Name }

// Write renders the header card, then one card per nonzero column. Runs of
// consecutive nonzero rows are written as a start row followed by values.
func (m *DMI) Write(size field.Size, prec field.Precision) (string, error) {
	if m.Values == nil {
		return "", renderError(m, fmt.Errorf("%w: matrix has no values", field.ErrInvalidValue))
	}
	r, c := m.Values.Dims()
	out, err := write(m, []any{m.Name, 0, m.Form, cmp.Or(m.TIN, 1), blankInt(m.TOUT, 0), nil, r, c}, size, prec)
	if err != nil {
		return "", err
	}
	var (
		fields []any
		lastJ  = -1
		lastI  = -2
	)
	flush := func() error {
		if fields == nil {
			return nil
		}
		card, err := write(m, fields, size, prec)
		if err != nil {
			return err
		}
		out += card
		fields = nil
		return nil
	}
	for _, t := range terms(m.Values, nil) {
		if t.j != lastJ {
			if err := flush(); err != nil {
				return "", err
			}
			fields = []any{m.Name, t.j + 1}
			lastJ, lastI = t.j, -2
		}
		if t.i != lastI+1 {
			fields = append(fields, t.i+1)
		}
		fields = append(fields, t.re)
		lastI = t.i
	}
	if err := flush(); err != nil {
		return "", err
	}
	return out, nil
}
