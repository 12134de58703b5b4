package reader

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gobdf/bdf/cards"
	"github.com/notargets/gobdf/bdf/field"
)

// matrixCards gathers the header and column cards of one DMIG-like or DMI
// matrix. The matrix is built once the whole deck has been read since the
// row and column sets are only known then.
type matrixCards struct {
	kind, name string
	line       int // line of the first card seen
	header     *fields
	columns    []*fields
}

// matrices keeps the matrices being read in order of first appearance
type matrices struct {
	byKey map[string]*matrixCards
	order []string
}

func isMatrix(name string) bool { return name == "DMI" || cards.IsDMIG(name) }

func (ms *matrices) add(f *fields, line int) error {
	name := f.str(0)
	if name == "" {
		return fmt.Errorf("%w: matrix name is blank", field.ErrInvalidValue)
	}
	key := f.name + " " + name
	if ms.byKey == nil {
		ms.byKey = make(map[string]*matrixCards)
	}
	mc, ok := ms.byKey[key]
	if !ok {
		mc = &matrixCards{kind: f.name, name: name, line: line}
		ms.byKey[key] = mc
		ms.order = append(ms.order, key)
	}
	col := f.integer(1)
	if f.err != nil {
		return f.err
	}
	if col != 0 {
		mc.columns = append(mc.columns, f)
		return nil
	}
	if mc.header != nil {
		return fmt.Errorf("%s %s: repeated header card", f.name, name)
	}
	mc.header = f
	return nil
}

// build turns the gathered cards into a matrix card
func (mc *matrixCards) build() (cards.Card, error) {
	if mc.header == nil {
		return nil, fmt.Errorf("%s %s: column cards without a header card", mc.kind, mc.name)
	}
	if mc.kind == "DMI" {
		return mc.buildDMI()
	}
	return mc.buildDMIG()
}

type dmigTerm struct {
	row, col cards.DOF
	re, im   float64
}

func (mc *matrixCards) buildDMIG() (cards.Card, error) {
	h := mc.header
	ifo, tin := h.integer(2), h.integer(3)
	tout, polar, ncol := h.integerOr(4, 0), h.integerOr(5, 0), h.integerOr(7, 0)
	if h.err != nil {
		return nil, h.err
	}

	var terms []dmigTerm
	rowSet, colSet := make(map[cards.DOF]bool), make(map[cards.DOF]bool)
	for _, f := range mc.columns {
		col := cards.DOF{Grid: f.integer(1), Component: f.integerOr(2, 0)}
		colSet[col] = true
		for i := 4; i < f.len(); i += 4 {
			if f.blank(i) {
				continue
			}
			t := dmigTerm{
				row: cards.DOF{Grid: f.integer(i), Component: f.integerOr(i+1, 0)},
				col: col,
				re:  f.realOr(i+2, 0),
				im:  f.realOr(i+3, 0),
			}
			rowSet[t.row] = true
			terms = append(terms, t)
		}
		if f.err != nil {
			return nil, f.err
		}
	}

	m := cards.NewDMIG(mc.kind, mc.name, ifo, tin, sortedDOFs(rowSet), sortedDOFs(colSet))
	m.TOUT, m.Polar = tout, polar != 0
	if ncol != 0 {
		m.NCol = ncol
	}
	for _, t := range terms {
		if err := m.Set(t.row, t.col, t.re, t.im); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func sortedDOFs(set map[cards.DOF]bool) []cards.DOF {
	out := make([]cards.DOF, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b cards.DOF) int {
		return cmp.Or(cmp.Compare(a.Grid, b.Grid), cmp.Compare(a.Component, b.Component))
	})
	return out
}

// buildDMI reads the column cards: a column number, then runs of values each
// led by the integer row number where the run starts.
func (mc *matrixCards) buildDMI() (cards.Card, error) {
	h := mc.header
	form, tin, tout := h.integer(2), h.integerOr(3, 1), h.integerOr(4, 0)
	rows, cols := h.integer(6), h.integer(7)
	if h.err != nil {
		return nil, h.err
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: DMI %s is %d by %d", field.ErrInvalidValue, mc.name, rows, cols)
	}
	values := mat.NewDense(rows, cols, nil)
	for _, f := range mc.columns {
		j := f.integer(1)
		if f.err != nil {
			return nil, f.err
		}
		if j < 1 || j > cols {
			return nil, fmt.Errorf("%w: DMI %s column %d past %d", field.ErrInvalidValue, mc.name, j, cols)
		}
		i := 0
		for k, v := range f.values(2) {
			switch v := v.(type) {
			case int:
				i = v
			case float64:
				if i < 1 || i > rows {
					return nil, fmt.Errorf("%w: DMI %s field %d: row %d outside 1..%d",
						field.ErrInvalidValue, mc.name, k+4, i, rows)
				}
				values.Set(i-1, j-1, v)
				i++
			case nil:
			default:
				return nil, fmt.Errorf("%w: DMI %s field %d: %v is not a row or a value",
					field.ErrInvalidValue, mc.name, k+4, v)
			}
		}
	}
	return &cards.DMI{Name: mc.name, Form: form, TIN: tin, TOUT: tout, Values: values}, nil
}
