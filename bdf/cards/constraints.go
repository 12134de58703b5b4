package cards

import (
	"fmt"

	"github.com/notargets/gobdf/bdf/field"
)

// GridComponent is a grid (or scalar point) and a packed component list,
// e.g. {12, 123}.
type GridComponent struct {
	G int
	C int
}

// SUPORT fixes rigid body free-body supports. It carries no id.
type SUPORT struct {
	Points []GridComponent
}

func (c *SUPORT) Type() string { return "SUPORT" }
func (c *SUPORT) ID() int      { return 0 }
func (c *SUPORT) Write(size field.Size, prec field.Precision) (string, error) {
	var fields []any
	for _, p := range c.Points {
		fields = append(fields, p.G, blankInt(p.C, 0))
	}
	return write(c, fields, size, prec)
}

// SUPORT1 is a SUPORT selected by the case control deck
type SUPORT1 struct {
	SID    int
	Points []GridComponent
}

func (c *SUPORT1) Type() string { return "SUPORT1" }
func (c *SUPORT1) ID() int      { return c.SID }
func (c *SUPORT1) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{c.SID}
	for _, p := range c.Points {
		fields = append(fields, p.G, blankInt(p.C, 0))
	}
	return write(c, fields, size, prec)
}

// SPC enforces a displacement on grid components
type SPC struct {
	SID    int
	Points []GridComponent
	D      []float64
}

func (c *SPC) Type() string { return "SPC" }
func (c *SPC) ID() int      { return c.SID }
func (c *SPC) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{c.SID}
	for i, p := range c.Points {
		d := 0.
		if i < len(c.D) {
			d = c.D[i]
		}
		fields = append(fields, p.G, p.C, d)
	}
	return write(c, fields, size, prec)
}

// SPC1 fixes the same components on a list of grids
type SPC1 struct {
	SID   int
	C     int
	Grids []int
}

func (c *SPC1) Type() string { return "SPC1" }
func (c *SPC1) ID() int      { return c.SID }
func (c *SPC1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(c, append([]any{c.SID, c.C}, ints(c.Grids)...), size, prec)
}

// MPCTerm is one grid/component/coefficient triple of an MPC equation
type MPCTerm struct {
	GridComponent
	A float64
}

// MPC is a multipoint constraint: sum(A * u) = 0, the first term dependent
type MPC struct {
	SID   int
	Terms []MPCTerm
}

func (c *MPC) Type() string { return "MPC" }
func (c *MPC) ID() int      { return c.SID }
func (c *MPC) Write(size field.Size, prec field.Precision) (string, error) {
	// terms are separated by one blank field, two to a line
	fields := []any{c.SID}
	for i, t := range c.Terms {
		if i > 0 {
			fields = append(fields, nil)
		}
		fields = append(fields, t.G, t.C, t.A)
	}
	return write(c, fields, size, prec)
}

// SetUnion is a SPCADD, MPCADD or BCTADD card: the union of other sets
type SetUnion struct {
	Name string
	SID  int
	Sets []int
}

func (c *SetUnion) Type() string { return c.Name }
func (c *SetUnion) ID() int      { return c.SID }
func (c *SetUnion) Write(size field.Size, prec field.Precision) (string, error) {
	switch c.Name {
	case "SPCADD", "MPCADD", "BCTADD":
	default:
		return "", renderError(c, fmt.Errorf("%w: unknown set union card %q", field.ErrInvalidValue, c.Name))
	}
	return write(c, append([]any{c.SID}, ints(c.Sets)...), size, prec)
}
