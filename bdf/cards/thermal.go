package cards

import (
	"github.com/notargets/gobdf/bdf/field"
)

// PHBDY is the property of a CHBDYP surface
type PHBDY struct {
	PID    int
	AF     float64 // area factor
	D1, D2 float64
}

func (t *PHBDY) Type() string { return "PHBDY" }
func (t *PHBDY) ID() int      { return t.PID }
func (t *PHBDY) Write(size field.Size, prec field.Precision) (string, error) {
	return write(t, []any{t.PID, blank(t.AF, 0), blank(t.D1, 0), blank(t.D2, 0)}, size, prec)
}

// PCONV is a free convection property
type PCONV struct {
	PCONID int
	MID    int
	Form   int
	Expf   float64
	FType  int
	TID    int
}

func (t *PCONV) Type() string { return "PCONV" }
func (t *PCONV) ID() int      { return t.PCONID }
func (t *PCONV) Write(size field.Size, prec field.Precision) (string, error) {
	return write(t, []any{
		t.PCONID, blankInt(t.MID, 0), blankInt(t.Form, 0), blank(t.Expf, 0),
		blankInt(t.FType, 0), blankInt(t.TID, 0),
	}, size, prec)
}

// CONV is a free convection boundary condition on a surface element.
// Several CONV cards may share one surface element id.
type CONV struct {
	EID     int
	PCONID  int
	FlmND   int
	Cntrlnd int
	TA      []int // ambient points
}

func (t *CONV) Type() string { return "CONV" }
func (t *CONV) ID() int      { return t.EID }
func (t *CONV) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{t.EID, t.PCONID, blankInt(t.FlmND, 0), blankInt(t.Cntrlnd, 0)}
	return write(t, append(fields, ints(t.TA)...), size, prec)
}
