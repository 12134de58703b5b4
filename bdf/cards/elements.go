package cards

import (
	"fmt"

	"github.com/notargets/gobdf/bdf/field"
)

// CROD is a tension-compression-torsion element
type CROD struct {
	EID, PID int
	G        [2]int
}

func (e *CROD) Type() string       { return "CROD" }
func (e *CROD) ID() int            { return e.EID }
func (e *CROD) PropertyIDs() []int { return []int{e.PID} }
func (e *CROD) Write(size field.Size, prec field.Precision) (string, error) {
	return write(e, []any{e.EID, e.PID, e.G[0], e.G[1]}, size, prec)
}

// Orientation is the bar/beam/bush orientation: G0 when non-zero, else X
type Orientation struct {
	G0 int
	X  [3]float64
}

func (o Orientation) fields() []any {
	if o.G0 > 0 {
		return []any{o.G0, nil, nil}
	}
	return []any{o.X[0], o.X[1], o.X[2]}
}

// CBAR is a simple beam element
type CBAR struct {
	EID, PID int
	GA, GB   int
	Orient   Orientation
	OFFT     string // offset vector interpretation, GGG when blank
	PA, PB   int    // pin flags
	WA, WB   [3]float64
}

func (e *CBAR) Type() string       { return "CBAR" }
func (e *CBAR) ID() int            { return e.EID }
func (e *CBAR) PropertyIDs() []int { return []int{e.PID} }
func (e *CBAR) Write(size field.Size, prec field.Precision) (string, error) {
	return write(e, barFields(e.EID, e.PID, e.GA, e.GB, e.Orient, e.OFFT, e.PA, e.PB, e.WA, e.WB), size, prec)
}

func barFields(eid, pid, ga, gb int, o Orientation, offt string, pa, pb int, wa, wb [3]float64) []any {
	fields := []any{eid, pid, ga, gb}
	fields = append(fields, o.fields()...)
	fields = append(fields, blankString(offt, "GGG"),
		blankInt(pa, 0), blankInt(pb, 0),
		blank(wa[0], 0), blank(wa[1], 0), blank(wa[2], 0),
		blank(wb[0], 0), blank(wb[1], 0), blank(wb[2], 0))
	return fields
}

// CBEAM is a beam element with warping and shear relief
type CBEAM struct {
	EID, PID int
	GA, GB   int
	Orient   Orientation
	OFFT     string
	PA, PB   int
	WA, WB   [3]float64
	SA, SB   int // scalar points for warping
}

func (e *CBEAM) Type() string       { return "CBEAM" }
func (e *CBEAM) ID() int            { return e.EID }
func (e *CBEAM) PropertyIDs() []int { return []int{e.PID} }
func (e *CBEAM) Write(size field.Size, prec field.Precision) (string, error) {
	fields := barFields(e.EID, e.PID, e.GA, e.GB, e.Orient, e.OFFT, e.PA, e.PB, e.WA, e.WB)
	fields = append(fields, blankInt(e.SA, 0), blankInt(e.SB, 0))
	return write(e, fields, size, prec)
}

// Shell covers the plate elements, named by corner/midside node count:
// CTRIA3 (3), CQUAD4 (4), CTRIA6 (6), CQUAD8 (8).
type Shell struct {
	EID, PID int
	Nodes    []int
	Theta    float64 // material orientation angle
	ZOffset  float64
}

var shellNames = map[int]string{3: "CTRIA3", 4: "CQUAD4", 6: "CTRIA6", 8: "CQUAD8"}

// Type names the card by node count; a count no card takes yields "SHELL",
// which Check and Write reject.
func (e *Shell) Type() string {
	if name, ok := shellNames[len(e.Nodes)]; ok {
		return name
	}
	return "SHELL"
}

// Check reports a node count that matches no plate card
func (e *Shell) Check() error {
	if _, ok := shellNames[len(e.Nodes)]; !ok {
		return renderError(e, fmt.Errorf("%w: %d nodes match no shell card", field.ErrInvalidValue, len(e.Nodes)))
	}
	return nil
}

func (e *Shell) ID() int            { return e.EID }
func (e *Shell) PropertyIDs() []int { return []int{e.PID} }
func (e *Shell) Write(size field.Size, prec field.Precision) (string, error) {
	if err := e.Check(); err != nil {
		return "", err
	}
	fields := append([]any{e.EID, e.PID}, intsBlank(e.Nodes)...)
	if len(e.Nodes) == 8 {
		// CQUAD8 corner thicknesses T1-T4 sit between the nodes and theta
		fields = append(fields, nil, nil, nil, nil)
	}
	fields = append(fields, blank(e.Theta, 0), blank(e.ZOffset, 0))
	return write(e, fields, size, prec)
}

// Solid covers the volume elements, named by node count: CTETRA (4, 10),
// CPYRAM (5, 13), CPENTA (6, 15), CHEXA (8, 20).
type Solid struct {
	EID, PID int
	Nodes    []int
}

var solidNames = map[int]string{
	4: "CTETRA", 10: "CTETRA",
	5: "CPYRAM", 13: "CPYRAM",
	6: "CPENTA", 15: "CPENTA",
	8: "CHEXA", 20: "CHEXA",
}

func (e *Solid) Type() string {
	if name, ok := solidNames[len(e.Nodes)]; ok {
		return name
	}
	return "SOLID"
}

func (e *Solid) Check() error {
	if _, ok := solidNames[len(e.Nodes)]; !ok {
		return renderError(e, fmt.Errorf("%w: %d nodes match no solid card", field.ErrInvalidValue, len(e.Nodes)))
	}
	return nil
}

func (e *Solid) ID() int            { return e.EID }
func (e *Solid) PropertyIDs() []int { return []int{e.PID} }
func (e *Solid) Write(size field.Size, prec field.Precision) (string, error) {
	if err := e.Check(); err != nil {
		return "", err
	}
	return write(e, append([]any{e.EID, e.PID}, intsBlank(e.Nodes)...), size, prec)
}

// CELAS1 is a scalar spring with a PELAS property
type CELAS1 struct {
	EID, PID int
	G, C     [2]int
}

func (e *CELAS1) Type() string       { return "CELAS1" }
func (e *CELAS1) ID() int            { return e.EID }
func (e *CELAS1) PropertyIDs() []int { return []int{e.PID} }
func (e *CELAS1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(e, []any{e.EID, e.PID, e.G[0], blankInt(e.C[0], 0), blankInt(e.G[1], 0), blankInt(e.C[1], 0)}, size, prec)
}

// CBUSH is a generalized spring-damper
type CBUSH struct {
	EID, PID int
	GA, GB   int
	Orient   Orientation
	CID      int
}

func (e *CBUSH) Type() string       { return "CBUSH" }
func (e *CBUSH) ID() int            { return e.EID }
func (e *CBUSH) PropertyIDs() []int { return []int{e.PID} }
func (e *CBUSH) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{e.EID, e.PID, e.GA, blankInt(e.GB, 0)}
	if e.Orient.G0 == 0 && allZero(e.Orient.X[:]...) {
		fields = append(fields, nil, nil, nil)
	} else {
		fields = append(fields, e.Orient.fields()...)
	}
	fields = append(fields, blankInt(e.CID, 0))
	return write(e, fields, size, prec)
}

// RBE2 ties dependent grids rigidly to one independent grid
type RBE2 struct {
	EID   int
	GN    int   // independent grid
	CM    int   // dependent components
	GM    []int // dependent grids
	Alpha float64
}

func (e *RBE2) Type() string { return "RBE2" }
func (e *RBE2) ID() int      { return e.EID }
func (e *RBE2) Write(size field.Size, prec field.Precision) (string, error) {
	fields := append([]any{e.EID, e.GN, e.CM}, ints(e.GM)...)
	fields = append(fields, blank(e.Alpha, 0))
	return write(e, fields, size, prec)
}

// CONM2 is a concentrated mass at a grid
type CONM2 struct {
	EID, G, CID int
	Mass        float64
	Offset      [3]float64
	I           [6]float64 // I11 I21 I22 I31 I32 I33
}

func (e *CONM2) Type() string { return "CONM2" }
func (e *CONM2) ID() int      { return e.EID }
func (e *CONM2) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{e.EID, e.G, blankInt(e.CID, 0), e.Mass}
	fields = append(fields, floatsBlank(e.Offset[:])...)
	fields = append(fields, nil)
	fields = append(fields, floatsBlank(e.I[:])...)
	return write(e, fields, size, prec)
}
