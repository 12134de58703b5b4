package cards

import (
	"fmt"

	"github.com/notargets/gobdf/bdf/field"
)

// PointLoad is a FORCE or MOMENT applied at a grid, F scaled along N
type PointLoad struct {
	Name string // FORCE or MOMENT
	SID  int
	G    int
	CID  int
	F    float64
	N    [3]float64
}

func (l *PointLoad) Type() string { return l.Name }
func (l *PointLoad) ID() int      { return l.SID }
func (l *PointLoad) Write(size field.Size, prec field.Precision) (string, error) {
	if l.Name != "FORCE" && l.Name != "MOMENT" {
		return "", renderError(l, fmt.Errorf("%w: point load must be FORCE or MOMENT, got %q", field.ErrInvalidValue, l.Name))
	}
	return write(l, []any{l.SID, l.G, blankInt(l.CID, 0), l.F, l.N[0], l.N[1], l.N[2]}, size, prec)
}

// GRAV is a gravity (acceleration) load
type GRAV struct {
	SID int
	CID int
	A   float64
	N   [3]float64
	MB  int
}

func (l *GRAV) Type() string { return "GRAV" }
func (l *GRAV) ID() int      { return l.SID }
func (l *GRAV) Write(size field.Size, prec field.Precision) (string, error) {
	return write(l, []any{l.SID, blankInt(l.CID, 0), l.A, l.N[0], l.N[1], l.N[2], blankInt(l.MB, 0)}, size, prec)
}

// PLOAD2 is a uniform pressure on plate elements
type PLOAD2 struct {
	SID  int
	P    float64
	EIDs []int
}

func (l *PLOAD2) Type() string { return "PLOAD2" }
func (l *PLOAD2) ID() int      { return l.SID }
func (l *PLOAD2) Write(size field.Size, prec field.Precision) (string, error) {
	return write(l, append([]any{l.SID, l.P}, ints(l.EIDs)...), size, prec)
}

// Combination is a LOAD or DLOAD card: a linear combination S * sum(Si * Li)
// of other load sets.
type Combination struct {
	Name    string // LOAD or DLOAD
	SID     int
	S       float64
	Scales  []float64
	LoadIDs []int
}

func (l *Combination) Type() string { return l.Name }
func (l *Combination) ID() int      { return l.SID }
func (l *Combination) Write(size field.Size, prec field.Precision) (string, error) {
	if len(l.Scales) != len(l.LoadIDs) {
		return "", renderError(l, fmt.Errorf("%w: %d scale factors for %d load sets", field.ErrInvalidValue, len(l.Scales), len(l.LoadIDs)))
	}
	fields := []any{l.SID, l.S}
	for i := range l.Scales {
		fields = append(fields, l.Scales[i], l.LoadIDs[i])
	}
	return write(l, fields, size, prec)
}

// DAREA scales a dynamic load at one grid component
type DAREA struct {
	SID int
	P   int
	C   int
	A   float64
}

func (l *DAREA) Type() string { return "DAREA" }
func (l *DAREA) ID() int      { return l.SID }
func (l *DAREA) Write(size field.Size, prec field.Precision) (string, error) {
	return write(l, []any{l.SID, l.P, l.C, l.A}, size, prec)
}

// TLOAD1 is a transient load scaled by a table of time
type TLOAD1 struct {
	SID      int
	ExciteID int
	Delay    int
	LoadTyp  string // LOAD, DISP, VELO or ACCE
	TID      int
	US0      float64
	VS0      float64
}

func (l *TLOAD1) Type() string { return "TLOAD1" }
func (l *TLOAD1) ID() int      { return l.SID }
func (l *TLOAD1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(l, []any{
		l.SID, l.ExciteID, blankInt(l.Delay, 0), blankString(l.LoadTyp, "LOAD"), l.TID,
		blank(l.US0, 0), blank(l.VS0, 0),
	}, size, prec)
}

// RLOAD1 is a frequency response load C(f) + iD(f)
type RLOAD1 struct {
	SID      int
	ExciteID int
	Delay    int
	DPhase   int
	TC, TD   int
	LoadTyp  string
}

func (l *RLOAD1) Type() string { return "RLOAD1" }
func (l *RLOAD1) ID() int      { return l.SID }
func (l *RLOAD1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(l, []any{
		l.SID, l.ExciteID, blankInt(l.Delay, 0), blankInt(l.DPhase, 0),
		blankInt(l.TC, 0), blankInt(l.TD, 0), blankString(l.LoadTyp, "LOAD"),
	}, size, prec)
}
