package cards

import (
	"fmt"

	"github.com/notargets/gobdf/bdf/field"
)

// CAERO1 is a doublet lattice panel defined by its leading edge corners
// P1 and P4 and the chords X12 and X43.
type CAERO1 struct {
	EID, PID      int
	CP            int
	NSpan, NChord int
	LSpan, LChord int // AEFACT ids, used when the counts are zero
	IGID          int
	P1, P4        [3]float64
	X12, X43      float64
}

func (a *CAERO1) Type() string { return "CAERO1" }
func (a *CAERO1) ID() int      { return a.EID }
func (a *CAERO1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, []any{
		a.EID, a.PID, blankInt(a.CP, 0), blankInt(a.NSpan, 0), blankInt(a.NChord, 0),
		blankInt(a.LSpan, 0), blankInt(a.LChord, 0), a.IGID,
		a.P1[0], a.P1[1], a.P1[2], a.X12, a.P4[0], a.P4[1], a.P4[2], a.X43,
	}, size, prec)
}

// PAERO1 lists the bodies interfering with CAERO1 panels
type PAERO1 struct {
	PID    int
	Bodies []int
}

func (a *PAERO1) Type() string { return "PAERO1" }
func (a *PAERO1) ID() int      { return a.PID }
func (a *PAERO1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, append([]any{a.PID}, ints(a.Bodies)...), size, prec)
}

// SPLINE1 is a surface spline tying a range of aero boxes to structure
type SPLINE1 struct {
	EID        int
	CAERO      int
	Box1, Box2 int
	SETG       int
	DZ         float64
	Method     string
	Usage      string
	NElem      int
	MElem      int
}

func (a *SPLINE1) Type() string { return "SPLINE1" }
func (a *SPLINE1) ID() int      { return a.EID }
func (a *SPLINE1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, []any{
		a.EID, a.CAERO, a.Box1, a.Box2, a.SETG, blank(a.DZ, 0),
		blankString(a.Method, "IPS"), blankString(a.Usage, "BOTH"),
		blankInt(a.NElem, 0), blankInt(a.MElem, 0),
	}, size, prec)
}

// TrimVariable is one LABEL/UX pair of a TRIM card
type TrimVariable struct {
	Label string
	Value float64
}

// TRIM fixes aerodynamic extra points for a static aeroelastic solution
type TRIM struct {
	SID       int
	Mach      float64
	Q         float64
	Variables []TrimVariable
	AEQR      float64 // 1.0 when zero
}

func (a *TRIM) Type() string { return "TRIM" }
func (a *TRIM) ID() int      { return a.SID }
func (a *TRIM) Write(size field.Size, prec field.Precision) (string, error) {
	aeqr := any(a.AEQR)
	if a.AEQR == 0 || a.AEQR == 1 {
		aeqr = nil
	}
	fields := []any{a.SID, a.Mach, a.Q}
	for i, v := range a.Variables {
		if i == 2 {
			// AEQR sits in field 9 of the first line
			fields = append(fields, aeqr)
		}
		fields = append(fields, v.Label, v.Value)
	}
	if len(a.Variables) <= 2 {
		for len(fields) < 7 {
			fields = append(fields, nil)
		}
		fields = append(fields, aeqr)
	}
	return write(a, fields, size, prec)
}

// AERO gives the basic parameters of unsteady aerodynamics
type AERO struct {
	ACSID        int
	Velocity     float64
	RefC, RhoRef float64
	SymXZ, SymXY int
}

func (a *AERO) Type() string { return "AERO" }
func (a *AERO) ID() int      { return 0 }
func (a *AERO) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, []any{
		blankInt(a.ACSID, 0), blank(a.Velocity, 0), a.RefC, a.RhoRef,
		blankInt(a.SymXZ, 0), blankInt(a.SymXY, 0),
	}, size, prec)
}

// AEROS gives the basic parameters of static aeroelasticity
type AEROS struct {
	ACSID, RCSID     int
	RefC, RefB, RefS float64
	SymXZ, SymXY     int
}

func (a *AEROS) Type() string { return "AEROS" }
func (a *AEROS) ID() int      { return 0 }
func (a *AEROS) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, []any{
		blankInt(a.ACSID, 0), blankInt(a.RCSID, 0), a.RefC, a.RefB, a.RefS,
		blankInt(a.SymXZ, 0), blankInt(a.SymXY, 0),
	}, size, prec)
}

// GUST is a stationary vertical gust
type GUST struct {
	SID   int
	DLoad int
	WG    float64 // gust angle scale
	X0    float64
	V     float64
}

func (a *GUST) Type() string { return "GUST" }
func (a *GUST) ID() int      { return a.SID }
func (a *GUST) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, []any{a.SID, a.DLoad, a.WG, a.X0, blank(a.V, 0)}, size, prec)
}

// LinkTerm is one LABLi/Ci pair of an AELINK
type LinkTerm struct {
	Label string
	Coeff float64
}

// AELINK makes a dependent aero variable a linear combination of others.
// Several AELINK cards may share one id.
type AELINK struct {
	SetID     int
	Dependent string
	Terms     []LinkTerm
}

func (a *AELINK) Type() string { return "AELINK" }
func (a *AELINK) ID() int      { return a.SetID }
func (a *AELINK) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{a.SetID, a.Dependent}
	for _, t := range a.Terms {
		fields = append(fields, t.Label, t.Coeff)
	}
	return write(a, fields, size, prec)
}

// AEPARM is a generic aero extra point
type AEPARM struct {
	SetID int
	Label string
	Units string
}

func (a *AEPARM) Type() string { return "AEPARM" }
func (a *AEPARM) ID() int      { return a.SetID }
func (a *AEPARM) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, []any{a.SetID, a.Label, blankString(a.Units, "")}, size, prec)
}

// AESTAT is a rigid body aero extra point, e.g. ANGLEA
type AESTAT struct {
	SetID int
	Label string
}

func (a *AESTAT) Type() string { return "AESTAT" }
func (a *AESTAT) ID() int      { return a.SetID }
func (a *AESTAT) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, []any{a.SetID, a.Label}, size, prec)
}

// AELIST lists aero boxes
type AELIST struct {
	SID   int
	Boxes []int
}

func (a *AELIST) Type() string { return "AELIST" }
func (a *AELIST) ID() int      { return a.SID }
func (a *AELIST) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, append([]any{a.SID}, ints(a.Boxes)...), size, prec)
}

// AESURF is an aerodynamic control surface
type AESURF struct {
	SetID        int
	Label        string
	CID1, ALID1  int
	CID2, ALID2  int
	Eff          float64 // 1.0 when zero
	LDW          string
	CRefC, CRefS float64
	PLLim, PULim float64
}

func (a *AESURF) Type() string { return "AESURF" }
func (a *AESURF) ID() int      { return a.SetID }
func (a *AESURF) Write(size field.Size, prec field.Precision) (string, error) {
	eff := blank(a.Eff, 0)
	if a.Eff == 1 {
		eff = nil
	}
	return write(a, []any{
		a.SetID, a.Label, a.CID1, a.ALID1, blankInt(a.CID2, 0), blankInt(a.ALID2, 0),
		eff, blankString(a.LDW, "LDW"),
		blank(a.CRefC, 0), blank(a.CRefS, 0), blank(a.PLLim, 0), blank(a.PULim, 0),
	}, size, prec)
}

// AEFACT is a list of real numbers used by aero cards
type AEFACT struct {
	SID    int
	Values []float64
}

func (a *AEFACT) Type() string { return "AEFACT" }
func (a *AEFACT) ID() int      { return a.SID }
func (a *AEFACT) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, append([]any{a.SID}, floats(a.Values)...), size, prec)
}

// FLFACT lists densities, Mach numbers or velocities for a FLUTTER card
type FLFACT struct {
	SID    int
	Values []float64
}

func (a *FLFACT) Type() string { return "FLFACT" }
func (a *FLFACT) ID() int      { return a.SID }
func (a *FLFACT) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, append([]any{a.SID}, floats(a.Values)...), size, prec)
}

// FLUTTER defines a flutter analysis
type FLUTTER struct {
	SID              int
	Method           string // K, KE, PK, PKNL
	Dens, Mach, Freq int    // FLFACT ids
	IMeth            string
	NValue           int
	Eps              float64
}

func (a *FLUTTER) Type() string { return "FLUTTER" }
func (a *FLUTTER) ID() int      { return a.SID }
func (a *FLUTTER) Write(size field.Size, prec field.Precision) (string, error) {
	return write(a, []any{
		a.SID, a.Method, a.Dens, a.Mach, a.Freq, blankString(a.IMeth, "L"),
		blankInt(a.NValue, 0), nil, blank(a.Eps, 0),
	}, size, prec)
}

// MKAERO1 lists up to 8 Mach numbers and 8 reduced frequencies
type MKAERO1 struct {
	Machs []float64
	Freqs []float64
}

func (a *MKAERO1) Type() string { return "MKAERO1" }
func (a *MKAERO1) ID() int      { return 0 }
func (a *MKAERO1) Write(size field.Size, prec field.Precision) (string, error) {
	if len(a.Machs) > 8 || len(a.Freqs) > 8 {
		return "", renderError(a, fmt.Errorf("%w: at most 8 Mach numbers and 8 frequencies", field.ErrInvalidValue))
	}
	fields := padLine(floats(a.Machs))
	if len(a.Machs) == 0 {
		fields = make([]any, 8)
	}
	fields = append(fields, floats(a.Freqs)...)
	return write(a, fields, size, prec)
}
