package cards

import (
	"github.com/notargets/gobdf/bdf/field"
)

// PROD is the property of a CROD
type PROD struct {
	PID, MID int
	A, J, C  float64
	NSM      float64
}

func (p *PROD) Type() string { return "PROD" }
func (p *PROD) ID() int      { return p.PID }
func (p *PROD) Write(size field.Size, prec field.Precision) (string, error) {
	return write(p, []any{p.PID, p.MID, p.A, blank(p.J, 0), blank(p.C, 0), blank(p.NSM, 0)}, size, prec)
}

// PBAR is the property of a CBAR
type PBAR struct {
	PID, MID   int
	A, I1, I2  float64
	J, NSM     float64
	C, D, E, F [2]float64 // stress recovery points
	K1, K2     float64
	I12        float64
}

func (p *PBAR) Type() string { return "PBAR" }
func (p *PBAR) ID() int      { return p.PID }
func (p *PBAR) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{p.PID, p.MID, p.A, p.I1, p.I2, p.J, blank(p.NSM, 0), nil}
	for _, pt := range [][2]float64{p.C, p.D, p.E, p.F} {
		fields = append(fields, blank(pt[0], 0), blank(pt[1], 0))
	}
	fields = append(fields, blank(p.K1, 0), blank(p.K2, 0), blank(p.I12, 0))
	return write(p, fields, size, prec)
}

// PSHELL is the property of plate elements
type PSHELL struct {
	PID     int
	MID1    int
	T       float64
	MID2    int
	Bending float64 // 12I/T**3, 1.0 when zero
	MID3    int
	TST     float64 // TS/T, .833333 when zero
	NSM     float64
	Z1, Z2  float64
	MID4    int
}

func (p *PSHELL) Type() string { return "PSHELL" }
func (p *PSHELL) ID() int      { return p.PID }
func (p *PSHELL) Write(size field.Size, prec field.Precision) (string, error) {
	bending, tst := blank(p.Bending, 0), blank(p.TST, 0)
	if p.Bending == 1 {
		bending = nil
	}
	if p.TST == 0.833333 {
		tst = nil
	}
	return write(p, []any{
		p.PID, blankInt(p.MID1, 0), p.T, blankInt(p.MID2, 0), bending,
		blankInt(p.MID3, 0), tst, blank(p.NSM, 0),
		blank(p.Z1, 0), blank(p.Z2, 0), blankInt(p.MID4, 0),
	}, size, prec)
}

// PSOLID is the property of volume elements
type PSOLID struct {
	PID, MID int
	CORDM    int
	IN       string // integration network
	STRESS   string
	ISOP     string
	FCTN     string // SMECH when blank
}

func (p *PSOLID) Type() string { return "PSOLID" }
func (p *PSOLID) ID() int      { return p.PID }
func (p *PSOLID) Write(size field.Size, prec field.Precision) (string, error) {
	return write(p, []any{
		p.PID, p.MID, blankInt(p.CORDM, 0), blankString(p.IN, ""),
		blankString(p.STRESS, ""), blankString(p.ISOP, ""), blankString(p.FCTN, "SMECH"),
	}, size, prec)
}

// PELAS is the property of a scalar spring
type PELAS struct {
	PID   int
	K     float64
	GE, S float64
}

func (p *PELAS) Type() string { return "PELAS" }
func (p *PELAS) ID() int      { return p.PID }
func (p *PELAS) Write(size field.Size, prec field.Precision) (string, error) {
	return write(p, []any{p.PID, p.K, blank(p.GE, 0), blank(p.S, 0)}, size, prec)
}

// PBUSH is the nominal property of a CBUSH
type PBUSH struct {
	PID int
	K   [6]float64
	B   [6]float64
	GE  [6]float64
}

func (p *PBUSH) Type() string { return "PBUSH" }
func (p *PBUSH) ID() int      { return p.PID }
func (p *PBUSH) Write(size field.Size, prec field.Precision) (string, error) {
	return write(p, bushFields(p.PID, map[string][]any{
		"K": floatsBlank(p.K[:]), "B": floatsBlank(p.B[:]), "GE": floatsBlank(p.GE[:]),
	}), size, prec)
}

// bushFields lays out the K, B and GE lines of PBUSH/PBUSHT, one line each,
// skipping the empty ones.
func bushFields(pid int, rows map[string][]any) []any {
	var fields []any
	lead := any(pid)
	for _, name := range []string{"K", "B", "GE"} {
		row := field.TrimBlanks(rows[name])
		if len(row) == 0 {
			continue
		}
		fields = append(fields, lead, name)
		fields = append(fields, rows[name]...)
		fields = padLine(fields)
		lead = nil
	}
	if lead != nil {
		fields = append(fields, pid)
	}
	return fields
}

// PELAST gives frequency dependent tables for a PELAS
type PELAST struct {
	PID                int
	TKID, TGEID, TKNID int
}

func (p *PELAST) Type() string { return "PELAST" }
func (p *PELAST) ID() int      { return p.PID }
func (p *PELAST) Write(size field.Size, prec field.Precision) (string, error) {
	return write(p, []any{p.PID, blankInt(p.TKID, 0), blankInt(p.TGEID, 0), blankInt(p.TKNID, 0)}, size, prec)
}

// PDAMPT gives a frequency dependent table for a PDAMP
type PDAMPT struct {
	PID, TBID int
}

func (p *PDAMPT) Type() string { return "PDAMPT" }
func (p *PDAMPT) ID() int      { return p.PID }
func (p *PDAMPT) Write(size field.Size, prec field.Precision) (string, error) {
	return write(p, []any{p.PID, blankInt(p.TBID, 0)}, size, prec)
}

// PBUSHT gives frequency dependent tables for a PBUSH
type PBUSHT struct {
	PID int
	TK  [6]int
	TB  [6]int
	TGE [6]int
}

func (p *PBUSHT) Type() string { return "PBUSHT" }
func (p *PBUSHT) ID() int      { return p.PID }
func (p *PBUSHT) Write(size field.Size, prec field.Precision) (string, error) {
	return write(p, bushFields(p.PID, map[string][]any{
		"K": intsBlank(p.TK[:]), "B": intsBlank(p.TB[:]), "GE": intsBlank(p.TGE[:]),
	}), size, prec)
}

// PMASS is the property of a scalar mass
type PMASS struct {
	PID  int
	Mass float64
}

func (p *PMASS) Type() string { return "PMASS" }
func (p *PMASS) ID() int      { return p.PID }
func (p *PMASS) Write(size field.Size, prec field.Precision) (string, error) {
	return write(p, []any{p.PID, p.Mass}, size, prec)
}
