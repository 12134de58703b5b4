package cards

import (
	"fmt"

	"github.com/notargets/gobdf/bdf/field"
)

// MAT1 is an isotropic material
type MAT1 struct {
	MID        int
	E, G, NU   float64
	RHO, A     float64
	TREF, GE   float64
	ST, SC, SS float64 // stress limits
	MCSID      int
}

func (m *MAT1) Type() string { return "MAT1" }
func (m *MAT1) ID() int      { return m.MID }
func (m *MAT1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(m, []any{
		m.MID, blank(m.E, 0), blank(m.G, 0), blank(m.NU, 0),
		blank(m.RHO, 0), blank(m.A, 0), blank(m.TREF, 0), blank(m.GE, 0),
		blank(m.ST, 0), blank(m.SC, 0), blank(m.SS, 0), blankInt(m.MCSID, 0),
	}, size, prec)
}

// MAT8 is an orthotropic material for shells
type MAT8 struct {
	MID            int
	E1, E2, NU12   float64
	G12, G1Z, G2Z  float64
	RHO            float64
	A1, A2, TREF   float64
	Xt, Xc, Yt, Yc float64
	S, GE, F12     float64
	STRN           float64
}

func (m *MAT8) Type() string { return "MAT8" }
func (m *MAT8) ID() int      { return m.MID }
func (m *MAT8) Write(size field.Size, prec field.Precision) (string, error) {
	return write(m, []any{
		m.MID, m.E1, m.E2, m.NU12, blank(m.G12, 0), blank(m.G1Z, 0), blank(m.G2Z, 0), blank(m.RHO, 0),
		blank(m.A1, 0), blank(m.A2, 0), blank(m.TREF, 0),
		blank(m.Xt, 0), blank(m.Xc, 0), blank(m.Yt, 0), blank(m.Yc, 0), blank(m.S, 0),
		blank(m.GE, 0), blank(m.F12, 0), blank(m.STRN, 0),
	}, size, prec)
}

// MAT4 is an isotropic thermal material
type MAT4 struct {
	MID     int
	K, CP   float64 // conductivity, heat capacity
	RHO, H  float64
	MU      float64
	HGEN    float64 // 1.0 when zero
	REFENTH float64
}

func (m *MAT4) Type() string { return "MAT4" }
func (m *MAT4) ID() int      { return m.MID }
func (m *MAT4) Write(size field.Size, prec field.Precision) (string, error) {
	hgen := blank(m.HGEN, 0)
	if m.HGEN == 1 {
		hgen = nil
	}
	return write(m, []any{
		m.MID, m.K, blank(m.CP, 0), blank(m.RHO, 0), blank(m.H, 0), blank(m.MU, 0), hgen, blank(m.REFENTH, 0),
	}, size, prec)
}

// MAT5 is an anisotropic thermal material
type MAT5 struct {
	MID  int
	K    [6]float64 // KXX KXY KXZ KYY KYZ KZZ
	CP   float64
	RHO  float64
	HGEN float64
}

func (m *MAT5) Type() string { return "MAT5" }
func (m *MAT5) ID() int      { return m.MID }
func (m *MAT5) Write(size field.Size, prec field.Precision) (string, error) {
	hgen := blank(m.HGEN, 0)
	if m.HGEN == 1 {
		hgen = nil
	}
	fields := append([]any{m.MID}, floatsBlank(m.K[:])...)
	fields = append(fields, blank(m.CP, 0), blank(m.RHO, 0), hgen)
	return write(m, fields, size, prec)
}

// MATHP is a hyperelastic (Mooney-Rivlin) material
type MATHP struct {
	MID      int
	A10, A01 float64
	D1       float64
	RHO, AV  float64
	TREF, GE float64
	NA, ND   int
}

func (m *MATHP) Type() string { return "MATHP" }
func (m *MATHP) ID() int      { return m.MID }
func (m *MATHP) Write(size field.Size, prec field.Precision) (string, error) {
	return write(m, []any{
		m.MID, blank(m.A10, 0), blank(m.A01, 0), blank(m.D1, 0),
		blank(m.RHO, 0), blank(m.AV, 0), blank(m.TREF, 0), blank(m.GE, 0),
		nil, blankInt(m.NA, 0), blankInt(m.ND, 0),
	}, size, prec)
}

// CREEP gives the creep law of a material
type CREEP struct {
	MID    int
	T0     float64
	EXP    float64
	Form   string
	TIDKP  int
	TIDCP  int
	TIDCS  int
	THRESH float64
	Law    int
	Coeffs [7]float64 // a..g
}

func (m *CREEP) Type() string { return "CREEP" }
func (m *CREEP) ID() int      { return m.MID }
func (m *CREEP) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{
		m.MID, blank(m.T0, 0), blank(m.EXP, 0), blankString(m.Form, ""),
		blankInt(m.TIDKP, 0), blankInt(m.TIDCP, 0), blankInt(m.TIDCS, 0), blank(m.THRESH, 0),
		m.Law,
	}
	fields = append(fields, floatsBlank(m.Coeffs[:])...)
	return write(m, fields, size, prec)
}

// MATS1 gives stress dependent (plasticity) properties of a material
type MATS1 struct {
	MID   int
	TID   int
	Kind  string // NLELAST or PLASTIC
	H     float64
	YF    int
	HR    int
	Limit [2]float64
}

func (m *MATS1) Type() string { return "MATS1" }
func (m *MATS1) ID() int      { return m.MID }
func (m *MATS1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(m, []any{
		m.MID, blankInt(m.TID, 0), m.Kind, blank(m.H, 0),
		blankInt(m.YF, 0), blankInt(m.HR, 0), blank(m.Limit[0], 0), blank(m.Limit[1], 0),
	}, size, prec)
}

// MaterialTable covers the stress and temperature dependent material
// variations that only point at tables: MATS3, MATS8 and MATT1 to MATT9.
// Tables holds one table id per material field, 0 for none.
type MaterialTable struct {
	Name   string
	MID    int
	Tables []int
}

var materialTableNames = map[string]bool{
	"MATS3": true, "MATS8": true,
	"MATT1": true, "MATT2": true, "MATT3": true, "MATT4": true,
	"MATT5": true, "MATT8": true, "MATT9": true,
}

// IsMaterialTable reports whether name is a MaterialTable card.
func IsMaterialTable(name string) bool { return materialTableNames[name] }

func (m *MaterialTable) Type() string { return m.Name }
func (m *MaterialTable) ID() int      { return m.MID }
func (m *MaterialTable) Write(size field.Size, prec field.Precision) (string, error) {
	if !materialTableNames[m.Name] {
		return "", renderError(m, fmt.Errorf("%w: unknown material table card %q", field.ErrInvalidValue, m.Name))
	}
	return write(m, append([]any{m.MID}, intsBlank(m.Tables)...), size, prec)
}
