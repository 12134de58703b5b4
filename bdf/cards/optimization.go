package cards

import (
	"fmt"
	"strings"

	"github.com/notargets/gobdf/bdf/field"
)

// DCONSTR bounds a design response
type DCONSTR struct {
	DCID   int
	RID    int
	LAllow float64
	UAllow float64
}

func (o *DCONSTR) Type() string { return "DCONSTR" }
func (o *DCONSTR) ID() int      { return o.DCID }
func (o *DCONSTR) Write(size field.Size, prec field.Precision) (string, error) {
	return write(o, []any{o.DCID, o.RID, o.LAllow, o.UAllow}, size, prec)
}

// DESVAR is a design variable
type DESVAR struct {
	SetID    int
	Label    string
	XInit    float64
	XLB, XUB float64
	DelXV    float64
	DDVal    int
}

func (o *DESVAR) Type() string { return "DESVAR" }
func (o *DESVAR) ID() int      { return o.SetID }
func (o *DESVAR) Write(size field.Size, prec field.Precision) (string, error) {
	return write(o, []any{
		o.SetID, o.Label, o.XInit, o.XLB, o.XUB, blank(o.DelXV, 0), blankInt(o.DDVal, 0),
	}, size, prec)
}

// DDVAL lists the discrete values a design variable may take
type DDVAL struct {
	SetID  int
	Values []float64
}

func (o *DDVAL) Type() string { return "DDVAL" }
func (o *DDVAL) ID() int      { return o.SetID }
func (o *DDVAL) Write(size field.Size, prec field.Precision) (string, error) {
	return write(o, append([]any{o.SetID}, floats(o.Values)...), size, prec)
}

// DLINK makes a design variable a linear function of others:
// DDVID = C0 + CMULT * sum(Ci * IDVi)
type DLINK struct {
	SetID  int
	DDVID  int
	C0     float64
	CMult  float64 // 1.0 when zero
	IDV    []int
	Coeffs []float64
}

func (o *DLINK) Type() string { return "DLINK" }
func (o *DLINK) ID() int      { return o.SetID }
func (o *DLINK) Write(size field.Size, prec field.Precision) (string, error) {
	if len(o.IDV) != len(o.Coeffs) {
		return "", renderError(o, fmt.Errorf("%w: %d coefficients for %d design variables", field.ErrInvalidValue, len(o.Coeffs), len(o.IDV)))
	}
	cmult := blank(o.CMult, 0)
	if o.CMult == 1 {
		cmult = nil
	}
	fields := []any{o.SetID, o.DDVID, blank(o.C0, 0), cmult}
	for i := range o.IDV {
		fields = append(fields, o.IDV[i], o.Coeffs[i])
	}
	return write(o, fields, size, prec)
}

// DRESP1 is a first level design response
type DRESP1 struct {
	SetID  int
	Label  string
	RType  string // e.g. WEIGHT, STRESS, DISP
	PType  string
	Region int
	Atta   any // int, float64 or string
	Attb   any
	Atti   []int
}

func (o *DRESP1) Type() string { return "DRESP1" }
func (o *DRESP1) ID() int      { return o.SetID }
func (o *DRESP1) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{
		o.SetID, o.Label, o.RType, blankString(o.PType, ""), blankInt(o.Region, 0), o.Atta, o.Attb,
	}
	return write(o, append(fields, ints(o.Atti)...), size, prec)
}

// DesignTerm is one DVIDi/COEFi pair of a DVPREL1/DVMREL1
type DesignTerm struct {
	DVID  int
	Coeff float64
}

// Relation is a DVPREL1 or DVMREL1 card: a property or material field as a
// linear function of design variables.
type Relation struct {
	Name   string // DVPREL1 or DVMREL1
	SetID  int
	Entity string // e.g. PSHELL, MAT1
	EID    int    // property or material id
	Field  string // field name, e.g. T
	Min    float64
	Max    float64
	C0     float64
	Terms  []DesignTerm
}

func (o *Relation) Type() string { return o.Name }
func (o *Relation) ID() int      { return o.SetID }
func (o *Relation) Write(size field.Size, prec field.Precision) (string, error) {
	if o.Name != "DVPREL1" && o.Name != "DVMREL1" {
		return "", renderError(o, fmt.Errorf("%w: unknown design relation card %q", field.ErrInvalidValue, o.Name))
	}
	fields := []any{
		o.SetID, o.Entity, o.EID, o.Field, blank(o.Min, 0), blank(o.Max, 0), blank(o.C0, 0), nil,
	}
	for _, t := range o.Terms {
		fields = append(fields, t.DVID, t.Coeff)
	}
	return write(o, fields, size, prec)
}

// DEQATN is a user equation. It is free text rather than fields, so it
// renders its lines as given: the first line follows the card name and id,
// later lines are indented by one field.
type DEQATN struct {
	EQID  int
	Lines []string
}

func (o *DEQATN) Type() string { return "DEQATN" }
func (o *DEQATN) ID() int      { return o.EQID }
func (o *DEQATN) Write(size field.Size, prec field.Precision) (string, error) {
	id, err := field.Format(o.EQID, field.Small, field.Single)
	if err != nil {
		return "", renderError(o, err)
	}
	var b strings.Builder
	for i, line := range o.Lines {
		if i == 0 {
			b.WriteString("DEQATN  " + id + line + "\n")
			continue
		}
		b.WriteString("        " + line + "\n")
	}
	if len(o.Lines) == 0 {
		b.WriteString("DEQATN  " + id + "\n")
	}
	return b.String(), nil
}

// DOPTPRM overrides optimization defaults. A model holds at most one.
type DOPTPRM struct {
	Params []Param
}

func (o *DOPTPRM) Type() string { return "DOPTPRM" }
func (o *DOPTPRM) ID() int      { return 0 }
func (o *DOPTPRM) Write(size field.Size, prec field.Precision) (string, error) {
	var fields []any
	for _, p := range o.Params {
		fields = append(fields, p.Name, p.Value)
	}
	return write(o, fields, size, prec)
}
