package cards

import (
	"github.com/notargets/gobdf/bdf/field"
)

// EIGRL requests real eigenvalues by the Lanczos method
type EIGRL struct {
	SID    int
	V1, V2 float64 // frequency range
	ND     int     // number of roots
	MSGLVL int
	MAXSET int
	SHFSCL float64
	Norm   string
}

func (d *EIGRL) Type() string { return "EIGRL" }
func (d *EIGRL) ID() int      { return d.SID }
func (d *EIGRL) Write(size field.Size, prec field.Precision) (string, error) {
	return write(d, []any{
		d.SID, blank(d.V1, 0), blank(d.V2, 0), blankInt(d.ND, 0),
		blankInt(d.MSGLVL, 0), blankInt(d.MAXSET, 0), blank(d.SHFSCL, 0), blankString(d.Norm, ""),
	}, size, prec)
}

// EIGC requests complex eigenvalues
type EIGC struct {
	SID    int
	Method string // CLAN, HESS, IRAM
	Norm   string
	G, C   int
	E      float64
	ND0    int
}

func (d *EIGC) Type() string { return "EIGC" }
func (d *EIGC) ID() int      { return d.SID }
func (d *EIGC) Write(size field.Size, prec field.Precision) (string, error) {
	return write(d, []any{
		d.SID, d.Method, blankString(d.Norm, "MAX"), blankInt(d.G, 0), blankInt(d.C, 0),
		blank(d.E, 0), blankInt(d.ND0, 0),
	}, size, prec)
}

// NLPARM controls a nonlinear static solution
type NLPARM struct {
	SetID   int
	NINC    int
	DT      float64
	KMethod string
	KStep   int
	MaxIter int
	Conv    string
	IntOut  string
	EpsU    float64
	EpsP    float64
	EpsW    float64
}

func (d *NLPARM) Type() string { return "NLPARM" }
func (d *NLPARM) ID() int      { return d.SetID }
func (d *NLPARM) Write(size field.Size, prec field.Precision) (string, error) {
	return write(d, []any{
		d.SetID, blankInt(d.NINC, 0), blank(d.DT, 0), blankString(d.KMethod, ""), blankInt(d.KStep, 0),
		blankInt(d.MaxIter, 0), blankString(d.Conv, ""), blankString(d.IntOut, ""),
		blank(d.EpsU, 0), blank(d.EpsP, 0), blank(d.EpsW, 0),
	}, size, prec)
}

// NLPCI controls arc-length continuation for an NLPARM of the same id
type NLPCI struct {
	SetID   int
	Kind    string // CRIS, RIKS, MRIKS
	MinAlr  float64
	MaxAlr  float64
	Scale   float64
	Desiter int
	MXINC   int
}

func (d *NLPCI) Type() string { return "NLPCI" }
func (d *NLPCI) ID() int      { return d.SetID }
func (d *NLPCI) Write(size field.Size, prec field.Precision) (string, error) {
	return write(d, []any{
		d.SetID, blankString(d.Kind, "CRIS"), blank(d.MinAlr, 0), blank(d.MaxAlr, 0), blank(d.Scale, 0),
		nil, blankInt(d.Desiter, 0), blankInt(d.MXINC, 0),
	}, size, prec)
}

// TimeStep is one line of a TSTEP card: N steps of DT, output every NO
type TimeStep struct {
	N  int
	DT float64
	NO int
}

// TSTEP gives the time steps of a linear transient solution
type TSTEP struct {
	SID   int
	Steps []TimeStep
}

func (d *TSTEP) Type() string { return "TSTEP" }
func (d *TSTEP) ID() int      { return d.SID }
func (d *TSTEP) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{d.SID}
	for i, s := range d.Steps {
		if i > 0 {
			fields = append(fields, nil)
		}
		fields = append(fields, s.N, s.DT, blankInt(s.NO, 1))
		fields = append(fields, nil, nil, nil, nil)
	}
	return write(d, fields, size, prec)
}

// TSTEPNL gives the time steps of a nonlinear transient solution
type TSTEPNL struct {
	SID     int
	NDT     int
	DT      float64
	NO      int
	Method  string
	KStep   int
	MaxIter int
	Conv    string
}

func (d *TSTEPNL) Type() string { return "TSTEPNL" }
func (d *TSTEPNL) ID() int      { return d.SID }
func (d *TSTEPNL) Write(size field.Size, prec field.Precision) (string, error) {
	return write(d, []any{
		d.SID, d.NDT, d.DT, blankInt(d.NO, 1), blankString(d.Method, ""),
		blankInt(d.KStep, 0), blankInt(d.MaxIter, 0), blankString(d.Conv, ""),
	}, size, prec)
}

// FREQ1 gives frequencies F1, F1+DF, ... F1+NDF*DF for a frequency response
type FREQ1 struct {
	SID int
	F1  float64
	DF  float64
	NDF int
}

func (d *FREQ1) Type() string { return "FREQ1" }
func (d *FREQ1) ID() int      { return d.SID }
func (d *FREQ1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(d, []any{d.SID, d.F1, d.DF, blankInt(d.NDF, 1)}, size, prec)
}
