package cards

import (
	"github.com/notargets/gobdf/bdf/field"
)

// Param is a NAME/value pair of a contact parameter card
type Param struct {
	Name  string
	Value any // int, float64 or string
}

// BCRPARA gives the parameters of a contact region
type BCRPARA struct {
	CRID   int
	Surf   string // TOP or BOT
	Offset float64
	Kind   string // FLEX or RIGID
	GP     int
}

func (c *BCRPARA) Type() string { return "BCRPARA" }
func (c *BCRPARA) ID() int      { return c.CRID }
func (c *BCRPARA) Write(size field.Size, prec field.Precision) (string, error) {
	return write(c, []any{
		c.CRID, blankString(c.Surf, "TOP"), blank(c.Offset, 0), blankString(c.Kind, "FLEX"), blankInt(c.GP, 0),
	}, size, prec)
}

// BCTPARA gives the parameters of a contact set, three pairs per line
type BCTPARA struct {
	CSID   int
	Params []Param
}

func (c *BCTPARA) Type() string { return "BCTPARA" }
func (c *BCTPARA) ID() int      { return c.CSID }
func (c *BCTPARA) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{c.CSID}
	for i, p := range c.Params {
		if i > 0 && i%3 == 0 {
			fields = append(fields, nil, nil)
		}
		fields = append(fields, p.Name, p.Value)
	}
	return write(c, fields, size, prec)
}

// ContactPair is one source/target pair of a BCTSET
type ContactPair struct {
	SID, TID int
	Fric     float64
	MinD     float64
	MaxD     float64
}

// BCTSET defines contact pairs
type BCTSET struct {
	CSID  int
	Pairs []ContactPair
}

func (c *BCTSET) Type() string { return "BCTSET" }
func (c *BCTSET) ID() int      { return c.CSID }
func (c *BCTSET) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{c.CSID}
	for i, p := range c.Pairs {
		if i > 0 {
			fields = append(fields, nil, nil, nil)
		}
		fields = append(fields, p.SID, p.TID, blank(p.Fric, 0), blank(p.MinD, 0), blank(p.MaxD, 0))
	}
	return write(c, fields, size, prec)
}

// BSURF lists the elements of a contact surface
type BSURF struct {
	SID  int
	EIDs []int
}

func (c *BSURF) Type() string { return "BSURF" }
func (c *BSURF) ID() int      { return c.SID }
func (c *BSURF) Write(size field.Size, prec field.Precision) (string, error) {
	return write(c, append([]any{c.SID}, ints(c.EIDs)...), size, prec)
}

// SolidFace is one solid element face of a BSURFS: the element and three of
// the face's grids.
type SolidFace struct {
	EID int
	G   [3]int
}

// BSURFS lists solid element faces of a contact surface
type BSURFS struct {
	SID   int
	Faces []SolidFace
}

func (c *BSURFS) Type() string { return "BSURFS" }
func (c *BSURFS) ID() int      { return c.SID }
func (c *BSURFS) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{c.SID, nil, nil, nil}
	for _, f := range c.Faces {
		fields = append(fields, f.EID, f.G[0], f.G[1], f.G[2])
	}
	return write(c, fields, size, prec)
}
