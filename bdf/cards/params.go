package cards

import (
	"github.com/notargets/gobdf/bdf/field"
)

// PARAM sets a solver parameter, e.g. PARAM,POST,-1
type PARAM struct {
	Name   string
	Values []any
}

func (p *PARAM) Type() string { return "PARAM" }
func (p *PARAM) ID() int      { return 0 }
func (p *PARAM) Key() string  { return p.Name }
func (p *PARAM) Write(size field.Size, prec field.Precision) (string, error) {
	return write(p, append([]any{p.Name}, p.Values...), size, prec)
}
