package cards

import (
	"fmt"

	"github.com/notargets/gobdf/bdf/field"
)

// SET1 is a list of structural grid or element ids
type SET1 struct {
	SID  int
	Skin bool
	IDs  []int
}

func (s *SET1) Type() string { return "SET1" }
func (s *SET1) ID() int      { return s.SID }
func (s *SET1) Write(size field.Size, prec field.Precision) (string, error) {
	fields := []any{s.SID}
	if s.Skin {
		fields = append(fields, "SKIN")
	}
	return write(s, append(fields, ints(s.IDs)...), size, prec)
}

// DOFSet is one of the degree of freedom sets written as a component and a
// list of grids: ASET1, BSET1, CSET1, QSET1, and the superelement boundary
// sets SEBSET1, SECSET1, SEQSET1 that carry a superelement id first.
type DOFSet struct {
	Name  string
	SEID  int // superelement sets only
	C     int
	Grids []int
}

var dofSetNames = map[string]bool{
	"ASET1": true, "BSET1": true, "CSET1": true, "QSET1": true,
	"SEBSET1": true, "SECSET1": true, "SEQSET1": true,
}

// IsDOFSet reports whether name is a DOFSet card.
func IsDOFSet(name string) bool { return dofSetNames[name] }

// Superelement reports whether the set belongs to a superelement.
func (s *DOFSet) Superelement() bool { return len(s.Name) > 2 && s.Name[:2] == "SE" }

func (s *DOFSet) Type() string { return s.Name }
func (s *DOFSet) ID() int {
	if s.Superelement() {
		return s.SEID
	}
	return 0
}

func (s *DOFSet) Write(size field.Size, prec field.Precision) (string, error) {
	if !dofSetNames[s.Name] {
		return "", renderError(s, fmt.Errorf("%w: unknown degree of freedom set %q", field.ErrInvalidValue, s.Name))
	}
	var fields []any
	if s.Superelement() {
		fields = append(fields, s.SEID)
	}
	fields = append(fields, s.C)
	return write(s, append(fields, ints(s.Grids)...), size, prec)
}

// USET1 puts grids in a named user set, e.g. U1
type USET1 struct {
	Set   string
	C     int
	Grids []int
}

func (s *USET1) Type() string { return "USET1" }
func (s *USET1) ID() int      { return 0 }
func (s *USET1) Key() string  { return s.Set }
func (s *USET1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(s, append([]any{s.Set, s.C}, ints(s.Grids)...), size, prec)
}

// SEUSET1 puts grids in a named user set of a superelement
type SEUSET1 struct {
	SEID  int
	Set   string
	C     int
	Grids []int
}

func (s *SEUSET1) Type() string { return "SEUSET1" }
func (s *SEUSET1) ID() int      { return s.SEID }
func (s *SEUSET1) Key() string  { return s.Set }
func (s *SEUSET1) Write(size field.Size, prec field.Precision) (string, error) {
	return write(s, append([]any{s.SEID, s.Set, s.C}, ints(s.Grids)...), size, prec)
}

// SESET assigns interior grids to a superelement
type SESET struct {
	SEID  int
	Grids []int
}

func (s *SESET) Type() string { return "SESET" }
func (s *SESET) ID() int      { return s.SEID }
func (s *SESET) Write(size field.Size, prec field.Precision) (string, error) {
	return write(s, append([]any{s.SEID}, ints(s.Grids)...), size, prec)
}

// SESUP gives the free-body supports of a superelement
type SESUP struct {
	Points []GridComponent
}

func (s *SESUP) Type() string { return "SESUP" }
func (s *SESUP) ID() int      { return 0 }
func (s *SESUP) Write(size field.Size, prec field.Precision) (string, error) {
	var fields []any
	for _, p := range s.Points {
		fields = append(fields, p.G, p.C)
	}
	return write(s, fields, size, prec)
}
