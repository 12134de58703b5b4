package cards

import (
	"slices"
	"strings"

	"github.com/notargets/gobdf/bdf/field"
)

// GRID is a structural node
type GRID struct {
	NID  int
	CP   int        // coordinate system of X
	X    [3]float64 // location in CP
	CD   int        // displacement coordinate system
	PS   int        // permanent single point constraints, e.g. 123456
	SEID int
}

func (g *GRID) Type() string { return "GRID" }
func (g *GRID) ID() int      { return g.NID }

func (g *GRID) Write(size field.Size, prec field.Precision) (string, error) {
	return write(g, []any{
		g.NID, blankInt(g.CP, 0), g.X[0], g.X[1], g.X[2],
		blankInt(g.CD, 0), blankInt(g.PS, 0), blankInt(g.SEID, 0),
	}, size, prec)
}

// GRDSET supplies defaults for every GRID that leaves CP, CD, PS or SEID blank
type GRDSET struct {
	CP, CD, PS, SEID int
}

func (g *GRDSET) Type() string { return "GRDSET" }
func (g *GRDSET) ID() int      { return 0 }

func (g *GRDSET) Write(size field.Size, prec field.Precision) (string, error) {
	return write(g, []any{
		nil, blankInt(g.CP, 0), nil, nil, nil,
		blankInt(g.CD, 0), blankInt(g.PS, 0), blankInt(g.SEID, 0),
	}, size, prec)
}

// SPOINTS collects every scalar point of a model. Runs of three or more
// consecutive ids are written as "ID1 THRU ID2" cards.
type SPOINTS struct {
	IDs []int
}

func (s *SPOINTS) Type() string { return "SPOINT" }
func (s *SPOINTS) ID() int {
	if len(s.IDs) == 0 {
		return 0
	}
	return slices.Min(s.IDs)
}

func (s *SPOINTS) Add(ids ...int) {
	s.IDs = append(s.IDs, ids...)
}

func (s *SPOINTS) Write(size field.Size, prec field.Precision) (string, error) {
	ids := slices.Clone(s.IDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	var (
		out     strings.Builder
		singles []any
	)
	for i := 0; i < len(ids); {
		j := i
		for j+1 < len(ids) && ids[j+1] == ids[j]+1 {
			j++
		}
		if j-i >= 2 {
			card, err := write(s, []any{ids[i], "THRU", ids[j]}, size, prec)
			if err != nil {
				return "", err
			}
			out.WriteString(card)
		} else {
			for k := i; k <= j; k++ {
				singles = append(singles, ids[k])
			}
		}
		i = j + 1
	}
	if len(singles) > 0 {
		card, err := write(s, singles, size, prec)
		if err != nil {
			return "", err
		}
		out.WriteString(card)
	}
	return out.String(), nil
}
