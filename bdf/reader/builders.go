package reader

import (
	"strings"

	"github.com/notargets/gobdf/bdf/cards"
)

// builder turns the fields of one card into its typed form
type builder func(f *fields) cards.Card

var builders = map[string]builder{
	"GRID": func(f *fields) cards.Card {
		return &cards.GRID{
			NID:  f.integer(0),
			CP:   f.integerOr(1, 0),
			X:    f.point(2),
			CD:   f.integerOr(5, 0),
			PS:   f.integerOr(6, 0),
			SEID: f.integerOr(7, 0),
		}
	},
	"GRDSET": func(f *fields) cards.Card {
		return &cards.GRDSET{CP: f.integerOr(1, 0), CD: f.integerOr(5, 0), PS: f.integerOr(6, 0), SEID: f.integerOr(7, 0)}
	},
	"SPOINT": func(f *fields) cards.Card {
		return &cards.SPOINTS{IDs: f.ids(0)}
	},

	"CROD": func(f *fields) cards.Card {
		return &cards.CROD{EID: f.integer(0), PID: f.integer(1), G: [2]int{f.integer(2), f.integer(3)}}
	},
	"CTRIA3": shell(3),
	"CQUAD4": shell(4),
	"CTRIA6": shell(6),
	"CQUAD8": shell(8),
	"CTETRA": solid(4, 10),
	"CPYRAM": solid(5, 13),
	"CPENTA": solid(6, 15),
	"CHEXA":  solid(8, 20),
	"CELAS1": func(f *fields) cards.Card {
		return &cards.CELAS1{
			EID: f.integer(0),
			PID: f.integerOr(1, 0),
			G:   [2]int{f.integerOr(2, 0), f.integerOr(4, 0)},
			C:   [2]int{f.integerOr(3, 0), f.integerOr(5, 0)},
		}
	},
	"RBE2": func(f *fields) cards.Card {
		e := &cards.RBE2{EID: f.integer(0), GN: f.integer(1), CM: f.integer(2)}
		for i := 3; i < f.len(); i++ {
			switch s := f.get(i); {
			case s == "":
			case strings.ContainsAny(s, ".eEdD"):
				e.Alpha = f.real(i)
			default:
				e.GM = append(e.GM, f.integer(i))
			}
		}
		return e
	},
	"CONM2": func(f *fields) cards.Card {
		e := &cards.CONM2{
			EID:    f.integer(0),
			G:      f.integer(1),
			CID:    f.integerOr(2, 0),
			Mass:   f.realOr(3, 0),
			Offset: f.point(4),
		}
		for k := range e.I {
			e.I[k] = f.realOr(8+k, 0)
		}
		return e
	},

	"PROD": func(f *fields) cards.Card {
		return &cards.PROD{
			PID: f.integer(0), MID: f.integer(1), A: f.realOr(2, 0),
			J: f.realOr(3, 0), C: f.realOr(4, 0), NSM: f.realOr(5, 0),
		}
	},
	"PSHELL": func(f *fields) cards.Card {
		return &cards.PSHELL{
			PID:     f.integer(0),
			MID1:    f.integerOr(1, 0),
			T:       f.realOr(2, 0),
			MID2:    f.integerOr(3, 0),
			Bending: f.realOr(4, 0),
			MID3:    f.integerOr(5, 0),
			TST:     f.realOr(6, 0),
			NSM:     f.realOr(7, 0),
			Z1:      f.realOr(8, 0),
			Z2:      f.realOr(9, 0),
			MID4:    f.integerOr(10, 0),
		}
	},
	"PSOLID": func(f *fields) cards.Card {
		return &cards.PSOLID{
			PID: f.integer(0), MID: f.integer(1), CORDM: f.integerOr(2, 0),
			IN: f.str(3), STRESS: f.str(4), ISOP: f.str(5), FCTN: f.str(6),
		}
	},
	"PELAS": func(f *fields) cards.Card {
		return &cards.PELAS{PID: f.integer(0), K: f.realOr(1, 0), GE: f.realOr(2, 0), S: f.realOr(3, 0)}
	},
	"PMASS": func(f *fields) cards.Card {
		return &cards.PMASS{PID: f.integer(0), Mass: f.realOr(1, 0)}
	},

	"MAT1": func(f *fields) cards.Card {
		return &cards.MAT1{
			MID: f.integer(0), E: f.realOr(1, 0), G: f.realOr(2, 0), NU: f.realOr(3, 0),
			RHO: f.realOr(4, 0), A: f.realOr(5, 0), TREF: f.realOr(6, 0), GE: f.realOr(7, 0),
			ST: f.realOr(8, 0), SC: f.realOr(9, 0), SS: f.realOr(10, 0), MCSID: f.integerOr(11, 0),
		}
	},
	"MAT4": func(f *fields) cards.Card {
		return &cards.MAT4{
			MID: f.integer(0), K: f.realOr(1, 0), CP: f.realOr(2, 0), RHO: f.realOr(3, 0),
			H: f.realOr(4, 0), MU: f.realOr(5, 0), HGEN: f.realOr(6, 0), REFENTH: f.realOr(7, 0),
		}
	},

	"FORCE":  pointLoad,
	"MOMENT": pointLoad,
	"GRAV": func(f *fields) cards.Card {
		return &cards.GRAV{SID: f.integer(0), CID: f.integerOr(1, 0), A: f.real(2), N: f.point(3), MB: f.integerOr(6, 0)}
	},
	"LOAD":  combination,
	"DLOAD": combination,

	"SPC": func(f *fields) cards.Card {
		c := &cards.SPC{SID: f.integer(0)}
		for i := 1; i < f.len(); i += 3 {
			if f.blank(i) {
				continue
			}
			c.Points = append(c.Points, cards.GridComponent{G: f.integer(i), C: f.integerOr(i+1, 0)})
			c.D = append(c.D, f.realOr(i+2, 0))
		}
		return c
	},
	"SPC1": func(f *fields) cards.Card {
		return &cards.SPC1{SID: f.integer(0), C: f.integer(1), Grids: f.ids(2)}
	},
	"SPCADD": setUnion,
	"MPCADD": setUnion,
	"MPC": func(f *fields) cards.Card {
		c := &cards.MPC{SID: f.integer(0)}
		for i := 1; i < f.len(); i += 4 {
			if f.blank(i) {
				continue
			}
			c.Terms = append(c.Terms, cards.MPCTerm{
				GridComponent: cards.GridComponent{G: f.integer(i), C: f.integerOr(i+1, 0)},
				A:             f.realOr(i+2, 0),
			})
		}
		return c
	},
	"SUPORT": func(f *fields) cards.Card {
		c := &cards.SUPORT{}
		for i := 0; i < f.len(); i += 2 {
			if !f.blank(i) {
				c.Points = append(c.Points, cards.GridComponent{G: f.integer(i), C: f.integerOr(i+1, 0)})
			}
		}
		return c
	},

	"EIGRL": func(f *fields) cards.Card {
		return &cards.EIGRL{
			SID: f.integer(0), V1: f.realOr(1, 0), V2: f.realOr(2, 0), ND: f.integerOr(3, 0),
			MSGLVL: f.integerOr(4, 0), MAXSET: f.integerOr(5, 0), SHFSCL: f.realOr(6, 0), Norm: f.str(7),
		}
	},
	"PARAM": func(f *fields) cards.Card {
		return &cards.PARAM{Name: f.str(0), Values: f.values(1)}
	},
	"CORD2R": coord2,
	"CORD2C": coord2,
	"CORD2S": coord2,
	"SET1": func(f *fields) cards.Card {
		s := &cards.SET1{SID: f.integer(0)}
		from := 1
		if f.str(1) == "SKIN" {
			s.Skin, from = true, 2
		}
		s.IDs = f.ids(from)
		return s
	},
	"DESVAR": func(f *fields) cards.Card {
		return &cards.DESVAR{
			SetID: f.integer(0), Label: f.get(1), XInit: f.real(2),
			XLB: f.realOr(3, -1e20), XUB: f.realOr(4, 1e20), DelXV: f.realOr(5, 0), DDVal: f.integerOr(6, 0),
		}
	},
	"TABLED1": table,
	"TABLEM1": table,
	"TABDMP1": table,
	"TABRND1": table,
}

func shell(n int) builder {
	return func(f *fields) cards.Card {
		e := &cards.Shell{EID: f.integer(0), PID: f.integer(1), Nodes: make([]int, n)}
		for k := range n {
			e.Nodes[k] = f.integerOr(2+k, 0)
		}
		i := 2 + n
		if n == 8 {
			i += 4 // corner thicknesses
		}
		e.Theta, e.ZOffset = f.realOr(i, 0), f.realOr(i+1, 0)
		return e
	}
}

// solid picks the node count from the number of fields given
func solid(corners, full int) builder {
	return func(f *fields) cards.Card {
		n := corners
		if f.len()-2 > corners {
			n = full
		}
		e := &cards.Solid{EID: f.integer(0), PID: f.integer(1), Nodes: make([]int, n)}
		for k := range n {
			e.Nodes[k] = f.integerOr(2+k, 0)
		}
		return e
	}
}

func pointLoad(f *fields) cards.Card {
	return &cards.PointLoad{
		Name: f.name, SID: f.integer(0), G: f.integer(1), CID: f.integerOr(2, 0),
		F: f.realOr(3, 0), N: f.point(4),
	}
}

func combination(f *fields) cards.Card {
	c := &cards.Combination{Name: f.name, SID: f.integer(0), S: f.realOr(1, 1)}
	for i := 2; i < f.len(); i += 2 {
		if f.blank(i) {
			continue
		}
		c.Scales = append(c.Scales, f.real(i))
		c.LoadIDs = append(c.LoadIDs, f.integer(i+1))
	}
	return c
}

func setUnion(f *fields) cards.Card {
	return &cards.SetUnion{Name: f.name, SID: f.integer(0), Sets: f.ids(1)}
}

func coord2(f *fields) cards.Card {
	return &cards.Coord2{Name: f.name, CID: f.integer(0), RID: f.integerOr(1, 0), A: f.point(2), B: f.point(5), C: f.point(8)}
}

func table(f *fields) cards.Card {
	t := &cards.Table{Name: f.name, TID: f.integer(0)}
	if f.name == "TABDMP1" {
		t.Kind = f.str(1)
	} else {
		t.XAxis, t.YAxis = f.str(1), f.str(2)
	}
	for i := 8; i < f.len() && f.str(i) != "ENDT"; i += 2 {
		if f.blank(i) && f.blank(i+1) {
			continue
		}
		t.X = append(t.X, f.real(i))
		t.Y = append(t.Y, f.real(i+1))
	}
	return t
}

// deqatn keeps the equation text. In fixed format the id is in columns 9-16,
// the equation follows it and continues on the following lines from column 9.
// In free format the id and the equation are the first two comma separated
// fields; commas inside the equation are kept.
func deqatn(rc rawCard) (*cards.DEQATN, error) {
	first := expandTabs(rc.lines[0])
	if head, rest, ok := strings.Cut(first, ","); ok && cardName(head) == "DEQATN" {
		return freeDeqatn(rest, rc.lines[1:])
	}
	f := &fields{name: "DEQATN", raw: []string{first[min(8, len(first)):min(16, len(first))]}}
	e := &cards.DEQATN{EQID: f.integer(0)}
	if f.err != nil {
		return nil, f.err
	}
	if len(first) > 16 {
		e.Lines = append(e.Lines, strings.TrimRight(first[16:], " "))
	}
	for _, line := range rc.lines[1:] {
		line = expandTabs(line)
		e.Lines = append(e.Lines, strings.TrimRight(line[min(8, len(line)):], " "))
	}
	return e, nil
}

func freeDeqatn(rest string, more []string) (*cards.DEQATN, error) {
	id, eq, _ := strings.Cut(rest, ",")
	f := &fields{name: "DEQATN", raw: []string{id}}
	e := &cards.DEQATN{EQID: f.integer(0)}
	if f.err != nil {
		return nil, f.err
	}
	if eq = strings.TrimSpace(eq); eq != "" {
		e.Lines = append(e.Lines, eq)
	}
	for _, line := range more {
		// a free field continuation starts with a marker field: blank, +name or *name
		mark, text, ok := strings.Cut(line, ",")
		if mark = strings.TrimSpace(mark); ok && (mark == "" || mark[0] == '+' || mark[0] == '*') {
			line = text
		} else {
			line = expandTabs(line)
			line = line[min(8, len(line)):]
		}
		e.Lines = append(e.Lines, strings.TrimSpace(line))
	}
	return e, nil
}
