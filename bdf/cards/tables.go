package cards

import (
	"fmt"

	"github.com/notargets/gobdf/bdf/field"
)

// Table is one of the x/y tabular functions: TABLED1, TABLEM1, TABDMP1 or
// TABRND1. The header line is written as is, then the x/y pairs and ENDT.
type Table struct {
	Name  string
	TID   int
	Kind  string // damping type of TABDMP1, e.g. G, CRIT, Q
	XAxis string // LINEAR or LOG
	YAxis string
	X, Y  []float64
}

var tableNames = map[string]bool{"TABLED1": true, "TABLEM1": true, "TABDMP1": true, "TABRND1": true}

// IsTable reports whether name is a Table card.
func IsTable(name string) bool { return tableNames[name] }

func (t *Table) Type() string { return t.Name }
func (t *Table) ID() int      { return t.TID }
func (t *Table) Write(size field.Size, prec field.Precision) (string, error) {
	if !tableNames[t.Name] {
		return "", renderError(t, fmt.Errorf("%w: unknown table card %q", field.ErrInvalidValue, t.Name))
	}
	if len(t.X) != len(t.Y) {
		return "", renderError(t, fmt.Errorf("%w: %d x values for %d y values", field.ErrInvalidValue, len(t.X), len(t.Y)))
	}
	var fields []any
	switch t.Name {
	case "TABDMP1":
		fields = []any{t.TID, blankString(t.Kind, "G")}
	default:
		fields = []any{t.TID, blankString(t.XAxis, "LINEAR"), blankString(t.YAxis, "LINEAR")}
	}
	fields = padLine(fields)
	for i := range t.X {
		fields = append(fields, t.X[i], t.Y[i])
	}
	return write(t, append(fields, "ENDT"), size, prec)
}
