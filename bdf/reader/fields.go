package reader

import (
	"fmt"
	"strings"

	"github.com/notargets/gobdf/bdf/field"
)

// fields gives typed access to the data fields of one card. The first
// failure is kept in err and later reads return zero values.
type fields struct {
	name string
	raw  []string
	err  error
	long bool // an integer wider than a small field was read
}

func (f *fields) len() int { return len(f.raw) }

func (f *fields) get(i int) string {
	if i < 0 || i >= len(f.raw) {
		return ""
	}
	return strings.TrimSpace(f.raw[i])
}

func (f *fields) blank(i int) bool { return f.get(i) == "" }

func (f *fields) fail(i int, err error) {
	if f.err == nil {
		f.err = fmt.Errorf("%s field %d: %w", f.name, i+2, err)
	}
}

func (f *fields) integer(i int) int {
	if f.err != nil {
		return 0
	}
	s := f.get(i)
	if s == "" {
		f.fail(i, fmt.Errorf("%w: required integer is blank", field.ErrInvalidValue))
		return 0
	}
	v, err := field.ParseInt(s)
	if err != nil {
		f.fail(i, err)
		return 0
	}
	if len(strings.TrimLeft(s, "+-")) > int(field.Small) {
		f.long = true
	}
	return v
}

func (f *fields) integerOr(i, def int) int {
	if f.blank(i) {
		return def
	}
	return f.integer(i)
}

func (f *fields) real(i int) float64 {
	if f.err != nil {
		return 0
	}
	v, err := field.ParseFloat(f.get(i))
	if err != nil {
		f.fail(i, err)
		return 0
	}
	return v
}

func (f *fields) realOr(i int, def float64) float64 {
	if f.blank(i) {
		return def
	}
	return f.real(i)
}

func (f *fields) str(i int) string { return strings.ToUpper(f.get(i)) }

func (f *fields) point(i int) [3]float64 {
	return [3]float64{f.realOr(i, 0), f.realOr(i+1, 0), f.realOr(i+2, 0)}
}

// ids reads the ids from field i on, expanding "a THRU b" and skipping blanks.
func (f *fields) ids(i int) []int {
	var out []int
	for ; i < f.len(); i++ {
		switch {
		case f.blank(i):
		case f.str(i) == "THRU":
			if len(out) == 0 || f.blank(i+1) {
				f.fail(i, fmt.Errorf("%w: THRU needs ids on both sides", field.ErrInvalidValue))
				return nil
			}
			from, to := out[len(out)-1], f.integer(i+1)
			if to < from {
				f.fail(i+1, fmt.Errorf("%w: THRU range %d to %d", field.ErrInvalidValue, from, to))
				return nil
			}
			for id := from + 1; id <= to; id++ {
				out = append(out, id)
			}
			i++
		default:
			out = append(out, f.integer(i))
		}
	}
	return out
}

// values classifies the fields from i on, dropping trailing blanks.
func (f *fields) values(i int) []any {
	var out []any
	for ; i < f.len(); i++ {
		out = append(out, field.ParseValue(f.get(i)))
	}
	return field.TrimBlanks(out)
}
