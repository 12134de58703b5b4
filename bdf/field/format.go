// Package field renders scalar values into the fixed-width fields of a bulk
// data deck and assembles whole cards into small (8 column) or large (16
// column) field lines.
package field

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size is the width of a data field in columns
type Size int

const (
	Small Size = 8
	Large Size = 16
)

// Precision selects the float encoding used in large field cards
type Precision uint8

const (
	Single Precision = iota
	Double
)

func (p Precision) String() string {
	switch p {
	case Single:
		return "single"
	case Double:
		return "double"
	}
	return fmt.Sprintf("Precision(%d)", uint8(p))
}

var (
	ErrInvalidConfig = errors.New("invalid field size/precision combination")
	ErrFieldOverflow = errors.New("value does not fit in field")
	ErrInvalidValue  = errors.New("value cannot be written to a field")
)

// Validate checks a size/precision pair. Double precision needs 16 columns.
func Validate(size Size, prec Precision) error {
	switch size {
	case Small:
		if prec != Single {
			return fmt.Errorf("%w: size=8 requires single precision, got %s", ErrInvalidConfig, prec)
		}
	case Large:
		if prec != Single && prec != Double {
			return fmt.Errorf("%w: size=16 requires single or double precision, got %s", ErrInvalidConfig, prec)
		}
	default:
		return fmt.Errorf("%w: size=%d, must be 8 or 16", ErrInvalidConfig, int(size))
	}
	return nil
}

// Format renders v into exactly size columns. Supported values are nil (blank),
// signed integers, float32/float64 and strings.
func Format(v any, size Size, prec Precision) (string, error) {
	if err := Validate(size, prec); err != nil {
		return "", err
	}
	w := int(size)
	switch x := v.(type) {
	case nil:
		return strings.Repeat(" ", w), nil
	case int:
		return formatInt(int64(x), w)
	case int32:
		return formatInt(int64(x), w)
	case int64:
		return formatInt(x, w)
	case float32:
		return formatReal(float64(x), w, prec)
	case float64:
		return formatReal(x, w, prec)
	case string:
		return formatString(x, w)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

func formatInt(i int64, w int) (string, error) {
	s := strconv.FormatInt(i, 10)
	if len(s) > w {
		return "", fmt.Errorf("%w: integer %s needs %d columns, have %d", ErrFieldOverflow, s, len(s), w)
	}
	return padLeft(s, w), nil
}

func formatString(s string, w int) (string, error) {
	if s == "" {
		return strings.Repeat(" ", w), nil
	}
	if strings.ContainsRune(s, '=') {
		return "", fmt.Errorf("%w: %q contains '='", ErrInvalidValue, s)
	}
	if len(s) > w {
		return "", fmt.Errorf("%w: %q is longer than %d columns", ErrFieldOverflow, s, w)
	}
	return padRight(s, w), nil
}

func formatReal(v float64, w int, prec Precision) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, v)
	}
	if prec == Double {
		return padLeft(scientificDouble(v, w), w), nil
	}
	if v == 0 {
		return padLeft("0.", w), nil
	}
	best := scientific(v, w)
	if fixed, ok := fixedPoint(v, w); ok && roundTripError(fixed, v) <= roundTripError(best, v) {
		best = fixed
	}
	return padLeft(best, w), nil
}

// fixedPoint returns the most precise positional form of v that fits in w
// columns, with redundant zeros removed (0.25 -> .25, 3.0 -> 3.).
func fixedPoint(v float64, w int) (string, bool) {
	for d := w; d >= 0; d-- {
		s := compactFixed(strconv.FormatFloat(v, 'f', d, 64))
		if len(s) > w {
			continue
		}
		if f, err := ParseFloat(s); err != nil || f == 0 {
			return "", false
		}
		return s, true
	}
	return "", false
}

func compactFixed(s string) string {
	if !strings.Contains(s, ".") {
		return s + "."
	}
	s = strings.TrimRight(s, "0")
	switch {
	case strings.HasPrefix(s, "0."):
		s = s[1:]
	case strings.HasPrefix(s, "-0."):
		s = "-" + s[2:]
	}
	return s
}

// scientific writes v as mantissa and signed exponent without the E, the
// compact form the deck format accepts (1.2345-7 is 1.2345e-7).
func scientific(v float64, w int) string {
	var out string
	for d := w; d >= 0; d-- {
		mant, exp, _ := strings.Cut(exponential(v, d, 'e'), "e")
		if strings.Contains(mant, ".") {
			mant = strings.TrimRight(mant, "0")
		} else {
			mant += "."
		}
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		out = mant + exp[:1] + digits
		if len(out) <= w {
			break
		}
	}
	return out
}

func scientificDouble(v float64, w int) string {
	if v == 0 {
		v = 0 // drops the sign of -0
	}
	var out string
	for d := 10; d >= 0; d-- {
		out = strings.Replace(exponential(v, d, 'E'), "E", "D", 1)
		if len(out) <= w {
			break
		}
	}
	return out
}

// exponential formats v with d mantissa digits after the point. Near
// MaxFloat64 rounding can carry past the largest float, so the mantissa is
// cut instead whenever the rounded form does not read back.
func exponential(v float64, d int, e byte) string {
	s := strconv.FormatFloat(v, e, d, 64)
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return s
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, e, -1, 64), string(e))
	whole, frac, _ := strings.Cut(mant, ".")
	frac = (frac + strings.Repeat("0", d))[:d]
	if d == 0 {
		return whole + string(e) + exp
	}
	return whole + "." + frac + string(e) + exp
}

func roundTripError(s string, v float64) float64 {
	f, err := ParseFloat(s)
	if err != nil {
		return math.Inf(1)
	}
	return math.Abs(f - v)
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
