package field

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFloat reads a deck real. Besides the usual Go syntax it accepts a D
// exponent (1.5D-3) and the implicit exponent form (1.5-3, .5+2).
func ParseFloat(s string) (float64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty real", ErrInvalidValue)
	}
	s = strings.Replace(s, "D", "E", 1)
	if !strings.Contains(s, "E") {
		if i := strings.LastIndexAny(s, "+-"); i > 0 {
			s = s[:i] + "E" + s[i:]
		}
	}
	if !strings.ContainsAny(s, ".E") {
		return 0, fmt.Errorf("%w: %q is not a real (no decimal point)", ErrInvalidValue, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidValue, s, err)
	}
	return f, nil
}

// ParseInt reads a deck integer field.
func ParseInt(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s)
	}
	return i, nil
}

// ParseValue classifies a raw field: blank -> nil, integer -> int, real ->
// float64, anything else -> the trimmed string.
func ParseValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	c := s[0]
	if c == '.' || c == '+' || c == '-' || (c >= '0' && c <= '9') {
		if f, err := ParseFloat(s); err == nil {
			return f
		}
	}
	return s
}
