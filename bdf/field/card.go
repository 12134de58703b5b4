package field

import (
	"fmt"
	"strings"
)

// PrintCard renders a card name and its data fields. Small field cards carry
// 8 data fields per line and continue on lines with a blank first field;
// large field cards are named NAME*, carry 4 fields per line and continue on
// lines starting with '*'. Trailing blank fields are dropped.
func PrintCard(name string, fields []any, size Size, prec Precision) (string, error) {
	if err := Validate(size, prec); err != nil {
		return "", err
	}
	head, cont, perLine := name, "        ", 8
	if size == Large {
		head, cont, perLine = name+"*", "*       ", 4
	}
	if len(head) > 8 {
		return "", fmt.Errorf("%w: card name %q is longer than 8 columns", ErrFieldOverflow, head)
	}
	fields = TrimBlanks(fields)

	var (
		out  strings.Builder
		line strings.Builder
	)
	line.WriteString(padRight(head, 8))
	for i, v := range fields {
		s, err := Format(v, size, prec)
		if err != nil {
			return "", fmt.Errorf("%s field %d: %w", name, i+2, err)
		}
		line.WriteString(s)
		if (i+1)%perLine == 0 && i+1 < len(fields) {
			out.WriteString(finishLine(line.String()))
			line.Reset()
			line.WriteString(cont)
		}
	}
	out.WriteString(finishLine(line.String()))
	return out.String(), nil
}

// TrimBlanks drops trailing nil and empty string fields.
func TrimBlanks(fields []any) []any {
	n := len(fields)
	for n > 0 {
		switch v := fields[n-1].(type) {
		case nil:
		case string:
			if strings.TrimSpace(v) != "" {
				return fields[:n]
			}
		default:
			return fields[:n]
		}
		n--
	}
	return fields[:n]
}

func finishLine(s string) string {
	s = strings.TrimRight(s, " ")
	if s == "" {
		// a wholly blank continuation would be read as an empty line
		s = "+"
	}
	return s + "\n"
}
