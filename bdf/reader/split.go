package reader

import (
	"strings"
)

// rawCard is one bulk data card as read: its name, the data fields of all of
// its lines, and the lines themselves for cards kept as text.
type rawCard struct {
	line   int // one-based line of the card name
	name   string
	fields []string
	lines  []string
}

func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	for _, r := range line {
		if r == '\t' {
			b.WriteString(strings.Repeat(" ", 8-b.Len()%8))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isContinuation reports whether a line continues the previous card
func isContinuation(line string) bool {
	switch line[0] {
	case ' ', '+', '*', ',':
		return true
	}
	return false
}

func cardName(head string) string {
	return strings.ToUpper(strings.TrimRight(strings.TrimSpace(head), "*"))
}

// splitLine returns the head (name or continuation marker) and the data fields
// of one line in small, large or free field format.
func splitLine(line string) (head string, data []string, perLine int) {
	if strings.Contains(line, ",") {
		toks := strings.Split(line, ",")
		head, data = toks[0], toks[1:]
		perLine = 8
		if strings.HasSuffix(strings.TrimSpace(head), "*") {
			perLine = 4
		}
		return head, data, perLine
	}
	line = expandTabs(line)
	if len(line) < 72 {
		line += strings.Repeat(" ", 72-len(line))
	}
	head = line[:8]
	width := 8
	if strings.Contains(head, "*") {
		width = 16
	}
	for col := 8; col+width <= 72; col += width {
		data = append(data, line[col:col+width])
	}
	return head, data, len(data)
}

// fieldsOf joins the data fields of every line of a card. A line that is
// followed by another one is padded to its full field count.
func fieldsOf(lines []string) (name string, out []string) {
	for i, line := range lines {
		head, data, perLine := splitLine(line)
		if i == 0 {
			name = cardName(head)
		}
		if i < len(lines)-1 {
			for len(data) < perLine {
				data = append(data, "")
			}
		}
		out = append(out, data...)
	}
	return name, out
}
