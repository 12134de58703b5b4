// Package casecontrol holds the case control deck: global requests followed
// by numbered subcases, closed by BEGIN BULK.
package casecontrol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/notargets/gobdf/bdf/model"
)

const BeginBulk = "BEGIN BULK"

var ErrBadSubcase = errors.New("invalid subcase")

// Subcase is one block of requests. Lines are kept as read; requests of the
// form KEY = VALUE are also indexed by KEY.
type Subcase struct {
	ID     int
	Lines  []string
	params map[string]int // key -> index in Lines
}

func newSubcase(id int) *Subcase {
	return &Subcase{ID: id, params: make(map[string]int)}
}

func (s *Subcase) add(line string) {
	if key, _, ok := splitRequest(line); ok {
		if i, found := s.params[key]; found {
			s.Lines[i] = line
			return
		}
		s.params[key] = len(s.Lines)
	}
	s.Lines = append(s.Lines, line)
}

func (s *Subcase) get(key string) (string, bool) {
	i, ok := s.params[strings.ToUpper(key)]
	if !ok {
		return "", false
	}
	_, value, _ := splitRequest(s.Lines[i])
	return value, true
}

// splitRequest splits "DISP(PLOT) = ALL" into DISP and ALL
func splitRequest(line string) (key, value string, ok bool) {
	lhs, rhs, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	lhs = strings.TrimSpace(lhs)
	if i := strings.IndexAny(lhs, "( "); i >= 0 {
		lhs = lhs[:i]
	}
	if lhs == "" {
		return "", "", false
	}
	return strings.ToUpper(lhs), strings.TrimSpace(rhs), true
}

// Deck is the case control deck. Subcase 0 holds the global requests.
type Deck struct {
	global   *Subcase
	subcases model.SortedMap[int, *Subcase]
}

func New() *Deck {
	return &Deck{global: newSubcase(0)}
}

// Parse builds a deck from the lines between CEND and BEGIN BULK. A BEGIN
// BULK line ends the deck.
func Parse(lines []string) (*Deck, error) {
	d := New()
	current := d.global
	for n, raw := range lines {
		line := strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimSpace(line)
		upper := strings.ToUpper(trimmed)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(upper, BeginBulk):
			return d, nil
		case strings.HasPrefix(upper, "SUBCASE"):
			id, err := strconv.Atoi(strings.TrimSpace(trimmed[len("SUBCASE"):]))
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("%w on line %d: %q", ErrBadSubcase, n+1, trimmed)
			}
			if d.subcases.Has(id) {
				return nil, fmt.Errorf("%w on line %d: subcase %d repeated", ErrBadSubcase, n+1, id)
			}
			current = newSubcase(id)
			d.subcases.Set(id, current)
		default:
			current.add(trimmed)
		}
	}
	return d, nil
}

// Subcases lists the subcase ids in ascending order
func (d *Deck) Subcases() []int { return d.subcases.Keys() }

func (d *Deck) HasSubcase(id int) bool { return d.subcases.Has(id) }

// Parameter looks key up in the subcase, falling back to the global requests.
func (d *Deck) Parameter(subcase int, key string) (string, bool) {
	if s, ok := d.subcases.Get(subcase); ok {
		if v, found := s.get(key); found {
			return v, true
		}
	}
	return d.global.get(key)
}

// Add sets KEY = VALUE in a subcase, 0 for the global requests, creating the
// subcase when needed.
func (d *Deck) Add(subcase int, key, value string) error {
	if subcase < 0 {
		return fmt.Errorf("%w: %d", ErrBadSubcase, subcase)
	}
	s := d.global
	if subcase > 0 {
		var ok bool
		if s, ok = d.subcases.Get(subcase); !ok {
			s = newSubcase(subcase)
			d.subcases.Set(subcase, s)
		}
	}
	s.add(strings.ToUpper(key) + " = " + value)
	return nil
}

// String renders the deck including the closing BEGIN BULK line.
func (d *Deck) String() string {
	var b strings.Builder
	for _, line := range d.global.Lines {
		b.WriteString(line + "\n")
	}
	for id, s := range d.subcases.All() {
		fmt.Fprintf(&b, "SUBCASE %d\n", id)
		for _, line := range s.Lines {
			b.WriteString("    " + line + "\n")
		}
	}
	b.WriteString(BeginBulk + "\n")
	return b.String()
}
