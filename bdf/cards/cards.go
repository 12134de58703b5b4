// Package cards defines the closed set of bulk data card kinds a Model can
// hold. Every kind lays out its own fields and renders them through
// field.PrintCard, so the same value renders in small field, large field or
// large field double precision depending on what the caller asks for.
package cards

import (
	"fmt"
	"strconv"

	"github.com/notargets/gobdf/bdf/field"
)

// Card is one logical bulk data record
type Card interface {
	// Type is the card name as it appears in field 1, e.g. "GRID"
	Type() string
	// ID is the primary identifier, 0 for cards that are keyed otherwise
	ID() int
	Write(size field.Size, prec field.Precision) (string, error)
}

// Element is a card owned by zero or more properties. The writer only uses
// the ids, never the resolved property objects.
type Element interface {
	Card
	PropertyIDs() []int
}

// Checker is implemented by cards whose fields can describe no valid card,
// such as an element with a node count no card name takes.
type Checker interface {
	Check() error
}

// Keyed is implemented by cards that are identified by name rather than id.
type Keyed interface {
	Key() string
}

// RenderError is returned when one field of a card cannot be written. It names
// the card so a bad record can be found in a large model.
type RenderError struct {
	Type string
	ID   int
	Key  string
	Err  error
}

func (e *RenderError) Error() string {
	who := "id=" + strconv.Itoa(e.ID)
	if e.Key != "" {
		who = "name=" + e.Key
	}
	return fmt.Sprintf("failed printing %s %s: %v", e.Type, who, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// write renders c from its field list, attributing any failure to c.
func write(c Card, fields []any, size field.Size, prec field.Precision) (string, error) {
	s, err := field.PrintCard(c.Type(), fields, size, prec)
	if err != nil {
		return "", renderError(c, err)
	}
	return s, nil
}

func renderError(c Card, err error) *RenderError {
	re := &RenderError{Type: c.Type(), ID: c.ID(), Err: err}
	if k, ok := c.(Keyed); ok {
		re.Key = k.Key()
	}
	return re
}

// blank leaves a field empty when it holds the card's default
func blank(v, def float64) any {
	if v == def {
		return nil
	}
	return v
}

func blankInt(v, def int) any {
	if v == def {
		return nil
	}
	return v
}

func blankString(s, def string) any {
	if s == def {
		return nil
	}
	return s
}

func ints(ids []int) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

func intsBlank(ids []int) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = blankInt(id, 0)
	}
	return out
}

func floats(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func floatsBlank(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = blank(v, 0)
	}
	return out
}

// padLine extends fields with blanks up to the next multiple of 8 so that the
// following values start a new continuation line.
func padLine(fields []any) []any {
	for len(fields)%8 != 0 {
		fields = append(fields, nil)
	}
	return fields
}

func allZero(vs ...float64) bool {
	for _, v := range vs {
		if v != 0 {
			return false
		}
	}
	return true
}
