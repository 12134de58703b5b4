// Package writer serializes a model.Model into a bulk data deck: provenance,
// executive and case control, then the bulk data sections in a fixed order.
package writer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/notargets/gobdf/bdf/field"
)

var (
	ErrNoDestination               = errors.New("no output destination")
	ErrMissingBeginBulk            = errors.New("case control deck does not contain BEGIN BULK")
	ErrUnrejectableEquation        = errors.New("reject card holds an equation and cannot be written back")
	ErrMultiplePropertyAssociation = errors.New("element is associated with more than one property")
)

// EquationCardError reports a rejected card whose fields hold '=', the mark of
// an equation card the reader split into fields.
type EquationCardError struct {
	Type string
	ID   int
	Err  error
}

func (e *EquationCardError) Error() string {
	return fmt.Sprintf("%s: %s id=%d: %v", ErrUnrejectableEquation, e.Type, e.ID, e.Err)
}

func (e *EquationCardError) Unwrap() error { return e.Err }

func (e *EquationCardError) Is(target error) bool { return target == ErrUnrejectableEquation }

type Options struct {
	Size         field.Size
	Precision    field.Precision
	Interspersed bool
	// EndData forces ENDDATA on or off; nil writes it when the input had it
	EndData *bool
	Logger  *slog.Logger
}

// DefaultOptions is small field, single precision, interspersed
func DefaultOptions() Options {
	return Options{Size: field.Small, Precision: field.Single, Interspersed: true}
}

func (o Options) validate() error {
	return field.Validate(o.Size, o.Precision)
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o Options) writeEndData(seen bool) bool {
	if o.EndData == nil {
		return seen
	}
	return *o.EndData
}
