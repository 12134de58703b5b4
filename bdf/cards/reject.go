package cards

import (
	"fmt"

	"github.com/notargets/gobdf/bdf/field"
)

// Reject is a card the reader recognized but kept as raw fields. Fields[0]
// is the card name, the rest are written back through the generic
// formatter as read.
type Reject struct {
	Fields []any
}

func (r *Reject) Type() string {
	if len(r.Fields) == 0 {
		return ""
	}
	if s, ok := r.Fields[0].(string); ok {
		return s
	}
	return fmt.Sprint(r.Fields[0])
}

// ID is the first data field when it is an integer
func (r *Reject) ID() int {
	if len(r.Fields) > 1 {
		if id, ok := r.Fields[1].(int); ok {
			return id
		}
	}
	return 0
}

func (r *Reject) Write(size field.Size, prec field.Precision) (string, error) {
	if len(r.Fields) == 0 {
		return "", renderError(r, fmt.Errorf("%w: reject card has no name", field.ErrInvalidValue))
	}
	return write(r, r.Fields[1:], size, prec)
}
