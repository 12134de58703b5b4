package cards

import (
	"fmt"

	"github.com/notargets/gobdf/bdf/field"
)

// Coord2 is a coordinate system given by three points in a reference system:
// the origin A, a point B on the z axis and a point C in the xz plane.
// Name selects rectangular, cylindrical or spherical (CORD2R, CORD2C, CORD2S).
type Coord2 struct {
	Name    string
	CID     int
	RID     int
	A, B, C [3]float64
}

func (c *Coord2) Type() string { return c.Name }
func (c *Coord2) ID() int      { return c.CID }
func (c *Coord2) Write(size field.Size, prec field.Precision) (string, error) {
	switch c.Name {
	case "CORD2R", "CORD2C", "CORD2S":
	default:
		return "", renderError(c, fmt.Errorf("%w: unknown coordinate system card %q", field.ErrInvalidValue, c.Name))
	}
	fields := []any{c.CID, blankInt(c.RID, 0)}
	for _, p := range [][3]float64{c.A, c.B, c.C} {
		fields = append(fields, p[0], p[1], p[2])
	}
	return write(c, fields, size, prec)
}
