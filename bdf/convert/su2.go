package convert

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notargets/gobdf/bdf/model"
)

type su2Element struct {
	kind  family
	nodes int
}

// su2ElementTypes maps SU2/VTK element type identifiers onto card families
var su2ElementTypes = map[int]su2Element{
	3:  {rod, 2},   // VTK_LINE
	5:  {shell, 3}, // VTK_TRIANGLE
	9:  {shell, 4}, // VTK_QUAD
	10: {solid, 4}, // VTK_TETRA
	12: {solid, 8}, // VTK_HEXAHEDRON
	13: {solid, 6}, // VTK_WEDGE
	14: {solid, 5}, // VTK_PYRAMID
}

// sectionSize reads the count of a "KEY= n" line
func sectionSize(line, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, key)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s line: %s", strings.TrimSuffix(key, "="), line)
	}
	return n, nil
}

// ReadSU2 reads an SU2 native format mesh. SU2 numbers points and elements
// implicitly from zero; GRID and element ids are those plus one. Each
// boundary marker becomes a SET1 of its grid ids.
func ReadSU2(r io.Reader, opts Options) (*model.Model, error) {
	b := newMeshBuilder(opts)
	scanner := bufio.NewScanner(r)

	var ndime, npoin int
	var hasNDIME, hasNPOIN bool

	next := func(what string) ([]string, error) {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected EOF reading %s", what)
		}
		return strings.Fields(scanner.Text()), nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.Index(line, "%"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var err error
		switch {
		case strings.HasPrefix(line, "NDIME="):
			hasNDIME = true
			if ndime, err = sectionSize(line, "NDIME="); err != nil {
				return nil, err
			}
			if ndime != 2 && ndime != 3 {
				return nil, fmt.Errorf("unsupported dimension: NDIME=%d", ndime)
			}

		case strings.HasPrefix(line, "NPOIN="):
			if !hasNDIME {
				return nil, fmt.Errorf("NPOIN= before NDIME=")
			}
			hasNPOIN = true
			if npoin, err = sectionSize(line, "NPOIN="); err != nil {
				return nil, err
			}
			for i := range npoin {
				fields, err := next("nodes")
				if err != nil {
					return nil, err
				}
				if len(fields) < ndime {
					return nil, fmt.Errorf("invalid node line %d: expected at least %d coordinates", i, ndime)
				}
				var x [3]float64
				for j := range ndime {
					if x[j], err = strconv.ParseFloat(fields[j], 64); err != nil {
						return nil, fmt.Errorf("invalid coordinate: %v", err)
					}
				}
				if err := b.vertex(i+1, x); err != nil {
					return nil, err
				}
			}

		case strings.HasPrefix(line, "NELEM="):
			nelem, err := sectionSize(line, "NELEM=")
			if err != nil {
				return nil, err
			}
			for i := range nelem {
				fields, err := next("elements")
				if err != nil {
					return nil, err
				}
				kind, nodes, err := su2Connectivity(fields, npoin)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				b.cell(i+1, kind, nodes)
			}

		case strings.HasPrefix(line, "NMARK="):
			nmark, err := sectionSize(line, "NMARK=")
			if err != nil {
				return nil, err
			}
			for i := range nmark {
				fields, err := next(fmt.Sprintf("marker %d", i))
				if err != nil {
					return nil, err
				}
				tag := strings.Join(fields, " ")
				if !strings.HasPrefix(tag, "MARKER_TAG=") {
					return nil, fmt.Errorf("expected MARKER_TAG=, got: %s", tag)
				}
				tag = strings.TrimSpace(strings.TrimPrefix(tag, "MARKER_TAG="))

				if fields, err = next("marker elements for " + tag); err != nil {
					return nil, err
				}
				count, err := sectionSize(strings.Join(fields, ""), "MARKER_ELEMS=")
				if err != nil {
					return nil, err
				}
				var grids []int
				for range count {
					fields, err := next("boundary elements")
					if err != nil {
						return nil, err
					}
					kind, nodes, err := su2Connectivity(fields, npoin)
					if err != nil {
						return nil, fmt.Errorf("marker %s: %w", tag, err)
					}
					if kind == solid {
						return nil, fmt.Errorf("marker %s: volume element on a boundary", tag)
					}
					grids = append(grids, nodes...)
				}
				b.set(tag, grids)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %v", err)
	}
	if !hasNDIME {
		return nil, fmt.Errorf("missing required NDIME= section")
	}
	if !hasNPOIN {
		return nil, fmt.Errorf("missing required NPOIN= section")
	}
	return b.finish()
}

// su2Connectivity reads one element line, returning one-based grid ids.
// Trailing fields past the connectivity, such as a legacy explicit id, are
// ignored.
func su2Connectivity(fields []string, npoin int) (family, []int, error) {
	if len(fields) < 2 {
		return 0, nil, fmt.Errorf("invalid element line")
	}
	vtk, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid element type: %v", err)
	}
	etype, ok := su2ElementTypes[vtk]
	if !ok {
		return 0, nil, fmt.Errorf("unknown element type: %d", vtk)
	}
	if len(fields) < etype.nodes+1 {
		return 0, nil, fmt.Errorf("element type %d expects %d nodes, got %d fields",
			vtk, etype.nodes, len(fields)-1)
	}
	nodes := make([]int, etype.nodes)
	for j := range nodes {
		n, err := strconv.Atoi(fields[1+j])
		if err != nil {
			return 0, nil, fmt.Errorf("invalid node index: %v", err)
		}
		if n < 0 || n >= npoin {
			return 0, nil, fmt.Errorf("node index %d out of range [0,%d)", n, npoin)
		}
		nodes[j] = n + 1
	}
	return etype.kind, nodes, nil
}
