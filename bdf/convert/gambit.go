package convert

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notargets/gobdf/bdf/model"
)

type gambitElement struct {
	kind  family
	order []int // Nastran connectivity as positions in the Gambit node list
}

// gambitElementTypes maps the Gambit NTYPE codes. Bricks and pyramid bases are
// numbered lexicographically in Gambit and around the face in Nastran.
var gambitElementTypes = map[int]gambitElement{
	1: {rod, []int{0, 1}},                     // edge
	2: {shell, []int{0, 1, 2, 3}},             // quadrilateral
	3: {shell, []int{0, 1, 2}},                // triangle
	4: {solid, []int{0, 1, 3, 2, 4, 5, 7, 6}}, // brick
	5: {solid, []int{0, 1, 2, 3, 4, 5}},       // wedge
	6: {solid, []int{0, 1, 2, 3}},             // tetrahedron
	7: {solid, []int{0, 1, 3, 2, 4}},          // pyramid
}

// ReadGambitNeutral reads a Gambit neutral file (.neu). Each element group
// gets its own properties; boundary condition sets become SET1 cards of grid
// ids for node sets and of element ids for face sets.
func ReadGambitNeutral(r io.Reader, opts Options) (*model.Model, error) {
	b := newMeshBuilder(opts)
	scanner := bufio.NewScanner(r)

	next := func(what string) ([]string, error) {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected EOF reading %s", what)
		}
		return strings.Fields(scanner.Text()), nil
	}
	atoi := func(what, s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %v", what, err)
		}
		return n, nil
	}

	// Control variables from header
	var numnp, nelem, ngrps, nbsets int
	var hasControl bool
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "NUMNP") && strings.Contains(line, "NELEM") {
			values, err := next("control info")
			if err != nil {
				return nil, err
			}
			if len(values) < 4 {
				return nil, fmt.Errorf("invalid control info: %v", values)
			}
			counts := []*int{&numnp, &nelem, &ngrps, &nbsets}
			for i, p := range counts {
				if *p, err = atoi("control info", values[i]); err != nil {
					return nil, err
				}
			}
			hasControl = true
			break
		}
	}
	if !hasControl {
		return nil, fmt.Errorf("missing NUMNP NELEM control info")
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "ENDOFSECTION":

		case strings.Contains(line, "NODAL COORDINATES"):
			for range numnp {
				fields, err := next("nodes")
				if err != nil {
					return nil, err
				}
				if len(fields) < 3 {
					return nil, fmt.Errorf("invalid node line: %v", fields)
				}
				nid, err := atoi("node id", fields[0])
				if err != nil {
					return nil, err
				}
				var x [3]float64
				for j := range min(3, len(fields)-1) {
					if x[j], err = strconv.ParseFloat(fields[1+j], 64); err != nil {
						return nil, fmt.Errorf("invalid coordinate: %v", err)
					}
				}
				if err := b.vertex(nid, x); err != nil {
					return nil, err
				}
			}

		case strings.Contains(line, "ELEMENTS/CELLS"):
			for range nelem {
				fields, err := next("elements")
				if err != nil {
					return nil, err
				}
				if len(fields) < 3 {
					return nil, fmt.Errorf("invalid element line: %v", fields)
				}
				var eid, ntype, ndp int
				for i, p := range []*int{&eid, &ntype, &ndp} {
					if *p, err = atoi("element header", fields[i]); err != nil {
						return nil, err
					}
				}
				etype, ok := gambitElementTypes[ntype]
				if !ok {
					return nil, fmt.Errorf("element %d: unknown element type %d", eid, ntype)
				}
				if ndp != len(etype.order) {
					return nil, fmt.Errorf("element %d: type %d expects %d nodes, got %d",
						eid, ntype, len(etype.order), ndp)
				}
				// connectivity wraps after seven nodes
				ids := fields[3:]
				for len(ids) < ndp {
					more, err := next("element connectivity")
					if err != nil {
						return nil, err
					}
					ids = append(ids, more...)
				}
				nodes := make([]int, ndp)
				for j, k := range etype.order {
					if nodes[j], err = atoi("node id", ids[k]); err != nil {
						return nil, err
					}
				}
				b.cell(eid, etype.kind, nodes)
			}

		case strings.Contains(line, "ELEMENT GROUP"):
			if err := readGambitGroup(b, next, atoi); err != nil {
				return nil, err
			}

		case strings.Contains(line, "BOUNDARY CONDITIONS"):
			// Format: NAME ITYPE NENTRY NVALUES IBCODE1..., ITYPE 0 node, 1 element face
			header, err := next("boundary conditions")
			if err != nil {
				return nil, err
			}
			if len(header) < 4 {
				return nil, fmt.Errorf("invalid boundary condition line: %v", header)
			}
			name := header[0]
			itype, err := atoi("boundary type", header[1])
			if err != nil {
				return nil, err
			}
			nentry, err := atoi("boundary entries", header[2])
			if err != nil {
				return nil, err
			}
			ids := make([]int, 0, nentry)
			for range nentry {
				fields, err := next("boundary " + name)
				if err != nil {
					return nil, err
				}
				if len(fields) == 0 || (itype == 1 && len(fields) < 3) {
					return nil, fmt.Errorf("invalid boundary entry for %s: %v", name, fields)
				}
				id, err := atoi("boundary entry", fields[0])
				if err != nil {
					return nil, err
				}
				ids = append(ids, id)
			}
			b.set(name, ids)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %v", err)
	}
	if got := len(b.sets); got != nbsets {
		b.opts.Logger.Warn("boundary set count differs from control info", "want", nbsets, "got", got)
	}
	return b.finish()
}

// readGambitGroup reads one element group: its GROUP: line, the group name,
// the solver flags and then the element ids.
func readGambitGroup(b *meshBuilder, next func(string) ([]string, error), atoi func(string, string) (int, error)) error {
	parts, err := next("element group")
	if err != nil {
		return err
	}
	var group, numElems, material, nflags int
	tokens := map[string]*int{"GROUP:": &group, "ELEMENTS:": &numElems, "MATERIAL:": &material, "NFLAGS:": &nflags}
	for i := 0; i < len(parts)-1; i++ {
		if p, ok := tokens[parts[i]]; ok {
			if *p, err = atoi(parts[i], parts[i+1]); err != nil {
				return err
			}
		}
	}
	if group == 0 {
		return fmt.Errorf("invalid element group line: %v", parts)
	}

	name, err := next("group name")
	if err != nil {
		return err
	}
	if nflags > 0 {
		if _, err := next("group flags"); err != nil {
			return err
		}
	}
	b.opts.Logger.Debug("element group", "group", group, "name", strings.Join(name, " "),
		"elements", numElems, "material", material)

	for read := 0; read < numElems; {
		fields, err := next("group elements")
		if err != nil {
			return err
		}
		for _, f := range fields {
			eid, err := atoi("group element", f)
			if err != nil {
				return err
			}
			b.groups[eid] = group
			read++
		}
	}
	return nil
}
