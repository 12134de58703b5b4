// Package convert imports volume and surface meshes from other formats into
// a bulk data model: GRID cards for the vertices, CROD/CTRIA3/CQUAD4/CTETRA/
// CPYRAM/CPENTA/CHEXA for the cells, one property per element group and
// element family, and one MAT1 they all share.
package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/notargets/gobdf/bdf/cards"
	"github.com/notargets/gobdf/bdf/model"
)

type Options struct {
	Material  cards.MAT1
	Thickness float64 // PSHELL thickness
	Area      float64 // PROD area
	Logger    *slog.Logger
}

// DefaultOptions uses steel in SI units and unit section sizes.
func DefaultOptions() Options {
	return Options{
		Material:  cards.MAT1{MID: 1, E: 2.1e11, NU: 0.3, RHO: 7850},
		Thickness: 1,
		Area:      1,
	}
}

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string, opts Options) (*model.Model, error) {
	var read func(io.Reader, Options) (*model.Model, error)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".su2":
		read = ReadSU2
	case ".neu":
		read = ReadGambitNeutral
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return read(file, opts)
}

type family int

const (
	rod family = iota
	shell
	solid
)

func (f family) String() string {
	return [...]string{"rod", "shell", "solid"}[f]
}

type cell struct {
	eid   int
	kind  family
	nodes []int
}

// meshBuilder collects vertices and cells, then files them into a model once
// the element groups are known.
type meshBuilder struct {
	opts   Options
	m      *model.Model
	cells  []cell
	groups map[int]int // eid -> group
	pids   map[[2]int]int
	sets   [][]int
	names  []string
}

func newMeshBuilder(opts Options) *meshBuilder {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &meshBuilder{
		opts:   opts,
		m:      model.New(),
		groups: make(map[int]int),
		pids:   make(map[[2]int]int),
	}
}

func (b *meshBuilder) vertex(nid int, x [3]float64) error {
	return b.m.Add(&cards.GRID{NID: nid, X: x})
}

func (b *meshBuilder) cell(eid int, kind family, nodes []int) {
	b.cells = append(b.cells, cell{eid: eid, kind: kind, nodes: nodes})
}

// set records a named group of ids; it becomes a SET1 numbered in order.
func (b *meshBuilder) set(name string, ids []int) {
	ids = slices.Compact(slices.Sorted(slices.Values(ids)))
	b.sets = append(b.sets, ids)
	b.names = append(b.names, name)
}

func (b *meshBuilder) property(group int, kind family) (int, error) {
	key := [2]int{group, int(kind)}
	if pid, ok := b.pids[key]; ok {
		return pid, nil
	}
	pid := len(b.pids) + 1
	b.pids[key] = pid
	mid := b.opts.Material.MID
	var p cards.Card
	switch kind {
	case rod:
		p = &cards.PROD{PID: pid, MID: mid, A: b.opts.Area}
	case shell:
		p = &cards.PSHELL{PID: pid, MID1: mid, T: b.opts.Thickness, MID2: mid}
	default:
		p = &cards.PSOLID{PID: pid, MID: mid}
	}
	b.opts.Logger.Debug("property", "pid", pid, "group", group, "family", kind)
	return pid, b.m.Add(p)
}

func (b *meshBuilder) finish() (*model.Model, error) {
	for _, c := range b.cells {
		pid, err := b.property(b.groups[c.eid], c.kind)
		if err != nil {
			return nil, err
		}
		var e cards.Card
		switch c.kind {
		case rod:
			e = &cards.CROD{EID: c.eid, PID: pid, G: [2]int{c.nodes[0], c.nodes[1]}}
		case shell:
			e = &cards.Shell{EID: c.eid, PID: pid, Nodes: c.nodes}
		default:
			e = &cards.Solid{EID: c.eid, PID: pid, Nodes: c.nodes}
		}
		if err := b.m.Add(e); err != nil {
			return nil, err
		}
	}
	if len(b.pids) > 0 {
		mat := b.opts.Material
		if err := b.m.Add(&mat); err != nil {
			return nil, err
		}
	}
	for i, ids := range b.sets {
		b.opts.Logger.Info("boundary set", "sid", i+1, "name", b.names[i], "ids", len(ids))
		if err := b.m.Add(&cards.SET1{SID: i + 1, IDs: ids}); err != nil {
			return nil, err
		}
	}
	b.m.SourceFormat = "msc"
	return b.m, nil
}
