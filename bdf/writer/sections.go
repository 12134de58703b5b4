package writer

import (
	"bufio"
	"cmp"
	"errors"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/notargets/gobdf/bdf/cards"
	"github.com/notargets/gobdf/bdf/field"
	"github.com/notargets/gobdf/bdf/model"
)

// family is one collection of cards in write order
type family = iter.Seq[cards.Card]

func sorted[K cmp.Ordered, V cards.Card](s *model.SortedMap[K, V]) family {
	return func(yield func(cards.Card) bool) {
		for v := range s.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// grouped walks the keys in order and each group in insertion order
func grouped[K cmp.Ordered, V cards.Card](s *model.SortedMap[K, []V]) family {
	return func(yield func(cards.Card) bool) {
		for group := range s.Values() {
			for _, v := range group {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func held[V cards.Card](vs []V) family {
	return func(yield func(cards.Card) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

func byKeys[K cmp.Ordered, V cards.Card](s *model.SortedMap[K, V], keys []K) family {
	return func(yield func(cards.Card) bool) {
		for _, k := range keys {
			if v, ok := s.Get(k); ok && !yield(v) {
				return
			}
		}
	}
}

func single(present bool, c cards.Card) family {
	return func(yield func(cards.Card) bool) {
		if present {
			yield(c)
		}
	}
}

type deck struct {
	w    *bufio.Writer
	m    *model.Model
	opts Options
	log  *slog.Logger
}

// idSize is the field size of the id-heavy families; long ids force large field.
func (d *deck) idSize() field.Size {
	if d.m.LongIDs {
		return field.Large
	}
	return d.opts.Size
}

func (d *deck) render(size field.Size, families ...family) (string, int, error) {
	var (
		body strings.Builder
		n    int
	)
	for _, f := range families {
		for c := range f {
			s, err := c.Write(size, d.opts.Precision)
			if err != nil {
				return "", n, err
			}
			body.WriteString(s)
			n++
		}
	}
	return body.String(), n, nil
}

func (d *deck) emit(header, body string) error {
	if header != "" {
		if _, err := d.w.WriteString(header + "\n"); err != nil {
			return err
		}
	}
	_, err := d.w.WriteString(body)
	return err
}

// section writes header followed by the cards of families. An empty section
// writes nothing, header included.
func (d *deck) section(header string, size field.Size, families ...family) error {
	body, n, err := d.render(size, families...)
	if err != nil || n == 0 {
		return err
	}
	d.log.Debug("section", "header", header, "cards", n)
	return d.emit(header, body)
}

func (d *deck) writeParams() error {
	return d.section("$PARAMS", d.opts.Size, sorted(&d.m.Params))
}

func (d *deck) writeNodes() error {
	m := d.m
	if err := d.section("$SPOINTS", d.idSize(), single(m.SPoints != nil && len(m.SPoints.IDs) > 0, m.SPoints)); err != nil {
		return err
	}
	return d.section("$NODES", d.idSize(), single(m.GridSet != nil, m.GridSet), sorted(&m.Nodes))
}

func (d *deck) writeElementsProperties() error {
	m := d.m
	if err := d.section("$ELEMENTS", d.idSize(), sorted(&m.Elements)); err != nil {
		return err
	}
	return d.section("$PROPERTIES", d.idSize(),
		sorted(&m.Properties), sorted(&m.PELAST), sorted(&m.PDAMPT), sorted(&m.PBUSHT))
}

// writeInterspersed writes each property followed by its elements, then the
// elements without a property, then the properties without elements.
func (d *deck) writeInterspersed() error {
	m := d.m
	l, err := Intersperse(m)
	if err != nil {
		return err
	}
	groups := func(yield func(cards.Card) bool) {
		for _, g := range l.Groups {
			p, _ := m.Properties.Get(g.PID)
			if !yield(p) {
				return
			}
			for e := range byKeys(&m.Elements, g.EIDs) {
				if !yield(e) {
					return
				}
			}
		}
	}
	if err := d.section("$ELEMENTS_WITH_PROPERTIES", d.idSize(), groups); err != nil {
		return err
	}
	if err := d.section("$ELEMENTS_WITH_NO_PROPERTIES (PID=0 and unanalyzed properties)", d.idSize(),
		byKeys(&m.Elements, l.Orphans)); err != nil {
		return err
	}
	return d.section("$UNASSOCIATED_PROPERTIES", d.idSize(),
		sorted(&m.PBUSHT), sorted(&m.PDAMPT), sorted(&m.PELAST), byKeys(&m.Properties, l.Unassociated))
}

func (d *deck) writeMaterials() error {
	m := d.m
	families := []family{sorted(&m.Materials), sorted(&m.Hyperelastic), sorted(&m.Creep)}
	for _, name := range model.MaterialDependenceOrder {
		if deps, ok := m.MatDeps[name]; ok {
			families = append(families, sorted(deps))
		}
	}
	return d.section("$MATERIALS", d.opts.Size, families...)
}

func (d *deck) writeMasses() error {
	if err := d.section("$PROPERTIES_MASS", d.opts.Size, sorted(&d.m.PropertiesMass)); err != nil {
		return err
	}
	return d.section("$MASSES", d.opts.Size, sorted(&d.m.Masses))
}

// writeCommon writes every section that follows the masses, in deck order.
func (d *deck) writeCommon() error {
	m, size := d.m, d.opts.Size
	type sec struct {
		header   string
		size     field.Size
		families []family
	}
	for _, s := range []sec{
		{"$RIGID ELEMENTS", d.idSize(), []family{sorted(&m.RigidElements)}},
		{"", size, []family{sorted(&m.DMIG), sorted(&m.DMI), sorted(&m.DMIJ), sorted(&m.DMIJI), sorted(&m.DMIK)}},
		{"$LOADS", size, []family{grouped(&m.Loads)}},
		{"$DLOADS", size, []family{grouped(&m.DLoads), grouped(&m.DLoadEntries)}},
		{"$DYNAMIC", size, []family{
			sorted(&m.Methods), sorted(&m.CMethods), sorted(&m.DAreas), sorted(&m.NLParms),
			sorted(&m.NLPCIs), sorted(&m.TSteps), sorted(&m.TStepNLs), grouped(&m.Frequencies),
		}},
		{"$AERO", size, []family{
			sorted(&m.CAeros), sorted(&m.PAeros), sorted(&m.Splines), sorted(&m.Trims),
			single(m.Aero != nil, m.Aero), single(m.Aeros != nil, m.Aeros), sorted(&m.Gusts),
		}},
		{"$AERO CONTROL SURFACES", size, []family{
			grouped(&m.AELinks), sorted(&m.AEParams), sorted(&m.AEStats),
			sorted(&m.AELists), sorted(&m.AESurfs), sorted(&m.AEFacts),
		}},
		{"$FLUTTER", size, []family{sorted(&m.FLFacts), sorted(&m.Flutters), held(m.MKAeros)}},
		{"$THERMAL", size, []family{sorted(&m.PHBDYs), sorted(&m.PConvs), grouped(&m.BCs)}},
		{"$THERMAL MATERIALS", size, []family{sorted(&m.ThermalMaterials)}},
		{"$CONSTRAINTS", size, []family{held(m.Suports), sorted(&m.Suport1)}},
		{"$SPCs", size, []family{sorted(&m.SPCAdds), grouped(&m.SPCs)}},
		{"$MPCs", size, []family{sorted(&m.MPCAdds), grouped(&m.MPCs)}},
		{"$OPTIMIZATION", size, []family{
			sorted(&m.DConstrs), sorted(&m.DesVars), sorted(&m.DDVals), sorted(&m.DLinks),
			sorted(&m.DResponses), sorted(&m.DVMRels), sorted(&m.DVPRels), sorted(&m.DEquations),
			single(m.DOptPrm != nil, m.DOptPrm),
		}},
		{"$TABLES", size, []family{sorted(&m.Tables), sorted(&m.TablesD)}},
		{"$RANDOM TABLES", size, []family{sorted(&m.RandomTables)}},
		{"$SETS", size, []family{sorted(&m.Sets), held(m.DOFSets), grouped(&m.USets)}},
		{"$SUPERELEMENTS", size, []family{
			held(m.SEBSets), held(m.SECSets), held(m.SEQSets),
			sorted(&m.SESets), grouped(&m.SEUSets), held(m.SESups),
		}},
		{"$CONTACT", size, []family{
			sorted(&m.BCRParas), sorted(&m.BCTAdds), sorted(&m.BCTParas),
			sorted(&m.BCTSets), sorted(&m.BSurf), sorted(&m.BSurfS),
		}},
	} {
		if err := d.section(s.header, s.size, s.families...); err != nil {
			return err
		}
	}
	if err := d.writeRejects(); err != nil {
		return err
	}
	return d.writeCoords()
}

// writeRejects writes the structured rejects through the generic formatter,
// then the raw reject lines without trailing whitespace.
func (d *deck) writeRejects() error {
	var body strings.Builder
	for _, r := range d.m.RejectCards {
		s, err := r.Write(d.opts.Size, d.opts.Precision)
		if err != nil {
			if errors.Is(err, field.ErrInvalidValue) && holdsEquation(r) {
				return &EquationCardError{Type: r.Type(), ID: r.ID(), Err: err}
			}
			return err
		}
		body.WriteString(s)
	}
	if body.Len() > 0 {
		if err := d.emit("$REJECTS", body.String()); err != nil {
			return err
		}
	}

	body.Reset()
	for _, group := range d.m.RejectLines {
		for _, line := range group {
			if line = strings.TrimRight(line, " \t\r\n"); line != "" {
				body.WriteString(line + "\n")
			}
		}
	}
	if body.Len() == 0 {
		return nil
	}
	return d.emit("$REJECT_LINES", body.String())
}

func holdsEquation(r *cards.Reject) bool {
	return slices.ContainsFunc(r.Fields, func(v any) bool {
		s, ok := v.(string)
		return ok && strings.Contains(s, "=")
	})
}

// writeCoords skips the implicit system 0. The header is only written when
// more than one system is written.
func (d *deck) writeCoords() error {
	var cids []int
	for _, cid := range d.m.Coords.Keys() {
		if cid != 0 {
			cids = append(cids, cid)
		}
	}
	body, n, err := d.render(d.opts.Size, byKeys(&d.m.Coords, cids))
	if err != nil || n == 0 {
		return err
	}
	header := ""
	if n > 1 {
		header = "$COORDS"
	}
	return d.emit(header, body)
}
