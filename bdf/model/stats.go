package model

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gobdf/bdf/cards"
)

func values[K int | string, V any](s *SortedMap[K, V]) iter.Seq[V] { return s.Values() }

func flat[K int | string, V any](s *SortedMap[K, []V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range s.Values() {
			for _, c := range v {
				if !yield(c) {
					return
				}
			}
		}
	}
}

func each[V cards.Card](seq iter.Seq[V], yield func(cards.Card) bool) bool {
	for v := range seq {
		if !yield(v) {
			return false
		}
	}
	return true
}

// Cards iterates every card of the model, family by family. Coordinate
// system 0 is implicit and skipped.
func (m *Model) Cards() iter.Seq[cards.Card] {
	return func(yield func(cards.Card) bool) {
		var single []cards.Card
		if m.SPoints != nil {
			single = append(single, m.SPoints)
		}
		if m.GridSet != nil {
			single = append(single, m.GridSet)
		}
		if m.Aero != nil {
			single = append(single, m.Aero)
		}
		if m.Aeros != nil {
			single = append(single, m.Aeros)
		}
		if m.DOptPrm != nil {
			single = append(single, m.DOptPrm)
		}
		ok := each(slices.Values(single), yield) &&
			each(values(&m.Params), yield) &&
			each(values(&m.Nodes), yield) &&
			each(values(&m.Elements), yield) &&
			each(values(&m.Properties), yield) &&
			each(values(&m.PELAST), yield) &&
			each(values(&m.PDAMPT), yield) &&
			each(values(&m.PBUSHT), yield) &&
			each(values(&m.RigidElements), yield) &&
			each(values(&m.Materials), yield) &&
			each(values(&m.Hyperelastic), yield) &&
			each(values(&m.Creep), yield) &&
			each(values(&m.ThermalMaterials), yield) &&
			each(values(&m.PropertiesMass), yield) &&
			each(values(&m.Masses), yield) &&
			each(values(&m.DMIG), yield) &&
			each(values(&m.DMI), yield) &&
			each(values(&m.DMIJ), yield) &&
			each(values(&m.DMIJI), yield) &&
			each(values(&m.DMIK), yield) &&
			each(flat(&m.Loads), yield) &&
			each(flat(&m.DLoads), yield) &&
			each(flat(&m.DLoadEntries), yield) &&
			each(values(&m.Methods), yield) &&
			each(values(&m.CMethods), yield) &&
			each(values(&m.DAreas), yield) &&
			each(values(&m.NLParms), yield) &&
			each(values(&m.NLPCIs), yield) &&
			each(values(&m.TSteps), yield) &&
			each(values(&m.TStepNLs), yield) &&
			each(flat(&m.Frequencies), yield) &&
			each(values(&m.CAeros), yield) &&
			each(values(&m.PAeros), yield) &&
			each(values(&m.Splines), yield) &&
			each(values(&m.Trims), yield) &&
			each(values(&m.Gusts), yield) &&
			each(flat(&m.AELinks), yield) &&
			each(values(&m.AEParams), yield) &&
			each(values(&m.AEStats), yield) &&
			each(values(&m.AELists), yield) &&
			each(values(&m.AESurfs), yield) &&
			each(values(&m.AEFacts), yield) &&
			each(values(&m.FLFacts), yield) &&
			each(values(&m.Flutters), yield) &&
			each(slices.Values(m.MKAeros), yield) &&
			each(values(&m.PHBDYs), yield) &&
			each(values(&m.PConvs), yield) &&
			each(flat(&m.BCs), yield) &&
			each(slices.Values(m.Suports), yield) &&
			each(values(&m.Suport1), yield) &&
			each(values(&m.SPCAdds), yield) &&
			each(flat(&m.SPCs), yield) &&
			each(values(&m.MPCAdds), yield) &&
			each(flat(&m.MPCs), yield) &&
			each(values(&m.DConstrs), yield) &&
			each(values(&m.DesVars), yield) &&
			each(values(&m.DDVals), yield) &&
			each(values(&m.DLinks), yield) &&
			each(values(&m.DResponses), yield) &&
			each(values(&m.DVMRels), yield) &&
			each(values(&m.DVPRels), yield) &&
			each(values(&m.DEquations), yield) &&
			each(values(&m.Tables), yield) &&
			each(values(&m.TablesD), yield) &&
			each(values(&m.RandomTables), yield) &&
			each(values(&m.Sets), yield) &&
			each(slices.Values(m.DOFSets), yield) &&
			each(flat(&m.USets), yield) &&
			each(slices.Values(m.SEBSets), yield) &&
			each(slices.Values(m.SECSets), yield) &&
			each(slices.Values(m.SEQSets), yield) &&
			each(values(&m.SESets), yield) &&
			each(flat(&m.SEUSets), yield) &&
			each(slices.Values(m.SESups), yield) &&
			each(values(&m.BCRParas), yield) &&
			each(values(&m.BCTAdds), yield) &&
			each(values(&m.BCTParas), yield) &&
			each(values(&m.BCTSets), yield) &&
			each(values(&m.BSurf), yield) &&
			each(values(&m.BSurfS), yield) &&
			each(slices.Values(m.RejectCards), yield)
		if !ok {
			return
		}
		for _, name := range MaterialDependenceOrder {
			if deps, found := m.MatDeps[name]; found && !each(values(deps), yield) {
				return
			}
		}
		for cid, c := range m.Coords.All() {
			if cid == 0 {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// CardCount counts the cards of the model by card name. Scalar points count
// one per point, so the count does not depend on how SPOINT cards were
// grouped in the deck.
func (m *Model) CardCount() map[string]int {
	counts := make(map[string]int)
	for c := range m.Cards() {
		if sp, ok := c.(*cards.SPOINTS); ok {
			counts[c.Type()] += len(slices.Compact(slices.Sorted(slices.Values(sp.IDs))))
			continue
		}
		counts[c.Type()]++
	}
	if n := len(m.RejectLines); n > 0 {
		counts["REJECT_LINES"] = n
	}
	return counts
}

// Stats summarizes a model: card counts and the bounding box of its grids
// in their own (not basic) coordinates.
type Stats struct {
	Counts   map[string]int
	Nodes    int
	Elements int
	Min, Max [3]float64
}

func (m *Model) Stats() Stats {
	st := Stats{
		Counts:   m.CardCount(),
		Nodes:    m.Nodes.Len(),
		Elements: m.Elements.Len(),
	}
	if m.Nodes.Len() == 0 {
		return st
	}
	coords := [3][]float64{}
	for g := range m.Nodes.Values() {
		for d := range 3 {
			coords[d] = append(coords[d], g.X[d])
		}
	}
	for d := range 3 {
		st.Min[d] = floats.Min(coords[d])
		st.Max[d] = floats.Max(coords[d])
	}
	return st
}

// Print writes the summary, card names in alphabetical order
func (st Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "nodes = %d, elements = %d\n", st.Nodes, st.Elements)
	if st.Nodes > 0 {
		fmt.Fprintf(w, "bounding box min = %v, max = %v\n", st.Min, st.Max)
	}
	names := make([]string, 0, len(st.Counts))
	for name := range st.Counts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "%-10s %d\n", name, st.Counts[name])
	}
}

// CompareCounts lists the card names whose counts differ between a and b,
// in alphabetical order, formatted as "NAME: a -> b".
func CompareCounts(a, b map[string]int) []string {
	var diffs []string
	seen := make(map[string]bool)
	for _, counts := range []map[string]int{a, b} {
		for name := range counts {
			if seen[name] {
				continue
			}
			seen[name] = true
			if a[name] != b[name] {
				diffs = append(diffs, fmt.Sprintf("%s: %d -> %d", name, a[name], b[name]))
			}
		}
	}
	slices.Sort(diffs)
	return diffs
}
