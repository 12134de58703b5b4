package writer

import (
	"fmt"

	"github.com/notargets/gobdf/bdf/model"
)

// Group is a property and the elements that reference it, ascending.
type Group struct {
	PID  int
	EIDs []int
}

// Layout is the interspersed grouping of elements under their properties.
type Layout struct {
	Groups []Group
	// Orphans reference no property held by the model (PID 0 included)
	Orphans []int
	// Unassociated properties are referenced by no element
	Unassociated []int
}

// Intersperse groups every element under the property it references. Only
// properties held in m.Properties count. An element that references two
// different held properties is an error.
func Intersperse(m *model.Model) (*Layout, error) {
	var (
		owner = make(map[int]int, m.Elements.Len())
		byPID = make(map[int][]int, m.Properties.Len())
	)
	// ascending eid, so each bucket is already sorted
	for eid, e := range m.Elements.All() {
		for _, pid := range e.PropertyIDs() {
			if !m.Properties.Has(pid) {
				continue
			}
			if prev, ok := owner[eid]; ok {
				if prev != pid {
					return nil, fmt.Errorf("%w: %s %d references properties %d and %d",
						ErrMultiplePropertyAssociation, e.Type(), eid, prev, pid)
				}
				continue
			}
			owner[eid] = pid
			byPID[pid] = append(byPID[pid], eid)
		}
	}

	l := &Layout{}
	for _, pid := range m.Properties.Keys() {
		if eids := byPID[pid]; len(eids) > 0 {
			l.Groups = append(l.Groups, Group{PID: pid, EIDs: eids})
		} else {
			l.Unassociated = append(l.Unassociated, pid)
		}
	}
	for _, eid := range m.Elements.Keys() {
		if _, ok := owner[eid]; !ok {
			l.Orphans = append(l.Orphans, eid)
		}
	}
	return l, nil
}
