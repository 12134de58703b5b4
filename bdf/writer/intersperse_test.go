package writer

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gobdf/bdf/cards"
)

func TestIntersperse(t *testing.T) {
	m := rods(t, &cards.PROD{PID: 7, MID: 1, A: 1}, &cards.CROD{EID: 13, PID: 99, G: [2]int{4, 5}})
	l, err := Intersperse(m)
	require.NoError(t, err)
	assert.Equal(t, []Group{{PID: 5, EIDs: []int{10, 11}}}, l.Groups)
	assert.Equal(t, []int{12, 13}, l.Orphans, "PID 0 and a missing property are both orphans")
	assert.Equal(t, []int{7}, l.Unassociated)
}

func TestIntersperseCoversEveryElementOnce(t *testing.T) {
	var cs []cards.Card
	for pid := 1; pid <= 4; pid++ {
		cs = append(cs, &cards.PSHELL{PID: pid, MID1: 1, T: 0.1})
	}
	for eid := 100; eid > 0; eid-- {
		cs = append(cs, &cards.Shell{EID: eid, PID: eid % 6, Nodes: []int{1, 2, 3}})
	}
	m := build(t, cs...)
	l, err := Intersperse(m)
	require.NoError(t, err)

	seen := slices.Clone(l.Orphans)
	assert.True(t, slices.IsSorted(l.Orphans))
	for _, g := range l.Groups {
		assert.True(t, slices.IsSorted(g.EIDs))
		seen = append(seen, g.EIDs...)
	}
	slices.Sort(seen)
	assert.Equal(t, m.Elements.Keys(), seen)
	assert.Empty(t, l.Unassociated)
}
