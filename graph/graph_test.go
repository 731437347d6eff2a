package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// atomSnapshot projects the comparable, attribution-independent shape of
// an atom for structural diffing with go-cmp.
type atomSnapshot struct {
	Element  string
	Aromatic bool
	Charge   int
	Index    int
}

func snapshotAtoms(atoms []*Atom) []atomSnapshot {
	out := make([]atomSnapshot, len(atoms))
	for i, a := range atoms {
		out[i] = atomSnapshot{Element: a.Element, Aromatic: a.Aromatic, Charge: a.Charge, Index: a.Index}
	}
	return out
}

func TestAddAtomAssignsDenseIndices(t *testing.T) {
	g := NewGraph(false)
	a0 := g.AddAtom(NewAtom("C"), true)
	a1 := g.AddAtom(NewAtom("O"), false)
	assert.Equal(t, 0, a0)
	assert.Equal(t, 1, a1)
	assert.Equal(t, []int{0}, g.Roots)
}

func TestAddBondRequiresOrder(t *testing.T) {
	g := NewGraph(false)
	g.AddAtom(NewAtom("C"), true)
	g.AddAtom(NewAtom("C"), false)
	_, err := g.AddBond(1, 0, OrderSingle, "")
	require.Error(t, err)
}

func TestAddBondUpdatesBondCountBothEndpoints(t *testing.T) {
	g := NewGraph(false)
	g.AddAtom(NewAtom("C"), true)
	g.AddAtom(NewAtom("C"), false)
	_, err := g.AddBond(0, 1, OrderDouble, "")
	require.NoError(t, err)
	assert.Equal(t, 2.0, g.BondCount(0))
	assert.Equal(t, 2.0, g.BondCount(1))
}

func TestAddBondRejectsDuplicate(t *testing.T) {
	g := NewGraph(false)
	g.AddAtom(NewAtom("C"), true)
	g.AddAtom(NewAtom("C"), false)
	_, err := g.AddBond(0, 1, OrderSingle, "")
	require.NoError(t, err)
	_, err = g.AddBond(0, 1, OrderSingle, "")
	require.Error(t, err)
}

func TestGetDirBondSynthesizesReverse(t *testing.T) {
	g := NewGraph(false)
	g.AddAtom(NewAtom("C"), true)
	g.AddAtom(NewAtom("O"), false)
	_, err := g.AddBond(0, 1, OrderDouble, "")
	require.NoError(t, err)

	fwd, ok := g.GetDirBond(0, 1)
	require.True(t, ok)
	assert.Equal(t, 0, fwd.Source)
	assert.Equal(t, 1, fwd.Dest)

	rev, ok := g.GetDirBond(1, 0)
	require.True(t, ok)
	assert.Equal(t, 1, rev.Source)
	assert.Equal(t, 0, rev.Dest)
	assert.Equal(t, OrderDouble, rev.Order)
}

func TestAddRingBondStoresBothDirections(t *testing.T) {
	g := NewGraph(false)
	for i := 0; i < 6; i++ {
		g.AddAtom(NewAtom("C"), i == 0)
	}
	for i := 0; i < 5; i++ {
		_, err := g.AddBond(i, i+1, OrderSingle, "")
		require.NoError(t, err)
	}
	_, _, err := g.AddRingBond(0, 5, OrderSingle, "", "", -1, -1)
	require.NoError(t, err)

	assert.True(t, g.HasOutgoingRingBond(0))
	assert.True(t, g.HasOutgoingRingBond(5))

	fwd, ok := g.GetDirBond(0, 5)
	require.True(t, ok)
	assert.True(t, fwd.RingBond)
	rev, ok := g.GetDirBond(5, 0)
	require.True(t, ok)
	assert.True(t, rev.RingBond)
}

func TestUpdateBondOrderUpdatesBothRingDirections(t *testing.T) {
	g := NewGraph(false)
	g.AddAtom(NewAtom("C"), true)
	g.AddAtom(NewAtom("C"), false)
	_, _, err := g.AddRingBond(0, 1, OrderSingle, "", "", -1, -1)
	require.NoError(t, err)

	require.NoError(t, g.UpdateBondOrder(0, 1, OrderDouble))
	fwd, _ := g.GetDirBond(0, 1)
	rev, _ := g.GetDirBond(1, 0)
	assert.Equal(t, OrderDouble, fwd.Order)
	assert.Equal(t, OrderDouble, rev.Order)
	assert.Equal(t, 2.0, g.BondCount(0))
}

func TestAromaticSubgraphTracksOrder15Bonds(t *testing.T) {
	g := NewGraph(false)
	for i := 0; i < 6; i++ {
		a := NewAtom("C")
		a.Aromatic = true
		g.AddAtom(a, i == 0)
	}
	for i := 0; i < 5; i++ {
		_, err := g.AddBond(i, i+1, OrderAromatic, "")
		require.NoError(t, err)
	}
	_, _, err := g.AddRingBond(0, 5, OrderAromatic, "", "", -1, -1)
	require.NoError(t, err)

	assert.False(t, g.IsKekulized())
	assert.ElementsMatch(t, []int{4, 0}, g.AromaticNeighbors(5))
}

func TestKekulizeClearsAromaticSubgraph(t *testing.T) {
	g := NewGraph(false)
	for i := 0; i < 2; i++ {
		a := NewAtom("C")
		a.Aromatic = true
		g.AddAtom(a, i == 0)
	}
	_, err := g.AddBond(0, 1, OrderAromatic, "")
	require.NoError(t, err)

	require.NoError(t, g.UpdateBondOrder(0, 1, OrderSingle))
	g.ClearAromaticSubgraph()
	g.SetAromaticFlag(0, false)
	g.SetAromaticFlag(1, false)

	assert.True(t, g.IsKekulized())
	assert.False(t, g.Atoms[0].Aromatic)
}

func TestGraphSnapshotDiffWithGoCmp(t *testing.T) {
	g1 := NewGraph(false)
	g1.AddAtom(NewAtom("C"), true)
	g1.AddAtom(NewAtom("O"), false)
	_, err := g1.AddBond(0, 1, OrderSingle, "")
	require.NoError(t, err)

	g2 := NewGraph(false)
	g2.AddAtom(NewAtom("C"), true)
	g2.AddAtom(NewAtom("O"), false)
	_, err = g2.AddBond(0, 1, OrderSingle, "")
	require.NoError(t, err)

	diff := cmp.Diff(snapshotAtoms(g1.Atoms), snapshotAtoms(g2.Atoms))
	assert.Empty(t, diff, "isomorphic graphs should have identical atom snapshots")
}
