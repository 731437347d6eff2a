package match

import (
	"testing"

	"github.com/cx-luo/go-selfies/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benzeneGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph(false)
	for i := 0; i < 6; i++ {
		a := graph.NewAtom("C")
		a.Aromatic = true
		g.AddAtom(a, i == 0)
	}
	for i := 0; i < 5; i++ {
		_, err := g.AddBond(i, i+1, graph.OrderAromatic, "")
		require.NoError(t, err)
	}
	_, _, err := g.AddRingBond(0, 5, graph.OrderAromatic, "", "", -1, -1)
	require.NoError(t, err)
	return g
}

func TestKekulizeBenzeneAlternatesBonds(t *testing.T) {
	g := benzeneGraph(t)
	require.NoError(t, Kekulize(g))

	assert.True(t, g.IsKekulized())
	for i := range g.Atoms {
		assert.False(t, g.Atoms[i].Aromatic)
	}

	total := 0.0
	for i := 0; i < 6; i++ {
		total += g.BondCount(i)
	}
	assert.Equal(t, 18.0, total)

	for _, pair := range [][2]int{{0, 1}, {2, 3}, {4, 5}} {
		b, ok := g.GetDirBond(pair[0], pair[1])
		require.True(t, ok)
		assert.Equal(t, graph.OrderDouble, b.Order)
	}
	ring, ok := g.GetDirBond(0, 5)
	require.True(t, ok)
	assert.Equal(t, graph.OrderSingle, ring.Order)
}

func TestKekulizeEmptySubgraphIsNoop(t *testing.T) {
	g := graph.NewGraph(false)
	g.AddAtom(graph.NewAtom("C"), true)
	require.NoError(t, Kekulize(g))
}

func TestKekulizePrunesNonAromaticCapableElement(t *testing.T) {
	g := graph.NewGraph(false)
	a0 := graph.NewAtom("C")
	a0.Aromatic = true
	g.AddAtom(a0, true)
	a1 := graph.NewAtom("Xx")
	a1.Aromatic = true
	g.AddAtom(a1, false)
	_, err := g.AddBond(0, 1, graph.OrderAromatic, "")
	require.NoError(t, err)

	err = Kekulize(g)
	require.Error(t, err)
}
