package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerfectMatchingOnSixCycle(t *testing.T) {
	g := NewGraph(6)
	for i := 0; i < 6; i++ {
		g.AddEdge(i, (i+1)%6)
	}
	mate, ok := PerfectMatching(g)
	require.True(t, ok)
	for v, u := range mate {
		assert.Equal(t, v, mate[u])
	}
}

func TestPerfectMatchingFailsOnOddVertexCount(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	_, ok := PerfectMatching(g)
	assert.False(t, ok)
}

func TestPerfectMatchingOnPath(t *testing.T) {
	g := NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	mate, ok := PerfectMatching(g)
	require.True(t, ok)
	assert.Equal(t, 1, mate[0])
	assert.Equal(t, 3, mate[2])
}
