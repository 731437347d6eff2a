package smiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoundTripsSimpleChain(t *testing.T) {
	g, err := Parse("CCO", false)
	require.NoError(t, err)
	out, err := Write(g)
	require.NoError(t, err)
	assert.Equal(t, "CCO", out)
}

func TestWriteRoundTripsBranch(t *testing.T) {
	g, err := Parse("CC(C)C", false)
	require.NoError(t, err)
	out, err := Write(g)
	require.NoError(t, err)
	assert.Equal(t, "CC(C)C", out)
}

func TestWriteRoundTripsRing(t *testing.T) {
	g, err := Parse("C1CCCCC1", false)
	require.NoError(t, err)
	out, err := Write(g)
	require.NoError(t, err)
	assert.Equal(t, "C1CCCCC1", out)
}

func TestWriteRoundTripsBracketedAtom(t *testing.T) {
	g, err := Parse("[13C@@H2-1]", false)
	require.NoError(t, err)
	out, err := Write(g)
	require.NoError(t, err)
	assert.Equal(t, "[13C@@H2-]", out)
}

func TestWriteDisconnectedFragments(t *testing.T) {
	g, err := Parse("C.C", false)
	require.NoError(t, err)
	out, err := Write(g)
	require.NoError(t, err)
	assert.Equal(t, "C.C", out)
}
