package grammar

import (
	"testing"

	"github.com/cx-luo/go-selfies/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNop(t *testing.T) {
	tok, err := Parse("[nop]")
	require.NoError(t, err)
	assert.Equal(t, FamilyNop, tok.Family)
}

func TestParseEpsilon(t *testing.T) {
	tok, err := Parse("[epsilon]")
	require.NoError(t, err)
	assert.Equal(t, FamilyEpsilon, tok.Family)
}

func TestParseSimpleAtom(t *testing.T) {
	tok, err := Parse("[C]")
	require.NoError(t, err)
	require.Equal(t, FamilyAtom, tok.Family)
	assert.Equal(t, "C", tok.Atom.Element)
	assert.Equal(t, graph.OrderSingle, tok.Atom.BondOrder)
}

func TestParseDoubleBondedAtomWithCharge(t *testing.T) {
	tok, err := Parse("[=N+1]")
	require.NoError(t, err)
	require.NotNil(t, tok.Atom)
	assert.Equal(t, "N", tok.Atom.Element)
	assert.Equal(t, graph.OrderDouble, tok.Atom.BondOrder)
	assert.Equal(t, 1, tok.Atom.Charge)
}

func TestParseIsotopeChiralityExplicitH(t *testing.T) {
	tok, err := Parse("[13C@@H2-1]")
	require.NoError(t, err)
	require.NotNil(t, tok.Atom)
	assert.Equal(t, "C", tok.Atom.Element)
	require.NotNil(t, tok.Atom.Isotope)
	assert.Equal(t, 13, *tok.Atom.Isotope)
	assert.Equal(t, "@@", tok.Atom.Chirality)
	require.NotNil(t, tok.Atom.ExplicitH)
	assert.Equal(t, 2, *tok.Atom.ExplicitH)
	assert.Equal(t, -1, tok.Atom.Charge)
}

func TestParseTwoLetterElement(t *testing.T) {
	tok, err := Parse("[Cl]")
	require.NoError(t, err)
	require.NotNil(t, tok.Atom)
	assert.Equal(t, "Cl", tok.Atom.Element)
}

func TestParseAromaticLowercase(t *testing.T) {
	tok, err := Parse("[c]")
	require.NoError(t, err)
	require.NotNil(t, tok.Atom)
	assert.Equal(t, "C", tok.Atom.Element)
	assert.True(t, tok.Atom.Aromatic)
}

func TestParseBranch(t *testing.T) {
	tok, err := Parse("[=Branch2]")
	require.NoError(t, err)
	require.NotNil(t, tok.Branch)
	assert.Equal(t, graph.OrderDouble, tok.Branch.BondOrder)
	assert.Equal(t, 2, tok.Branch.L)
}

func TestParseRingNoPrefix(t *testing.T) {
	tok, err := Parse("[Ring1]")
	require.NoError(t, err)
	require.NotNil(t, tok.Ring)
	assert.Equal(t, graph.OrderSingle, tok.Ring.BondOrder)
	assert.Equal(t, 1, tok.Ring.L)
}

func TestParseRingBondPrefix(t *testing.T) {
	tok, err := Parse("[=Ring2]")
	require.NoError(t, err)
	require.NotNil(t, tok.Ring)
	assert.Equal(t, graph.OrderDouble, tok.Ring.BondOrder)
}

func TestParseRingStereoPrefix(t *testing.T) {
	tok, err := Parse("[@-Ring1]")
	require.NoError(t, err)
	require.NotNil(t, tok.Ring)
	assert.Equal(t, "@", tok.Ring.LeftStereo)
	assert.Equal(t, "", tok.Ring.RightStereo)
}

func TestParseEmptyBracketIsUnknown(t *testing.T) {
	tok, err := Parse("[]")
	require.NoError(t, err)
	assert.Equal(t, FamilyUnknown, tok.Family)
}

func TestParseRejectsMalformedBracket(t *testing.T) {
	_, err := Parse("C]")
	require.Error(t, err)
}
