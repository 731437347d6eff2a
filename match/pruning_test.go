package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepCarbonWithTwoAromaticNeighbors(t *testing.T) {
	c := Candidate{Element: "C", AromaticNeighborCount: 2, NonAromaticBondSum: 0}
	assert.True(t, Keep(c))
}

func TestKeepRejectsSaturatedCarbon(t *testing.T) {
	c := Candidate{Element: "C", AromaticNeighborCount: 2, NonAromaticBondSum: 3}
	assert.False(t, Keep(c))
}

func TestKeepRejectsUnknownElement(t *testing.T) {
	c := Candidate{Element: "Xx", AromaticNeighborCount: 1}
	assert.False(t, Keep(c))
}

func TestKeepRespectsExplicitHydrogenElectronCost(t *testing.T) {
	c := Candidate{Element: "N", AromaticNeighborCount: 2, ExplicitH: 4}
	assert.False(t, Keep(c))
}
