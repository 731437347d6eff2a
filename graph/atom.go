// Package graph implements the molecular graph shared by the SELFIES
// decoder and the SMILES parser/encoder: atoms, directed bonds, adjacency
// ordered the way it was written, an aromatic subgraph, and optional
// attribution bookkeeping. See spec §3 and §4.3.
package graph

import (
	"github.com/cx-luo/go-selfies/attribution"
	"github.com/cx-luo/go-selfies/constraints"
)

// Atom is a single vertex of a molecular graph.
//
// Index is assigned once by Graph.AddAtom and never changes afterward.
// Capacity is memoized and invalidated only by SetCharge/SetExplicitH, per
// spec §9 ("a publicly mutable operation via chirality flip does not
// affect capacity; only invalidation paths are element/charge/hCount
// changes").
type Atom struct {
	Element   string
	Aromatic  bool
	Isotope   *int
	Chirality string // "", "@", "@@"
	ExplicitH *int
	Charge    int
	Index     int

	// Handle is a stable identity used as the attribution side-map key,
	// so attributions never need a back-pointer into the graph.
	Handle attribution.Handle

	capacity      int
	capacityValid bool
}

// NewAtom constructs an atom for element, not yet inserted into a graph.
func NewAtom(element string) *Atom {
	return &Atom{
		Element: element,
		Index:   -1,
		Handle:  attribution.NewHandle(),
	}
}

// SetCharge sets the atom's formal charge and invalidates its memoized
// bonding capacity.
func (a *Atom) SetCharge(charge int) {
	a.Charge = charge
	a.capacityValid = false
}

// SetExplicitH sets the atom's explicit hydrogen count (nil means
// "implied by valence") and invalidates its memoized bonding capacity.
func (a *Atom) SetExplicitH(h *int) {
	a.ExplicitH = h
	a.capacityValid = false
}

// SetChirality sets the atom's chirality marker. This never affects
// bonding capacity.
func (a *Atom) SetChirality(marker string) {
	a.Chirality = marker
}

// SetIsotope sets the atom's isotope mass number (nil means natural
// abundance). This never affects bonding capacity.
func (a *Atom) SetIsotope(isotope *int) {
	a.Isotope = isotope
}

// Capacity returns the atom's bonding capacity: the constraints-table
// lookup for (Element, Charge), minus ExplicitH if present, floored at 0.
// The result is memoized until SetCharge or SetExplicitH is called.
func (a *Atom) Capacity() int {
	if a.capacityValid {
		return a.capacity
	}
	c := constraints.CapacityFor(a.Element, a.Charge)
	if a.ExplicitH != nil {
		c -= *a.ExplicitH
	}
	if c < 0 {
		c = 0
	}
	a.capacity = c
	a.capacityValid = true
	return c
}

