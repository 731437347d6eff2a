package match

import "github.com/cx-luo/go-selfies/constraints"

// Candidate is the subset of an aromatic atom's state the pruning test
// (spec §4.4.1) needs: everything but its identity.
type Candidate struct {
	Element               string
	Charge                int
	ExplicitH              int
	NonAromaticBondSum     float64
	AromaticNeighborCount  int
}

// Keep reports whether c survives the pruning test: there must exist an
// allowed aromatic valence v for c.Element such that v minus its
// non-aromatic bond order sum covers every aromatic neighbor, and the
// atom has at least one free electron per aromatic bond it would need to
// contribute.
func Keep(c Candidate) bool {
	allowed := constraints.AllowedAromaticValences(c.Element)
	if len(allowed) == 0 {
		return false
	}
	freeElectrons := constraints.ValenceElectrons(c.Element) - c.Charge - c.ExplicitH
	for _, v := range allowed {
		capacity := float64(v) - c.NonAromaticBondSum
		if capacity >= float64(c.AromaticNeighborCount) && freeElectrons >= c.AromaticNeighborCount {
			return true
		}
	}
	return false
}
