package graph

import (
	"fmt"
	"sort"

	"github.com/cx-luo/go-selfies/attribution"
)

// Graph is a molecular graph: atoms, directed bonds kept in an adjacency
// order that dictates traversal order during SELFIES generation, a
// canonical (min,max)-keyed bond index for O(1) existence checks, an
// aromatic subgraph that exists only while order-1.5 bonds remain, and
// optional attribution bookkeeping. See spec §3.
//
// A Graph is built, read, and discarded per molecule; it is never shared
// across goroutines (spec §5).
type Graph struct {
	Atoms []*Atom
	Roots []int

	adjacency   [][]*Bond
	bondIndex   map[[2]int]*Bond
	bondCount   []float64
	hasRingBond []bool

	// aromaticSubgraph[u][v] exists iff there is an order-1.5 bond
	// between u and v. Present (non-empty) only while such bonds exist.
	aromaticSubgraph map[int]map[int]struct{}

	Attribution *attribution.Map
}

// NewGraph constructs an empty graph. When trackAttribution is true, atom
// and bond emissions can be recorded into g.Attribution by callers that
// choose to.
func NewGraph(trackAttribution bool) *Graph {
	g := &Graph{
		bondIndex:        make(map[[2]int]*Bond),
		aromaticSubgraph: make(map[int]map[int]struct{}),
	}
	if trackAttribution {
		g.Attribution = attribution.NewMap()
	}
	return g
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// AddAtom appends atom, assigns its Index, optionally marks it a fragment
// root, and - if aromatic - adds it as an (edge-less, for now) vertex of
// the aromatic subgraph. Never fails.
func (g *Graph) AddAtom(atom *Atom, markRoot bool) int {
	idx := len(g.Atoms)
	atom.Index = idx
	g.Atoms = append(g.Atoms, atom)
	g.adjacency = append(g.adjacency, nil)
	g.bondCount = append(g.bondCount, 0)
	g.hasRingBond = append(g.hasRingBond, false)
	if markRoot {
		g.Roots = append(g.Roots, idx)
	}
	if atom.Aromatic {
		g.ensureAromaticVertex(idx)
	}
	return idx
}

func (g *Graph) ensureAromaticVertex(idx int) {
	if _, ok := g.aromaticSubgraph[idx]; !ok {
		g.aromaticSubgraph[idx] = make(map[int]struct{})
	}
}

// AddBond adds a non-ring bond from src to dst. Requires src < dst and
// that no bond already exists between them.
func (g *Graph) AddBond(src, dst int, order Order, stereo string) (*Bond, error) {
	if err := g.checkAtomIndex(src); err != nil {
		return nil, err
	}
	if err := g.checkAtomIndex(dst); err != nil {
		return nil, err
	}
	if src >= dst {
		return nil, fmt.Errorf("graph: AddBond requires src < dst, got %d, %d", src, dst)
	}
	if g.HasBond(src, dst) {
		return nil, fmt.Errorf("graph: bond already exists between %d and %d", src, dst)
	}

	b := &Bond{Source: src, Dest: dst, Order: order, Stereo: stereo, Handle: attribution.NewHandle()}
	g.adjacency[src] = append(g.adjacency[src], b)
	g.bondIndex[pairKey(src, dst)] = b
	g.addIncidentOrder(src, float64(order))
	g.addIncidentOrder(dst, float64(order))

	if order == OrderAromatic {
		g.addAromaticEdge(src, dst)
	}
	return b, nil
}

// AddRingBond inserts two directed bonds, a->b and b->a, with matching
// order, recording both atoms as having an outgoing ring bond. aPos/bPos
// select an insertion position within the respective adjacency list
// (-1 appends), letting a caller reserve a slot for the ring-close token
// before its ring-open partner has been written.
func (g *Graph) AddRingBond(a, b int, order Order, aStereo, bStereo string, aPos, bPos int) (*Bond, *Bond, error) {
	if err := g.checkAtomIndex(a); err != nil {
		return nil, nil, err
	}
	if err := g.checkAtomIndex(b); err != nil {
		return nil, nil, err
	}
	if a == b {
		return nil, nil, fmt.Errorf("graph: AddRingBond requires distinct atoms, got %d twice", a)
	}

	fwd := &Bond{Source: a, Dest: b, Order: order, Stereo: aStereo, RingBond: true, Handle: attribution.NewHandle()}
	rev := &Bond{Source: b, Dest: a, Order: order, Stereo: bStereo, RingBond: true, Handle: attribution.NewHandle()}

	g.adjacency[a] = insertAt(g.adjacency[a], fwd, aPos)
	g.adjacency[b] = insertAt(g.adjacency[b], rev, bPos)
	g.bondIndex[pairKey(a, b)] = fwd

	g.addIncidentOrder(a, float64(order))
	g.addIncidentOrder(b, float64(order))
	g.hasRingBond[a] = true
	g.hasRingBond[b] = true

	if order == OrderAromatic {
		g.addAromaticEdge(a, b)
	}
	return fwd, rev, nil
}

func insertAt(list []*Bond, b *Bond, pos int) []*Bond {
	if pos < 0 || pos >= len(list) {
		return append(list, b)
	}
	out := make([]*Bond, 0, len(list)+1)
	out = append(out, list[:pos]...)
	out = append(out, b)
	out = append(out, list[pos:]...)
	return out
}

func (g *Graph) addIncidentOrder(atom int, delta float64) {
	g.bondCount[atom] += delta
}

func (g *Graph) addAromaticEdge(a, b int) {
	g.ensureAromaticVertex(a)
	g.ensureAromaticVertex(b)
	g.aromaticSubgraph[a][b] = struct{}{}
	g.aromaticSubgraph[b][a] = struct{}{}
}

func (g *Graph) removeAromaticEdge(a, b int) {
	if nb, ok := g.aromaticSubgraph[a]; ok {
		delete(nb, b)
	}
	if nb, ok := g.aromaticSubgraph[b]; ok {
		delete(nb, a)
	}
}

// UpdateBondOrder sets the order of the bond between a and b to newOrder
// (1, 2, or 3), updating both stored directions for a ring bond and
// adjusting each endpoint's incident-order sum by the delta.
func (g *Graph) UpdateBondOrder(a, b int, newOrder Order) error {
	if newOrder < 1 || newOrder > 3 {
		return fmt.Errorf("graph: UpdateBondOrder requires 1 <= order <= 3, got %v", newOrder)
	}
	fwd, ok := g.bondIndex[pairKey(a, b)]
	if !ok {
		return fmt.Errorf("graph: no bond between %d and %d", a, b)
	}
	old := fwd.Order
	delta := float64(newOrder - old)

	if old == OrderAromatic {
		g.removeAromaticEdge(a, b)
	}

	fwd.Order = newOrder
	if fwd.RingBond {
		if rev, ok := g.findDirected(fwd.Dest, fwd.Source); ok {
			rev.Order = newOrder
		}
	}

	g.addIncidentOrder(a, delta)
	g.addIncidentOrder(b, delta)
	return nil
}

func (g *Graph) findDirected(src, dst int) (*Bond, bool) {
	for _, b := range g.adjacency[src] {
		if b.Dest == dst {
			return b, true
		}
	}
	return nil, false
}

// HasBond reports whether any bond connects a and b, in either direction.
func (g *Graph) HasBond(a, b int) bool {
	_, ok := g.bondIndex[pairKey(a, b)]
	return ok
}

// GetDirBond returns the bond from src to dst. For a non-ring bond stored
// in the opposite orientation, it synthesizes the reversed view (a copy,
// so callers never mutate the canonical stored bond through it).
func (g *Graph) GetDirBond(src, dst int) (Bond, bool) {
	if b, ok := g.findDirected(src, dst); ok {
		return *b, true
	}
	canonical, ok := g.bondIndex[pairKey(src, dst)]
	if !ok {
		return Bond{}, false
	}
	return canonical.Reversed(), true
}

// Adjacency returns the ordered outgoing bonds for atomIdx. The slice is
// owned by the graph; callers must not mutate it.
func (g *Graph) Adjacency(atomIdx int) []*Bond {
	return g.adjacency[atomIdx]
}

// BondCount returns the sum of incident bond orders for atomIdx.
func (g *Graph) BondCount(atomIdx int) float64 {
	return g.bondCount[atomIdx]
}

// HasOutgoingRingBond reports whether atomIdx participates in a ring
// bond (in either the opening or closing role).
func (g *Graph) HasOutgoingRingBond(atomIdx int) bool {
	return g.hasRingBond[atomIdx]
}

// IsKekulized reports whether the aromatic subgraph is empty, i.e. no
// order-1.5 bonds remain.
func (g *Graph) IsKekulized() bool {
	for _, nb := range g.aromaticSubgraph {
		if len(nb) > 0 {
			return false
		}
	}
	return true
}

// AromaticAtoms returns the atom indices currently in the aromatic
// subgraph (regardless of remaining edge count), sorted by index so that
// kekulization over them is deterministic rather than tracking Go's
// unspecified map iteration order.
func (g *Graph) AromaticAtoms() []int {
	out := make([]int, 0, len(g.aromaticSubgraph))
	for idx := range g.aromaticSubgraph {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// AromaticNeighbors returns the undirected aromatic-subgraph neighbors of
// atomIdx, sorted by index for the same determinism reason as
// AromaticAtoms.
func (g *Graph) AromaticNeighbors(atomIdx int) []int {
	nb, ok := g.aromaticSubgraph[atomIdx]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(nb))
	for n := range nb {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// ClearAromaticVertex removes atomIdx and all its incident edges from the
// aromatic subgraph, without touching the underlying bonds. Used by the
// kekulization pruning test (spec §4.4.1) to drop vertices that cannot
// contribute to the pi-system.
func (g *Graph) ClearAromaticVertex(atomIdx int) {
	for n := range g.aromaticSubgraph[atomIdx] {
		delete(g.aromaticSubgraph[n], atomIdx)
	}
	delete(g.aromaticSubgraph, atomIdx)
}

// ClearAromaticSubgraph empties the aromatic subgraph, used as the final
// step of Kekulize once every order-1.5 bond has been resolved.
func (g *Graph) ClearAromaticSubgraph() {
	g.aromaticSubgraph = make(map[int]map[int]struct{})
}

// SetAromaticFlag sets the aromatic flag on the atom at idx.
func (g *Graph) SetAromaticFlag(idx int, aromatic bool) {
	g.Atoms[idx].Aromatic = aromatic
}

func (g *Graph) checkAtomIndex(idx int) error {
	if idx < 0 || idx >= len(g.Atoms) {
		return fmt.Errorf("graph: atom index %d out of range [0,%d)", idx, len(g.Atoms))
	}
	return nil
}
