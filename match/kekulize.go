package match

import (
	"fmt"

	"github.com/cx-luo/go-selfies/graph"
	"github.com/cx-luo/go-selfies/selfieslog"
)

// Kekulize resolves every order-1.5 bond in g into an alternating
// single/double-bond pattern (spec §4.4). It is a free function rather
// than a graph.Graph method so that graph stays free of a dependency on
// this package's matching internals; graph exposes only the mutation
// primitives (UpdateBondOrder, SetAromaticFlag, ClearAromaticSubgraph,
// AromaticAtoms, AromaticNeighbors) this function needs.
func Kekulize(g *graph.Graph) error {
	original := g.AromaticAtoms()
	if len(original) == 0 {
		return nil
	}
	edges := aromaticEdges(g, original)

	survivors := prune(g, original)

	for _, v := range original {
		g.SetAromaticFlag(v, false)
	}
	for _, e := range edges {
		if err := g.UpdateBondOrder(e[0], e[1], graph.OrderSingle); err != nil {
			return err
		}
	}

	if len(survivors) > 0 {
		index := make(map[int]int, len(survivors))
		for i, v := range survivors {
			index[v] = i
		}
		mg := NewGraph(len(survivors))
		for _, e := range edges {
			vi, vok := index[e[0]]
			ui, uok := index[e[1]]
			if vok && uok {
				mg.AddEdge(vi, ui)
			}
		}

		mate, ok := PerfectMatching(mg)
		if !ok {
			return fmt.Errorf("match: aromatic subgraph has no valid kekule structure")
		}
		for vi, ui := range mate {
			if ui < 0 || vi >= ui {
				continue
			}
			if err := g.UpdateBondOrder(survivors[vi], survivors[ui], graph.OrderDouble); err != nil {
				return err
			}
		}
	}

	g.ClearAromaticSubgraph()
	return nil
}

func aromaticEdges(g *graph.Graph, vertices []int) [][2]int {
	var edges [][2]int
	for _, v := range vertices {
		for _, n := range g.AromaticNeighbors(v) {
			if v < n {
				edges = append(edges, [2]int{v, n})
			}
		}
	}
	return edges
}

func prune(g *graph.Graph, vertices []int) []int {
	survivors := make([]int, 0, len(vertices))
	for _, v := range vertices {
		atom := g.Atoms[v]
		aromaticNeighbors := len(g.AromaticNeighbors(v))
		nonAromaticSum := g.BondCount(v) - 1.5*float64(aromaticNeighbors)

		explicitH := 0
		if atom.ExplicitH != nil {
			explicitH = *atom.ExplicitH
		}

		c := Candidate{
			Element:               atom.Element,
			Charge:                atom.Charge,
			ExplicitH:              explicitH,
			NonAromaticBondSum:     nonAromaticSum,
			AromaticNeighborCount:  aromaticNeighbors,
		}
		if Keep(c) {
			survivors = append(survivors, v)
		} else {
			selfieslog.Default().Debug("pruning aromatic vertex: cannot satisfy any allowed aromatic valence",
				selfieslog.Int("atom", v), selfieslog.String("element", atom.Element))
		}
	}
	return survivors
}
