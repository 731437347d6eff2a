// Package encoder implements the SELFIES encoder (spec §4.7): it parses
// SMILES into a molecular graph, kekulizes its aromatic subgraph, and
// emits a SELFIES string that mirrors the graph's depth-first traversal.
package encoder

import (
	"strconv"
	"strings"

	"github.com/cx-luo/go-selfies/attribution"
	"github.com/cx-luo/go-selfies/codecerr"
	"github.com/cx-luo/go-selfies/grammar"
	"github.com/cx-luo/go-selfies/graph"
	"github.com/cx-luo/go-selfies/match"
	"github.com/cx-luo/go-selfies/smiles"
)

// Result is the output of Encode: the SELFIES rendering of the parsed
// SMILES, plus its attribution map when tracking was requested.
type Result struct {
	SELFIES     string
	Attribution *attribution.Map
}

// Encode parses smilesText, kekulizes it, and renders SELFIES (spec
// §4.7). It fails with *codecerr.EncoderError on malformed SMILES, a
// kekulization failure, or a bond count that exceeds an atom's
// constraint-table capacity once the graph is built.
func Encode(smilesText string, trackAttribution bool) (Result, error) {
	g, err := smiles.Parse(smilesText, trackAttribution)
	if err != nil {
		return Result{}, codecerr.NewEncoderError(smilesText, "malformed SMILES", err)
	}

	if err := match.Kekulize(g); err != nil {
		return Result{}, codecerr.NewEncoderError(smilesText, "kekulization failed", err)
	}

	if err := checkCapacity(g); err != nil {
		return Result{}, codecerr.NewEncoderError(smilesText, "bond count exceeds capacity", err)
	}

	e := &encoderState{g: g, visited: make([]bool, len(g.Atoms))}
	var frags []string
	for i := range g.Atoms {
		if e.visited[i] {
			continue
		}
		frags = append(frags, e.dfs(i, graph.OrderSingle, "", false))
	}
	return Result{SELFIES: strings.Join(frags, "."), Attribution: g.Attribution}, nil
}

func checkCapacity(g *graph.Graph) error {
	for i, a := range g.Atoms {
		if g.BondCount(i) > float64(a.Capacity()) {
			return &capacityError{element: a.Element}
		}
	}
	return nil
}

type capacityError struct {
	element string
}

func (e *capacityError) Error() string {
	return "atom " + e.element + " exceeds its bonding capacity"
}

type encoderState struct {
	g       *graph.Graph
	visited []bool
}

// dfs renders the fragment reached at atom, having arrived over a bond of
// the given order/stereo (ignored at a fragment root). It emits, in
// order: the atom's own token, ring-closure tokens for any ring bond
// where atom is the higher-indexed endpoint, then "last bond wins" over
// its remaining chain bonds.
func (e *encoderState) dfs(atom int, incomingOrder graph.Order, incomingStereo string, hasIncoming bool) string {
	e.visited[atom] = true

	var out strings.Builder
	out.WriteString(e.atomToken(atom, incomingOrder, incomingStereo, hasIncoming))

	var chainBonds []*graph.Bond
	for _, b := range e.g.Adjacency(atom) {
		if b.RingBond {
			if b.Dest < atom {
				leftStereo := ""
				if opening, ok := e.g.GetDirBond(b.Dest, atom); ok {
					leftStereo = opening.Stereo
				}
				out.WriteString(ringToken(b.Order, leftStereo, b.Stereo, atom-b.Dest-1))
			}
			continue
		}
		chainBonds = append(chainBonds, b)
	}

	for i, b := range chainBonds {
		if e.visited[b.Dest] {
			continue
		}
		sub := e.dfs(b.Dest, b.Order, b.Stereo, true)
		if i == len(chainBonds)-1 {
			out.WriteString(sub)
			continue
		}
		out.WriteString(branchToken(b.Order, sub))
	}
	return out.String()
}

// atomToken renders an atom's `[<bond><body>]` token, applying the
// chirality-inversion rule (spec §4.7 step 4) when the atom carries
// chirality and at least one outgoing ring bond.
func (e *encoderState) atomToken(atom int, incomingOrder graph.Order, incomingStereo string, hasIncoming bool) string {
	a := e.g.Atoms[atom]
	chirality := a.Chirality
	if chirality != "" && e.g.HasOutgoingRingBond(atom) {
		if invertsOdd(e.g.Adjacency(atom), atom) {
			chirality = invertChirality(chirality)
		}
	}

	bondChar := ""
	if hasIncoming {
		bondChar = smiles.BondChar(incomingOrder, incomingStereo)
	}

	return "[" + bondChar + smiles.BracketBodyWithChirality(a, chirality) + "]"
}

func invertChirality(c string) string {
	switch c {
	case "@":
		return "@@"
	case "@@":
		return "@"
	default:
		return c
	}
}

// invertsOdd computes the permutation parity between the atom's original
// adjacency order and the SELFIES traversal order [ring-closes ‖
// ring-opens sorted by destination ‖ branches and chain continuation]
// (spec §4.7 step 4), returning true when the number of inversions is
// odd.
func invertsOdd(adj []*graph.Bond, atom int) bool {
	var group0, group1, group2 []int
	for i, b := range adj {
		switch {
		case b.RingBond && b.Dest < atom:
			group0 = append(group0, i)
		case b.RingBond && b.Dest > atom:
			group1 = append(group1, i)
		default:
			group2 = append(group2, i)
		}
	}
	sortByDest(group1, adj)

	perm := make([]int, 0, len(adj))
	perm = append(perm, group0...)
	perm = append(perm, group1...)
	perm = append(perm, group2...)

	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions%2 == 1
}

func sortByDest(idx []int, adj []*graph.Bond) {
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && adj[idx[j-1]].Dest > adj[idx[j]].Dest; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
}

// ringToken renders a ring-closure token: `[<bond-or-stereo>RingL]`
// followed by an index tail encoding q (spec §4.7 step 3). Ring stereo
// (step 5) takes over the bond-char slot as `<leftStereo|"-">
// <rightStereo|"-">` whenever order is single and either endpoint carries
// a marker, so an opening-side-only marker is not dropped just because
// the closing endpoint is unmarked.
func ringToken(order graph.Order, leftStereo, rightStereo string, q int) string {
	symbols, l := indexTail(q)
	return "[" + ringPrefix(order, leftStereo, rightStereo) + "Ring" + strconv.Itoa(l) + "]" + grammar.Join(symbols)
}

func ringPrefix(order graph.Order, leftStereo, rightStereo string) string {
	if order == graph.OrderSingle && (leftStereo != "" || rightStereo != "") {
		left, right := leftStereo, rightStereo
		if left == "" {
			left = "-"
		}
		if right == "" {
			right = "-"
		}
		return left + right
	}
	return smiles.BondChar(order, "")
}

// branchToken renders `[<bond>BranchL]` followed by an index tail
// encoding (len(subSymbols) - 1), then the branch's own token sequence
// (spec §4.7 step 2).
func branchToken(order graph.Order, sub string) string {
	q := grammar.Len(sub) - 1
	if q < 0 {
		q = 0
	}
	symbols, l := indexTail(q)
	return "[" + smiles.BondChar(order, "") + "Branch" + strconv.Itoa(l) + "]" + grammar.Join(symbols) + sub
}

// indexTail picks the smallest L in {1, 2, 3} that can represent q under
// the index alphabet's base, clamping to 3 for anything larger (branch
// and ring spans this wide do not occur in practice; spec §4.1 bounds L
// to {1, 2, 3}).
func indexTail(q int) ([]string, int) {
	base := len(grammar.IndexAlphabet)
	l := 1
	for l < 3 && q >= pow(base, l) {
		l++
	}
	return grammar.SymbolsFromIndex(q, l), l
}

func pow(base, exp int) int {
	n := 1
	for i := 0; i < exp; i++ {
		n *= base
	}
	return n
}
