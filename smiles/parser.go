// Package smiles implements the SMILES <-> molecular graph boundary:
// Parse reads SMILES into a graph.Graph (spec §4.6), Write renders a
// graph.Graph back into SMILES text for the decoder's output path.
package smiles

import (
	"fmt"

	"github.com/cx-luo/go-selfies/attribution"
	"github.com/cx-luo/go-selfies/graph"
)

var bondOrderByChar = map[byte]graph.Order{
	'-': graph.OrderSingle,
	'=': graph.OrderDouble,
	'#': graph.OrderTriple,
	'/': graph.OrderSingle,
	'\\': graph.OrderSingle,
}

func bondStereoByChar(c byte) string {
	switch c {
	case '/':
		return "/"
	case '\\':
		return "\\"
	default:
		return ""
	}
}

type ringOpen struct {
	atom    int
	order   graph.Order
	stereo  string
	hasOrder bool
}

// Parse builds a molecular graph from a SMILES string (spec §4.6):
// organic-subset and bracketed atoms, bond-character prefixes, branch
// parentheses, single-digit ring closures, and dot-separated fragments.
// Wildcard atoms ('*', '$') and multi-character chirality classes
// (handled as a scanAtom error) are rejected.
func Parse(s string, trackAttribution bool) (*graph.Graph, error) {
	g := graph.NewGraph(trackAttribution)

	var branchStack []int
	ringBonds := make(map[int]ringOpen)

	lastAtom := -1
	pendingOrder := graph.Order(0)
	pendingStereo := ""

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '(':
			if lastAtom < 0 {
				return nil, fmt.Errorf("smiles: branch '(' without a preceding atom at %d", i)
			}
			branchStack = append(branchStack, lastAtom)
			i++
			continue
		case c == ')':
			if len(branchStack) == 0 {
				return nil, fmt.Errorf("smiles: unmatched ')' at %d", i)
			}
			lastAtom = branchStack[len(branchStack)-1]
			branchStack = branchStack[:len(branchStack)-1]
			i++
			continue
		case c == '.':
			lastAtom = -1
			pendingOrder, pendingStereo = 0, ""
			i++
			continue
		case c == '*' || c == '$':
			return nil, fmt.Errorf("smiles: wildcard atom/bond %q is not supported at %d", c, i)
		}

		if order, ok := bondOrderByChar[c]; ok {
			pendingOrder = order
			pendingStereo = bondStereoByChar(c)
			i++
			continue
		}

		if c >= '0' && c <= '9' {
			if lastAtom < 0 {
				return nil, fmt.Errorf("smiles: ring digit without a preceding atom at %d", i)
			}
			ringNum := int(c - '0')
			i++
			if err := handleRing(g, ringBonds, ringNum, lastAtom, pendingOrder, pendingStereo); err != nil {
				return nil, err
			}
			pendingOrder, pendingStereo = 0, ""
			continue
		}

		pa, next, err := scanAtom(s, i)
		if err != nil {
			return nil, err
		}
		atomStart := i
		atom := pa.toGraphAtom()
		idx := g.AddAtom(atom, lastAtom < 0)
		g.Attribution.Record(atom.Handle, attribution.Stack{
			{SymbolIndex: atomStart, SymbolText: s[atomStart:next]},
		})

		if lastAtom >= 0 {
			order := pendingOrder
			stereo := pendingStereo
			if order == 0 {
				if pa.aromatic && g.Atoms[lastAtom].Aromatic {
					order = graph.OrderAromatic
				} else {
					order = graph.OrderSingle
				}
			}
			if _, err := g.AddBond(lastAtom, idx, order, stereo); err != nil {
				return nil, err
			}
		}
		pendingOrder, pendingStereo = 0, ""
		lastAtom = idx
		i = next
	}

	if len(branchStack) != 0 {
		return nil, fmt.Errorf("smiles: %d unclosed branch(es)", len(branchStack))
	}
	if len(ringBonds) != 0 {
		return nil, fmt.Errorf("smiles: %d unclosed ring bond(s)", len(ringBonds))
	}
	return g, nil
}

func handleRing(g *graph.Graph, ringBonds map[int]ringOpen, ringNum, atom int, order graph.Order, stereo string) error {
	open, ok := ringBonds[ringNum]
	if !ok {
		ringBonds[ringNum] = ringOpen{atom: atom, order: order, stereo: stereo, hasOrder: order != 0}
		return nil
	}
	delete(ringBonds, ringNum)

	closeOrder := order
	finalOrder := maxOrder(open.order, closeOrder)
	if finalOrder == 0 {
		finalOrder = graph.OrderSingle
	}
	if finalOrder == graph.OrderSingle && g.Atoms[open.atom].Aromatic && g.Atoms[atom].Aromatic {
		finalOrder = graph.OrderAromatic
	}

	a, b := open.atom, atom
	aStereo, bStereo := open.stereo, stereo
	if a > b {
		a, b = b, a
		aStereo, bStereo = bStereo, aStereo
	}
	_, _, err := g.AddRingBond(a, b, finalOrder, aStereo, bStereo, -1, -1)
	return err
}

func maxOrder(a, b graph.Order) graph.Order {
	if a > b {
		return a
	}
	return b
}
