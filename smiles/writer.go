package smiles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cx-luo/go-selfies/constraints"
	"github.com/cx-luo/go-selfies/graph"
)

var aromaticLowerName = map[string]string{
	"C": "c", "N": "n", "O": "o", "S": "s", "P": "p", "As": "as", "Se": "se",
}

// Write renders a molecular graph as SMILES text, walking each fragment's
// non-ring bonds depth-first (the tree the decoder/parser built) and
// layering ring-closure digits over the bidirectional ring bonds. This is
// the inverse of Parse and the final step of the SELFIES decode path
// (spec §4.5: "finally serialize to SMILES").
func Write(g *graph.Graph) (string, error) {
	w := &writer{g: g, visited: make([]bool, len(g.Atoms)), ringNum: make(map[[2]int]int), nextRingNum: 1}
	first := true
	for i := range g.Atoms {
		if w.visited[i] {
			continue
		}
		if !first {
			w.out.WriteByte('.')
		}
		first = false
		if err := w.dfs(i, graph.OrderSingle, ""); err != nil {
			return "", err
		}
	}
	return w.out.String(), nil
}

type writer struct {
	g           *graph.Graph
	visited     []bool
	ringNum     map[[2]int]int
	nextRingNum int
	out         strings.Builder
}

func (w *writer) dfs(atom int, bondOrder graph.Order, bondStereo string) error {
	if w.visited[atom] {
		return nil
	}
	w.visited[atom] = true
	w.out.WriteString(BondChar(bondOrder, bondStereo))
	w.out.WriteString(atomBody(w.g.Atoms[atom]))

	var ringBonds, chainBonds []*graph.Bond
	for _, b := range w.g.Adjacency(atom) {
		if b.RingBond {
			ringBonds = append(ringBonds, b)
		} else {
			chainBonds = append(chainBonds, b)
		}
	}

	for _, b := range ringBonds {
		key := pairKeyLocal(atom, b.Dest)
		num, ok := w.ringNum[key]
		if !ok {
			num = w.nextRingNum
			w.nextRingNum++
			w.ringNum[key] = num
		} else {
			delete(w.ringNum, key)
		}
		w.out.WriteString(BondChar(b.Order, b.Stereo))
		w.out.WriteString(ringDigit(num))
	}

	for idx, b := range chainBonds {
		if w.visited[b.Dest] {
			continue
		}
		if idx == len(chainBonds)-1 {
			if err := w.dfs(b.Dest, b.Order, b.Stereo); err != nil {
				return err
			}
			continue
		}
		w.out.WriteByte('(')
		if err := w.dfs(b.Dest, b.Order, b.Stereo); err != nil {
			return err
		}
		w.out.WriteByte(')')
	}
	return nil
}

func pairKeyLocal(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// BondChar renders the bond character that precedes an atom or ring digit
// for the given order/stereo: a stereo marker takes priority over the
// order-implied character, matching the SMILES wire grammar.
func BondChar(order graph.Order, stereo string) string {
	if stereo == "/" || stereo == "\\" {
		return stereo
	}
	switch order {
	case graph.OrderDouble:
		return "="
	case graph.OrderTriple:
		return "#"
	default:
		return ""
	}
}

func ringDigit(n int) string {
	if n < 10 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%%%02d", n)
}

func atomBody(a *graph.Atom) string {
	simple := a.Isotope == nil && a.Chirality == "" && a.ExplicitH == nil && a.Charge == 0
	if simple {
		if a.Aromatic {
			if lower, ok := aromaticLowerName[a.Element]; ok {
				return lower
			}
		} else if constraints.OrganicSubset[a.Element] {
			return a.Element
		}
	}
	return "[" + BracketBody(a) + "]"
}

// BracketBody renders an atom's bracketed-form content without the
// enclosing brackets (isotope, element, chirality, explicit-H, charge).
// Exported so the SELFIES encoder can reuse it verbatim for atom-token
// bodies (spec §4.7: "atom-body mirrors the SMILES bracketed form sans
// brackets").
func BracketBody(a *graph.Atom) string {
	return BracketBodyWithChirality(a, a.Chirality)
}

// BracketBodyWithChirality is BracketBody but with the chirality marker
// overridden, letting a caller render an atom as if its chirality had
// been inverted without mutating the graph (spec §4.7's encoder-side
// chirality-inversion rule).
func BracketBodyWithChirality(a *graph.Atom, chirality string) string {
	var b strings.Builder
	if a.Isotope != nil {
		b.WriteString(strconv.Itoa(*a.Isotope))
	}
	if a.Aromatic {
		if lower, ok := aromaticLowerName[a.Element]; ok {
			b.WriteString(lower)
		} else {
			b.WriteString(a.Element)
		}
	} else {
		b.WriteString(a.Element)
	}
	b.WriteString(chirality)
	if a.ExplicitH != nil {
		b.WriteString("H")
		if *a.ExplicitH != 1 {
			b.WriteString(strconv.Itoa(*a.ExplicitH))
		}
	}
	if a.Charge != 0 {
		sign := "+"
		n := a.Charge
		if a.Charge < 0 {
			sign = "-"
			n = -a.Charge
		}
		b.WriteString(sign)
		if n != 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}
