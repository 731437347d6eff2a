// Package decoder implements the SELFIES derivation engine (spec §4.5):
// a forward-only, total state machine that turns any finite SELFIES
// string into a valid molecular graph, then serializes it to SMILES.
package decoder

import (
	"strings"

	"github.com/cx-luo/go-selfies/attribution"
	"github.com/cx-luo/go-selfies/codecerr"
	"github.com/cx-luo/go-selfies/grammar"
	"github.com/cx-luo/go-selfies/graph"
	"github.com/cx-luo/go-selfies/selfieslog"
	"github.com/cx-luo/go-selfies/smiles"
)

// ringTriple is a deferred ring-bond request: open it between left and
// right once every fragment has been derived, carrying the attribution
// stack captured when the ring token was read.
type ringTriple struct {
	left, right             int
	order                   graph.Order
	leftStereo, rightStereo string
	attr                    attribution.Stack
}

// Result is the output of Decode: the SMILES rendering of the decoded
// graph, plus its attribution map when tracking was requested.
type Result struct {
	SMILES      string
	Attribution *attribution.Map
}

// Decode turns a SELFIES string into SMILES (spec §4.5). It never fails
// except on a structurally malformed bracket token or an unknown symbol
// at a derivation position (codecerr.DecoderError); any other input,
// however arbitrary, decodes to *something*.
func Decode(selfies string, trackAttribution bool) (Result, error) {
	g := graph.NewGraph(trackAttribution)
	var ringQueue []ringTriple

	for _, frag := range strings.Split(selfies, ".") {
		symbols := grammar.Split(frag)
		c := newCursor(symbols)
		if _, err := derive(c, g, len(symbols), -1, 0, &ringQueue, nil, selfies); err != nil {
			return Result{}, err
		}
	}

	resolveRings(g, ringQueue)

	out, err := smiles.Write(g)
	if err != nil {
		return Result{}, err
	}
	return Result{SMILES: out, Attribution: g.Attribution}, nil
}

// derive runs one derivation frame to completion: the top-level call per
// fragment, or a recursive call for a branch's sub-budget. budget bounds
// how many raw symbols (including index tails) this frame may consume
// from the shared cursor, counting the symbols its nested branch frames
// consume; it returns how many symbols it consumed.
func derive(c *cursor, g *graph.Graph, budget, prev, state int, ringQueue *[]ringTriple, stack attribution.Stack, originalInput string) (int, error) {
	consumed := 0
	for consumed < budget {
		pos := c.index()
		raw, ok := c.next()
		if !ok {
			break
		}
		consumed++

		tok, err := grammar.Parse(raw)
		if err != nil {
			return consumed, codecerr.NewDecoderError(raw, originalInput, "malformed bracket token")
		}

		entry := attribution.Attribution{SymbolIndex: pos, SymbolText: raw}

		switch tok.Family {
		case grammar.FamilyNop:
			continue

		case grammar.FamilyUnknown:
			return consumed, codecerr.NewDecoderError(raw, originalInput, "unknown symbol at a derivation position")

		case grammar.FamilyEpsilon:
			if state != 0 {
				state = 0
			}

		case grammar.FamilyAtom:
			prev, state = applyAtom(g, tok.Atom, prev, state, stack.Push(entry))

		case grammar.FamilyBranch:
			idxSymbols, taken := takeN(c, tok.Branch.L)
			consumed += taken
			if state < 2 {
				continue
			}
			q := grammar.IndexFromSymbols(idxSymbols)
			subBudget := q + 1
			branchState := state - 1
			if bo := int(tok.Branch.BondOrder); bo < branchState {
				branchState = bo
			}
			n, err := derive(c, g, subBudget, prev, branchState, ringQueue, stack.Push(entry), originalInput)
			consumed += n
			if err != nil {
				return consumed, err
			}
			state = normalizeState(state - branchState)

		case grammar.FamilyRing:
			idxSymbols, taken := takeN(c, tok.Ring.L)
			consumed += taken
			if state == 0 {
				continue
			}
			q := grammar.IndexFromSymbols(idxSymbols)
			target := prev - (q + 1)
			if target < 0 {
				target = 0
			}
			*ringQueue = append(*ringQueue, ringTriple{
				left: target, right: prev,
				order:       tok.Ring.BondOrder,
				leftStereo:  tok.Ring.LeftStereo,
				rightStereo: tok.Ring.RightStereo,
				attr:        stack.Push(entry),
			})
			state = normalizeState(state - int(tok.Ring.BondOrder))
		}
	}
	return consumed, nil
}

func applyAtom(g *graph.Graph, t *grammar.AtomToken, prev, state int, stack attribution.Stack) (int, int) {
	atom := atomFromToken(t)
	capacity := atom.Capacity()
	b := int(t.BondOrder)
	finalOrder := minInt(b, state, capacity)

	var idx int
	if finalOrder == 0 && state == 0 {
		idx = g.AddAtom(atom, true)
	} else {
		idx = g.AddAtom(atom, false)
		if bond, err := g.AddBond(prev, idx, graph.Order(finalOrder), t.Stereo); err == nil {
			g.Attribution.Record(bond.Handle, stack)
		}
	}
	g.Attribution.Record(atom.Handle, stack)

	newState := normalizeState(capacity - finalOrder)
	return idx, newState
}

func atomFromToken(t *grammar.AtomToken) *graph.Atom {
	a := graph.NewAtom(t.Element)
	a.Aromatic = t.Aromatic
	a.Isotope = t.Isotope
	a.Chirality = t.Chirality
	a.ExplicitH = t.ExplicitH
	a.Charge = t.Charge
	return a
}

func takeN(c *cursor, n int) ([]string, int) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, ok := c.next()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out, len(out)
}

func normalizeState(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func minInt(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// resolveRings wires up every deferred ring bond once all fragments have
// been derived (spec §4.5 "Deferred ring resolution"): capacity
// exhaustion silently skips the ring, an existing bond has its order
// raised (capped at 3), and self-loops are dropped.
func resolveRings(g *graph.Graph, queue []ringTriple) {
	for _, t := range queue {
		if t.left == t.right {
			continue
		}
		if t.left < 0 || t.left >= len(g.Atoms) || t.right < 0 || t.right >= len(g.Atoms) {
			continue
		}

		freeA := float64(g.Atoms[t.left].Capacity()) - g.BondCount(t.left)
		freeB := float64(g.Atoms[t.right].Capacity()) - g.BondCount(t.right)
		if freeA <= 0 || freeB <= 0 {
			selfieslog.Default().Debug("skipping ring bond: no remaining capacity",
				selfieslog.Int("left", t.left), selfieslog.Int("right", t.right))
			continue
		}

		order := float64(t.order)
		if order > freeA {
			order = freeA
		}
		if order > freeB {
			order = freeB
		}
		if order <= 0 {
			continue
		}
		if order < float64(t.order) {
			selfieslog.Default().Debug("clamping ring bond order to remaining capacity",
				selfieslog.Int("left", t.left), selfieslog.Int("right", t.right))
		}

		lo, hi := t.left, t.right
		if lo > hi {
			lo, hi = hi, lo
		}

		if g.HasBond(lo, hi) {
			existing, _ := g.GetDirBond(lo, hi)
			newOrder := existing.Order + graph.Order(order)
			if newOrder > 3 {
				newOrder = 3
			}
			_ = g.UpdateBondOrder(lo, hi, newOrder)
			continue
		}

		fwd, _, err := g.AddRingBond(lo, hi, graph.Order(order), t.leftStereo, t.rightStereo, -1, -1)
		if err == nil {
			g.Attribution.Record(fwd.Handle, t.attr)
		}
	}
}
