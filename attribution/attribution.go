// Package attribution implements the optional side-channel that maps
// output tokens back to the input symbol(s) that produced them (spec
// §4.8). Atoms and bonds are owned by the molecular graph; attributions
// live in a side map keyed by a stable Handle rather than a back-pointer,
// per spec §9 ("Cyclic references... avoid back-pointers").
package attribution

import "github.com/google/uuid"

// Handle is an opaque, stable identity for an atom or bond, used only as
// an attribution side-map key. It carries no graph semantics of its own.
type Handle struct {
	id uuid.UUID
}

// NewHandle mints a fresh, process-unique handle.
func NewHandle() Handle {
	return Handle{id: uuid.New()}
}

// Attribution pairs an input symbol's position with its literal text.
type Attribution struct {
	SymbolIndex int
	SymbolText  string
}

// Stack is the ordered list of attributions active when a token was
// emitted: outer-to-inner, branches push, atom emission appends.
type Stack []Attribution

// Push returns a new stack with a appended, leaving s unmodified.
func (s Stack) Push(a Attribution) Stack {
	out := make(Stack, len(s), len(s)+1)
	copy(out, s)
	return append(out, a)
}

// Map is the side-channel index from a Handle to the attribution stack
// recorded for it. A nil *Map means attribution tracking is disabled.
type Map struct {
	byHandle map[Handle]Stack
}

// NewMap constructs an empty, enabled attribution map.
func NewMap() *Map {
	return &Map{byHandle: make(map[Handle]Stack)}
}

// Record attaches stack to handle, overwriting any prior entry. Record is
// a no-op on a nil receiver so call sites don't need to branch on whether
// attribution tracking is enabled.
func (m *Map) Record(handle Handle, stack Stack) {
	if m == nil {
		return
	}
	cp := make(Stack, len(stack))
	copy(cp, stack)
	m.byHandle[handle] = cp
}

// Get returns the attribution stack recorded for handle, if any.
func (m *Map) Get(handle Handle) (Stack, bool) {
	if m == nil {
		return nil, false
	}
	s, ok := m.byHandle[handle]
	return s, ok
}

// Len reports how many handles carry attribution, 0 for a nil map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.byHandle)
}
