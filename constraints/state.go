package constraints

import "sync"

// registry holds the process-wide semantic-constraints table. Mutation via
// SetSemantic atomically installs the new table, resets the
// bonding-capacity memo, and bumps generation; package grammar's
// robust-alphabet cache compares its stored generation against
// Generation() before trusting its cached state.
// This is the "thread-safe atomic swap primitive" option from the design
// notes, favored over a plain mutable global because readers never block
// writers for longer than the copy-in.
type registry struct {
	mu         sync.RWMutex
	table      Table
	generation uint64
	capMemo    map[string]int
}

var global = &registry{table: Default(), generation: 1, capMemo: make(map[string]int)}

// SetSemantic validates and installs t as the process-wide semantic
// constraints table, invalidating the bonding-capacity memo.
func SetSemantic(t Table) error {
	if err := Validate(t); err != nil {
		return err
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.table = t.Clone()
	global.generation++
	global.capMemo = make(map[string]int)
	return nil
}

// SetSemanticPreset installs the named preset as the process-wide table.
func SetSemanticPreset(name string) error {
	t, err := Preset(name)
	if err != nil {
		return err
	}
	return SetSemantic(t)
}

// GetSemantic returns a fresh copy of the currently installed table.
func GetSemantic() Table {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.table.Clone()
}

// Generation returns the current constraints generation, bumped by every
// successful SetSemantic call. Derived caches elsewhere in the codec use
// this to decide whether they must rebuild.
func Generation() uint64 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.generation
}

// CapacityFor returns the memoized maximum bond-order sum for (element,
// charge) under the currently installed table.
func CapacityFor(element string, charge int) int {
	key := Key(element, charge)

	global.mu.RLock()
	if v, ok := global.capMemo[key]; ok {
		global.mu.RUnlock()
		return v
	}
	global.mu.RUnlock()

	global.mu.Lock()
	defer global.mu.Unlock()
	if v, ok := global.capMemo[key]; ok {
		return v
	}
	v := Lookup(global.table, element, charge)
	global.capMemo[key] = v
	return v
}
