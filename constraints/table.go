// Package constraints implements the bond-constraints table: a
// process-configurable mapping from atom key to maximum bond-order sum.
//
// An atom key is either a bare element name ("C", "Cl") or an element name
// with a signed charge suffix ("N+1", "O-1"). The fallback key "?" covers
// any atom the table does not name explicitly.
package constraints

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FallbackKey is the key used for atoms the table does not otherwise name.
const FallbackKey = "?"

// Table maps an atom key to its non-negative maximum bond-order sum.
type Table map[string]int

var keyPattern = regexp.MustCompile(`^[A-Za-z][a-z]?([+-][0-9]+)?$`)

// Key builds the atom key for an element and formal charge, e.g.
// Key("N", 1) == "N+1", Key("N", 0) == "N", Key("N", -2) == "N-2".
func Key(element string, charge int) string {
	if charge == 0 {
		return element
	}
	if charge > 0 {
		return fmt.Sprintf("%s+%d", element, charge)
	}
	return fmt.Sprintf("%s%d", element, charge)
}

// Lookup returns the maximum bond-order sum for (element, charge) under t,
// falling back to t[FallbackKey] (or 0 if that key is also absent).
func Lookup(t Table, element string, charge int) int {
	if v, ok := t[Key(element, charge)]; ok {
		return v
	}
	if v, ok := t[FallbackKey]; ok {
		return v
	}
	return 0
}

// Validate checks that t is a well-formed constraints mapping: it must
// contain FallbackKey, every key must match the element/element-charge
// grammar, and every value must be non-negative.
func Validate(t Table) error {
	if t == nil {
		return fmt.Errorf("constraints: table is nil")
	}
	if _, ok := t[FallbackKey]; !ok {
		return fmt.Errorf("constraints: table missing required fallback key %q", FallbackKey)
	}
	for k, v := range t {
		if k == FallbackKey {
			if v < 0 {
				return fmt.Errorf("constraints: fallback value must be non-negative, got %d", v)
			}
			continue
		}
		if !keyPattern.MatchString(k) {
			return fmt.Errorf("constraints: invalid key %q (want element name or element+signed int)", k)
		}
		if v < 0 {
			return fmt.Errorf("constraints: value for key %q must be non-negative, got %d", k, v)
		}
	}
	return nil
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// SplitKey separates a trailing signed integer from an atom key, returning
// the bare element name and the charge (0 if none present). Used by
// package grammar to enumerate atom symbols for every key a constraints
// table names.
func SplitKey(key string) (element string, charge int, err error) {
	if key == FallbackKey {
		return key, 0, nil
	}
	idx := strings.IndexAny(key, "+-")
	if idx < 0 {
		return key, 0, nil
	}
	element = key[:idx]
	n, err := strconv.Atoi(key[idx:])
	if err != nil {
		return "", 0, fmt.Errorf("constraints: bad charge suffix in key %q: %w", key, err)
	}
	return element, n, nil
}
