package constraints

import "fmt"

// Preset names accepted by Preset and the top-level getPresetConstraints.
const (
	PresetDefault     = "default"
	PresetOctetRule    = "octet_rule"
	PresetHypervalent = "hypervalent"
)

// Default returns the default bond-constraints table: common organic
// valences, including a handful of charged variants.
func Default() Table {
	return Table{
		FallbackKey: 8,
		"H":         1,
		"He":        0,
		"B":         3,
		"B-1":       4,
		"C":         4,
		"C-1":       3,
		"C+1":       3,
		"N":         3,
		"N+1":       4,
		"N-1":       2,
		"O":         2,
		"O+1":       3,
		"O-1":       1,
		"F":         1,
		"Ne":        0,
		"P":         5,
		"P+1":       4,
		"S":         6,
		"S+1":       5,
		"S-1":       1,
		"Cl":        1,
		"Cl+1":      2,
		"Br":        1,
		"Br+1":      2,
		"I":         1,
		"I+1":       2,
		"Si":        4,
		"As":        3,
		"As+1":      4,
		"Se":        2,
		"Se+1":      3,
	}
}

// Octet returns the octet-rule preset: the same shape as Default, but any
// value exceeding the classical Lewis octet for main-group elements is
// clamped down (e.g. hypervalent P and S are reduced to 3 and 2).
func Octet() Table {
	t := Default()
	t["P"] = 3
	t["P+1"] = 4
	t["S"] = 2
	t["S+1"] = 3
	t["Cl"] = 1
	t["Br"] = 1
	t["I"] = 1
	t[FallbackKey] = 4
	return t
}

// Hypervalent returns a preset that raises the ceilings on elements known
// to form expanded-octet structures (P, S, Cl, Br, I), useful for
// decoding SELFIES streams that describe hypervalent species.
func Hypervalent() Table {
	t := Default()
	t["P"] = 7
	t["S"] = 8
	t["Cl"] = 7
	t["Br"] = 7
	t["I"] = 7
	t[FallbackKey] = 10
	return t
}

// Preset returns a fresh copy of the named preset table.
func Preset(name string) (Table, error) {
	switch name {
	case PresetDefault:
		return Default(), nil
	case PresetOctetRule:
		return Octet(), nil
	case PresetHypervalent:
		return Hypervalent(), nil
	default:
		return nil, fmt.Errorf("constraints: unknown preset %q", name)
	}
}
