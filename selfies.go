// Package selfies is the top-level public API: encode SMILES to SELFIES
// and decode SELFIES back to SMILES, plus the textual utilities and
// constraint-table accessors spec §6 names as the external interface. It
// is a thin composition layer over the lower packages — parsing,
// kekulization, and derivation all happen there; this file only wires
// them together and re-exports what embedders need.
package selfies

import (
	"github.com/cx-luo/go-selfies/attribution"
	"github.com/cx-luo/go-selfies/constraints"
	"github.com/cx-luo/go-selfies/decoder"
	"github.com/cx-luo/go-selfies/encoder"
	"github.com/cx-luo/go-selfies/grammar"
)

// Encoder parses smiles, kekulizes it, and renders SELFIES (spec §4.7).
// When attribute is true, the second return value maps parsed atoms to
// their source SMILES index.
func Encoder(smiles string, attribute bool) (string, *attribution.Map, error) {
	res, err := encoder.Encode(smiles, attribute)
	if err != nil {
		return "", nil, err
	}
	return res.SELFIES, res.Attribution, nil
}

// Decoder turns selfies into SMILES (spec §4.5). It never fails except on
// a structurally malformed bracket or an unknown symbol at a derivation
// position. The compatible flag is accepted for interface symmetry with
// the spec's external surface; this implementation's grammar already
// treats every unrecognized index-position symbol as digit zero and every
// `[nop]`/`eps`-containing symbol uniformly, so there is no additional
// leniency mode to toggle.
func Decoder(selfies string, attribute, compatible bool) (string, *attribution.Map, error) {
	_ = compatible
	res, err := decoder.Decode(selfies, attribute)
	if err != nil {
		return "", nil, err
	}
	return res.SMILES, res.Attribution, nil
}

// LenSelfies returns the number of bracketed symbols in s.
func LenSelfies(s string) int {
	return grammar.Len(s)
}

// SplitSelfies splits s into its bracketed symbols in order.
func SplitSelfies(s string) []string {
	return grammar.Split(s)
}

// GetAlphabetFromSelfies returns the de-duplicated set of bracketed
// symbols appearing across every fragment of every string in selfiesSet.
func GetAlphabetFromSelfies(selfiesSet []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range selfiesSet {
		for _, sym := range grammar.Split(s) {
			if _, ok := seen[sym]; !ok {
				seen[sym] = struct{}{}
				out = append(out, sym)
			}
		}
	}
	return out
}

// GetPresetConstraints returns a copy of the named bond-constraints
// preset ("default", "octet_rule", or "hypervalent").
func GetPresetConstraints(name string) (constraints.Table, error) {
	return constraints.Preset(name)
}

// GetSemanticConstraints returns a fresh copy of the currently installed
// process-wide constraints table.
func GetSemanticConstraints() constraints.Table {
	return constraints.GetSemantic()
}

// SetSemanticConstraints installs table as the process-wide
// bond-constraints table used by every subsequent encode/decode call. The
// mapping must contain the fallback key "?"; every other key must be an
// element name or an element name with a signed-integer charge suffix.
func SetSemanticConstraints(table constraints.Table) error {
	return constraints.SetSemantic(table)
}

// SetSemanticConstraintsPreset installs the named preset as the
// process-wide bond-constraints table.
func SetSemanticConstraintsPreset(name string) error {
	return constraints.SetSemanticPreset(name)
}

// GetSemanticRobustAlphabet returns the set of SELFIES symbols the codec
// currently considers valid under the installed constraints table.
func GetSemanticRobustAlphabet() []string {
	return grammar.SemanticRobustAlphabet()
}
