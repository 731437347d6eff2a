package constraints

// knownElementNames is the periodic-table symbol set recognized by the
// grammar tokenizer and SMILES parser, grounded on the teacher's
// molecule/elements.go periodic literal table (element names only; the
// teacher's PSEUDO/RSITE/TEMPLATE pseudo-elements have no SMILES/SELFIES
// surface form and are omitted here).
var knownElementNames = []string{
	"Ac", "Ag", "Al", "Am", "Ar", "As", "At", "Au", "B", "Ba", "Be", "Bh",
	"Bi", "Bk", "Br", "C", "Ca", "Cd", "Ce", "Cf", "Cl", "Cm", "Cn", "Co",
	"Cr", "Cs", "Cu", "Db", "Ds", "Dy", "Er", "Es", "Eu", "F", "Fe", "Fl",
	"Fm", "Fr", "Ga", "Gd", "Ge", "H", "He", "Hf", "Hg", "Ho", "Hs", "I",
	"In", "Ir", "K", "Kr", "La", "Li", "Lr", "Lu", "Lv", "Mc", "Md", "Mg",
	"Mn", "Mo", "Mt", "N", "Na", "Nb", "Nd", "Ne", "Nh", "Ni", "No", "Np",
	"O", "Og", "Os", "P", "Pa", "Pb", "Pd", "Pm", "Po", "Pr", "Pt", "Pu",
	"Ra", "Rb", "Re", "Rf", "Rg", "Rh", "Rn", "Ru", "S", "Sb", "Sc", "Se",
	"Sg", "Si", "Sm", "Sn", "Sr", "Ta", "Tb", "Tc", "Te", "Th", "Ti", "Tl",
	"Tm", "Ts", "U", "V", "W", "Xe", "Y", "Yb", "Zn", "Zr",
}

// KnownElements is the set form of knownElementNames, used for O(1)
// membership checks while tokenizing.
var KnownElements = func() map[string]bool {
	m := make(map[string]bool, len(knownElementNames))
	for _, e := range knownElementNames {
		m[e] = true
	}
	return m
}()

// IsKnownElement reports whether name is a recognized element symbol.
func IsKnownElement(name string) bool {
	return KnownElements[name]
}

// OrganicSubset lists the elements SMILES/SELFIES may write unbracketed in
// SMILES (always bracketed in SELFIES, per spec).
var OrganicSubset = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true,
	"S": true, "F": true, "Cl": true, "Br": true, "I": true,
}

// AromaticSubset lists the lowercase-writable aromatic organic elements.
var AromaticSubset = map[string]bool{
	"c": true, "n": true, "o": true, "s": true, "p": true, "as": true, "se": true,
}

// valenceElectrons gives the number of valence electrons for elements that
// participate in the kekulization pruning test (spec §4.4.1). Unlisted
// elements are treated as contributing 0 (pruned from aromatic systems they
// cannot realistically belong to).
var valenceElectrons = map[string]int{
	"B": 3, "C": 4, "N": 5, "O": 6, "P": 5, "S": 6,
	"As": 5, "Se": 6, "Si": 4,
}

// ValenceElectrons returns the total valence-electron count for element,
// or 0 if the element is not in the table used by the pruning test.
func ValenceElectrons(element string) int {
	return valenceElectrons[element]
}

// AllowedAromaticValences enumerates the bond-order sums an element may
// present while participating in an aromatic pi-system, used by the
// pruning test. Values mirror the common organic aromatic valence set.
var allowedAromaticValences = map[string][]int{
	"C":  {4},
	"N":  {3, 5},
	"O":  {2},
	"S":  {2, 4, 6},
	"P":  {3, 5},
	"As": {3, 5},
	"Se": {2, 4, 6},
	"Si": {4},
	"B":  {3},
}

// AllowedAromaticValences returns the candidate aromatic valences for
// element, or nil if the element is not recognized as aromatic-capable.
func AllowedAromaticValences(element string) []int {
	return allowedAromaticValences[element]
}
