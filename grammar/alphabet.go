package grammar

import (
	"sort"
	"sync"

	"github.com/cx-luo/go-selfies/constraints"
)

// robustAlphabetCache memoizes the semantic-robust alphabet (spec §4.3:
// every symbol the decoder can productively consume under the currently
// installed constraints table) keyed on constraints.Generation(), so a
// SetSemantic call transparently invalidates it without either package
// importing the other's mutable state directly.
type robustAlphabetCache struct {
	mu         sync.Mutex
	generation uint64
	symbols    []string
}

var alphabetCache = &robustAlphabetCache{}

// coreAlphabet is the fixed portion of the robust alphabet that does not
// depend on the constraints table: the IndexAlphabet symbols, which
// include [Ring1], [Ring2] and the [Branch1]/[Branch2] forms. No other
// control symbols are added.
var coreAlphabet = func() []string {
	out := append([]string{}, IndexAlphabet...)
	return out
}()

// SemanticRobustAlphabet returns the semantic-robust alphabet for the
// currently installed constraints table (spec §6:
// getSemanticRobustAlphabet). The slice is freshly allocated per call but
// its contents are cached per constraints generation.
func SemanticRobustAlphabet() []string {
	gen := constraints.Generation()

	alphabetCache.mu.Lock()
	defer alphabetCache.mu.Unlock()
	if alphabetCache.symbols != nil && alphabetCache.generation == gen {
		out := make([]string, len(alphabetCache.symbols))
		copy(out, alphabetCache.symbols)
		return out
	}

	table := constraints.GetSemantic()
	set := make(map[string]struct{})
	for _, s := range coreAlphabet {
		set[s] = struct{}{}
	}
	for key := range table {
		element, charge, err := constraints.SplitKey(key)
		if err != nil {
			continue
		}
		if element == constraints.FallbackKey {
			continue
		}
		for _, sym := range atomSymbolsFor(element, charge) {
			set[sym] = struct{}{}
		}
	}

	symbols := make([]string, 0, len(set))
	for s := range set {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	alphabetCache.generation = gen
	alphabetCache.symbols = symbols

	out := make([]string, len(symbols))
	copy(out, symbols)
	return out
}

// atomSymbolsFor enumerates the bracket atom symbols the robust alphabet
// contributes for a given element/charge pair: the bare atom and its
// single/double/triple-bonded forms, matching the families the encoder
// ever emits (spec §4.7).
func atomSymbolsFor(element string, charge int) []string {
	suffix := element
	if charge != 0 {
		sign := "+"
		n := charge
		if charge < 0 {
			sign = "-"
			n = -charge
		}
		suffix = element + sign + itoa(n)
	}
	return []string{
		"[" + suffix + "]",
		"[=" + suffix + "]",
		"[#" + suffix + "]",
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := [20]byte{}
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}
