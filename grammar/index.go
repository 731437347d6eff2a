package grammar

// IndexAlphabet is the fixed set of symbols the self-referencing index
// codec draws digits from (spec §4.1). Order matters: it fixes each
// symbol's digit value.
var IndexAlphabet = []string{
	"[C]", "[Ring1]", "[Ring2]",
	"[Branch1]", "[=Branch1]", "[#Branch1]",
	"[Branch2]", "[=Branch2]", "[#Branch2]",
	"[O]", "[N]", "[=N]", "[=C]", "[#C]", "[S]", "[P]",
}

var indexDigit = func() map[string]int {
	m := make(map[string]int, len(IndexAlphabet))
	for i, s := range IndexAlphabet {
		m[s] = i
	}
	return m
}()

// codeOf returns the digit value of symbol under IndexAlphabet, or 0 if
// symbol is not a member. This 0-for-unknown rule (spec §4.1) is what
// guarantees the index codec never fails on arbitrary input.
func codeOf(symbol string) int {
	return indexDigit[symbol] // zero value 0 for unknown symbols
}

// IndexFromSymbols computes the non-negative integer a sequence of
// alphabet symbols encodes, under positional base-|IndexAlphabet|
// arithmetic, most-significant symbol first. Symbols outside
// IndexAlphabet contribute 0.
func IndexFromSymbols(symbols []string) int {
	base := len(IndexAlphabet)
	q := 0
	for _, s := range symbols {
		q = q*base + codeOf(s)
	}
	return q
}

// SymbolsFromIndex is the inverse of IndexFromSymbols: it renders a
// non-negative integer as exactly n digits (most-significant first) in
// the IndexAlphabet base. Passing n=0 derives the minimal digit count
// needed to represent q (at least 1 digit).
func SymbolsFromIndex(q int, n int) []string {
	base := len(IndexAlphabet)
	if q < 0 {
		q = 0
	}
	if n <= 0 {
		n = minimalDigitCount(q, base)
	}
	digits := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		digits[i] = q % base
		q /= base
	}
	out := make([]string, n)
	for i, d := range digits {
		out[i] = IndexAlphabet[d]
	}
	return out
}

func minimalDigitCount(q, base int) int {
	if q == 0 {
		return 1
	}
	n := 0
	for q > 0 {
		n++
		q /= base
	}
	return n
}
