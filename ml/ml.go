// Package ml implements the out-of-core ML-adjacent helpers spec §6 names
// by interface only: label and one-hot conversions between a SELFIES
// string and a fixed alphabet, plus their batched flat-hot counterparts.
// No numeric/tensor library is pulled in — the spec gives these helpers
// no numerics beyond indexing, so plain slices of ints/float64 are the
// direct translation.
package ml

import (
	"fmt"

	"github.com/cx-luo/go-selfies/grammar"
)

// PadSymbol is used to fill encodings out to padToLen when the input is
// shorter. It need not appear in the caller's alphabet; when it doesn't,
// it is assigned the index one past the alphabet's last symbol.
const PadSymbol = "[nop]"

// vocab is a symbol<->index mapping derived from an alphabet, with
// PadSymbol always present.
type vocab struct {
	stoi map[string]int
	itos []string
}

func newVocab(alphabet []string) vocab {
	v := vocab{stoi: make(map[string]int, len(alphabet)+1)}
	for _, s := range alphabet {
		if _, ok := v.stoi[s]; ok {
			continue
		}
		v.stoi[s] = len(v.itos)
		v.itos = append(v.itos, s)
	}
	if _, ok := v.stoi[PadSymbol]; !ok {
		v.stoi[PadSymbol] = len(v.itos)
		v.itos = append(v.itos, PadSymbol)
	}
	return v
}

func (v vocab) padIndex() int { return v.stoi[PadSymbol] }

// SelfiesToEncoding converts a single SELFIES string into a label encoding
// (one integer per symbol, indexing into alphabet) and its one-hot
// expansion (one row per symbol, one column per alphabet entry plus one
// for PadSymbol when the alphabet does not contain it). When
// padToLen exceeds the symbol count, both encodings are right-padded with
// PadSymbol's index/row; padToLen <= 0 means no padding.
func SelfiesToEncoding(s string, alphabet []string, padToLen int) (label []int, oneHot [][]int, err error) {
	v := newVocab(alphabet)

	symbols := grammar.Split(s)
	n := len(symbols)
	length := n
	if padToLen > length {
		length = padToLen
	}

	label = make([]int, length)
	oneHot = make([][]int, length)
	for i := 0; i < length; i++ {
		sym := PadSymbol
		if i < n {
			sym = symbols[i]
		}
		idx, ok := v.stoi[sym]
		if !ok {
			return nil, nil, fmt.Errorf("ml: symbol %q not present in alphabet", sym)
		}
		label[i] = idx
		row := make([]int, len(v.itos))
		row[idx] = 1
		oneHot[i] = row
	}
	return label, oneHot, nil
}

// EncodingToSelfies is the inverse of SelfiesToEncoding's label form: it
// renders a sequence of alphabet indices back into a SELFIES string,
// dropping every PadSymbol entry wherever it occurs.
func EncodingToSelfies(label []int, alphabet []string) (string, error) {
	v := newVocab(alphabet)
	var out string
	for _, idx := range label {
		if idx == v.padIndex() {
			continue
		}
		if idx < 0 || idx >= len(v.itos) {
			return "", fmt.Errorf("ml: label index %d out of range [0,%d)", idx, len(v.itos))
		}
		out += v.itos[idx]
	}
	return out, nil
}

// BatchSelfiesToFlatHot converts a batch of SELFIES strings into flattened
// one-hot rows, suitable as a dense model input matrix. Each group has
// one column per alphabet entry plus one for PadSymbol when the alphabet
// does not contain it; a row holds padToLen groups, or one group per
// symbol when the string has more than padToLen symbols.
func BatchSelfiesToFlatHot(batch []string, alphabet []string, padToLen int) ([][]float64, error) {
	v := newVocab(alphabet)
	width := len(v.itos)

	out := make([][]float64, len(batch))
	for i, s := range batch {
		symbols := grammar.Split(s)
		length := padToLen
		if length < len(symbols) {
			length = len(symbols)
		}
		flat := make([]float64, length*width)
		for pos := 0; pos < length; pos++ {
			sym := PadSymbol
			if pos < len(symbols) {
				sym = symbols[pos]
			}
			idx, ok := v.stoi[sym]
			if !ok {
				return nil, fmt.Errorf("ml: symbol %q not present in alphabet", sym)
			}
			flat[pos*width+idx] = 1
		}
		out[i] = flat
	}
	return out, nil
}

// BatchFlatHotToSelfies is the inverse of BatchSelfiesToFlatHot: each row
// is un-flattened into padToLen one-hot groups of the same width
// BatchSelfiesToFlatHot uses, argmax-decoded back to its symbol, and
// padding symbols are dropped. A row of any other length is an error.
func BatchFlatHotToSelfies(batch [][]float64, alphabet []string, padToLen int) ([]string, error) {
	v := newVocab(alphabet)
	width := len(v.itos)

	out := make([]string, len(batch))
	for i, flat := range batch {
		if len(flat) != padToLen*width {
			return nil, fmt.Errorf("ml: row %d has length %d, want %d", i, len(flat), padToLen*width)
		}
		var s string
		for pos := 0; pos < padToLen; pos++ {
			row := flat[pos*width : (pos+1)*width]
			idx := argmax(row)
			if idx == v.padIndex() {
				continue
			}
			s += v.itos[idx]
		}
		out[i] = s
	}
	return out, nil
}

func argmax(row []float64) int {
	best := 0
	for i, x := range row {
		if x > row[best] {
			best = i
		}
	}
	return best
}
