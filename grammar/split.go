package grammar

import "strings"

// Split breaks a SELFIES string into its bracketed symbols in order,
// e.g. "[C][=C][Ring1][C]" -> ["[C]", "[=C]", "[Ring1]", "[C]"]. A hanging
// "[" with no closing "]" is structurally malformed: the unterminated
// remainder is emitted verbatim as its own token (not swallowed into a
// synthetic "[nop]") so that Parse flags it and the derivation engine can
// raise DecoderError — the one case the decoder's totality guarantee is
// carved around (spec §4.1, §8).
func Split(s string) []string {
	var out []string
	i := 0
	for i < len(s) {
		start := strings.IndexByte(s[i:], '[')
		if start < 0 {
			break
		}
		start += i
		end := strings.IndexByte(s[start:], ']')
		if end < 0 {
			out = append(out, s[start:])
			break
		}
		end += start
		out = append(out, s[start:end+1])
		i = end + 1
	}
	return out
}

// Len returns the number of bracketed symbols in s.
func Len(s string) int {
	return len(Split(s))
}

// Join renders symbols back into a single SELFIES string.
func Join(symbols []string) string {
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s)
	}
	return b.String()
}
