// Package codecerr defines the two error kinds the codec ever raises
// (spec §7): EncoderError for malformed SMILES, kekulization failure, or a
// bond-constraint violation; DecoderError for a structurally malformed
// bracket token or an unknown symbol at a derivation position.
package codecerr

import "fmt"

// EncoderError reports a failure turning SMILES (or a molecular graph)
// into SELFIES. It carries the offending SMILES input so callers can
// report it without re-threading context.
type EncoderError struct {
	SMILES string
	Reason string
}

func (e *EncoderError) Error() string {
	return fmt.Sprintf("encoder: %s (smiles=%q)", e.Reason, e.SMILES)
}

// NewEncoderError builds an EncoderError, wrapping cause's message into
// Reason when cause is non-nil.
func NewEncoderError(smiles, reason string, cause error) *EncoderError {
	if cause != nil {
		reason = fmt.Sprintf("%s: %v", reason, cause)
	}
	return &EncoderError{SMILES: smiles, Reason: reason}
}

// DecoderError reports a structurally malformed SELFIES symbol, or an
// unknown symbol encountered at a derivation position. It carries both
// the offending symbol and the full input for diagnostics.
type DecoderError struct {
	Symbol string
	Input  string
	Reason string
}

func (e *DecoderError) Error() string {
	return fmt.Sprintf("decoder: %s (symbol=%q, input=%q)", e.Reason, e.Symbol, e.Input)
}

// NewDecoderError builds a DecoderError.
func NewDecoderError(symbol, input, reason string) *DecoderError {
	return &DecoderError{Symbol: symbol, Input: input, Reason: reason}
}
