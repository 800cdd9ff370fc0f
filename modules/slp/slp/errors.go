package slp

import "github.com/cockroachdb/errors"

// ErrNotSlpTransaction means the transaction does not carry an SLP marker output at all.
// Callers skip these transactions silently.
var ErrNotSlpTransaction = errors.New("not an slp transaction")

// The transaction declares itself as SLP (marker + protocol tag) but violates the grammar.
// These must be surfaced to the caller.
var (
	ErrUnknownTokenType   = errors.New("unknown slp token type")
	ErrIllegalOperation   = errors.New("illegal slp operation for token type")
	ErrMalformedTokenId   = errors.New("malformed slp token id")
	ErrMalformedMintBaton = errors.New("malformed slp mint baton")
	ErrMalformedAmount    = errors.New("malformed slp amount")
	ErrMalformedScript    = errors.New("malformed slp marker script")
)

// IsGrammarViolation reports whether err describes a self-declared SLP transaction that
// failed to decode.
func IsGrammarViolation(err error) bool {
	return errors.IsAny(err,
		ErrUnknownTokenType,
		ErrIllegalOperation,
		ErrMalformedTokenId,
		ErrMalformedMintBaton,
		ErrMalformedAmount,
		ErrMalformedScript,
	)
}
