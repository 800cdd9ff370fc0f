package slp

import (
	"encoding/hex"
	"encoding/json"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
)

const TokenIdSize = 32

// TokenId identifies an SLP token. Bytes are kept in display order, the same order they
// appear in the marker script and in the hex form of the genesis transaction id.
type TokenId [TokenIdSize]byte

// NewTokenIdFromHash returns the token id born from the given genesis transaction hash.
func NewTokenIdFromHash(hash chainhash.Hash) TokenId {
	var id TokenId
	for i := 0; i < TokenIdSize; i++ {
		id[i] = hash[TokenIdSize-1-i]
	}
	return id
}

func NewTokenIdFromBytes(b []byte) (TokenId, error) {
	if len(b) != TokenIdSize {
		return TokenId{}, errors.Wrapf(ErrMalformedTokenId, "expected %d bytes, got %d", TokenIdSize, len(b))
	}
	var id TokenId
	copy(id[:], b)
	return id, nil
}

func NewTokenIdFromString(s string) (TokenId, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return TokenId{}, errors.Wrapf(errs.InvalidArgument, "token id %q is not hex: %v", s, err)
	}
	id, err := NewTokenIdFromBytes(b)
	if err != nil {
		return TokenId{}, errors.Wrapf(errs.InvalidArgument, "token id %q: %v", s, err)
	}
	return id, nil
}

// Hash returns the genesis transaction hash of the token.
func (t TokenId) Hash() chainhash.Hash {
	var h chainhash.Hash
	for i := 0; i < TokenIdSize; i++ {
		h[i] = t[TokenIdSize-1-i]
	}
	return h
}

func (t TokenId) Bytes() []byte {
	return t[:]
}

func (t TokenId) IsZero() bool {
	return t == TokenId{}
}

func (t TokenId) String() string {
	return hex.EncodeToString(t[:])
}

func (t TokenId) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TokenId) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.WithStack(err)
	}
	id, err := NewTokenIdFromString(s)
	if err != nil {
		return errors.WithStack(err)
	}
	*t = id
	return nil
}
