package entity

import (
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
)

type UTXOKind uint8

const (
	UTXOKindNormal UTXOKind = iota
	UTXOKindMintBaton
)

func (k UTXOKind) String() string {
	switch k {
	case UTXOKindNormal:
		return "normal"
	case UTXOKindMintBaton:
		return "mint_baton"
	}
	return "unknown"
}

func (k UTXOKind) MarshalText() ([]byte, error) {
	if k > UTXOKindMintBaton {
		return nil, errors.Errorf("unknown utxo kind %d", k)
	}
	return []byte(k.String()), nil
}

// SlpUTXO is a wallet output attributed with a token quantity.
type SlpUTXO struct {
	OutPoint  wire.OutPoint
	Value     int64
	PkScript  []byte
	TokenId   slp.TokenId
	TokenType slp.TokenType
	// Raw quantity, not scaled by the token decimals.
	Amount uint64
	Kind   UTXOKind
}
