package datagateway

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
)

type ValidityOracle interface {
	// IsValidSlpTx reports whether the transaction carries a valid SLP message.
	IsValidSlpTx(ctx context.Context, txHash chainhash.Hash) (bool, error)
}

type TokenDirectory interface {
	// GetTokenDescriptor returns the metadata of a fungible or NFT parent token. Returns errs.NotFound if the token is unknown.
	GetTokenDescriptor(ctx context.Context, tokenId slp.TokenId) (*entity.TokenDescriptor, error)
	// GetNftDescriptor returns the metadata of an NFT child token. Returns errs.NotFound if the token is unknown.
	GetNftDescriptor(ctx context.Context, tokenId slp.TokenId) (*entity.NftDescriptor, error)
}
