package datagateway

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
)

// CacheDataGateway persists the append-only caches. Save methods receive the full set, not a delta.
type CacheDataGateway interface {
	LoadVerifiedTxs(ctx context.Context) ([]chainhash.Hash, error)
	SaveVerifiedTxs(ctx context.Context, txHashes []chainhash.Hash) error

	LoadTokens(ctx context.Context) ([]*entity.TokenDescriptor, error)
	SaveTokens(ctx context.Context, tokens []*entity.TokenDescriptor) error

	LoadNfts(ctx context.Context) ([]*entity.NftDescriptor, error)
	SaveNfts(ctx context.Context, nfts []*entity.NftDescriptor) error
}
