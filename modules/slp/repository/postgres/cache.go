package postgres

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/modules/slp/datagateway"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
)

var _ datagateway.CacheDataGateway = (*Repository)(nil)

func (r *Repository) LoadVerifiedTxs(ctx context.Context) ([]chainhash.Hash, error) {
	models, err := r.queries.GetVerifiedTxs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	txHashes := make([]chainhash.Hash, 0, len(models))
	for _, model := range models {
		txHash, err := mapVerifiedTxModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse verified tx model")
		}
		txHashes = append(txHashes, txHash)
	}
	return txHashes, nil
}

// SaveVerifiedTxs inserts the hashes not stored yet. Rows are never deleted.
func (r *Repository) SaveVerifiedTxs(ctx context.Context, txHashes []chainhash.Hash) error {
	if len(txHashes) == 0 {
		return nil
	}
	if err := r.queries.BatchCreateVerifiedTxs(ctx, mapVerifiedTxTypesToParams(txHashes)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) LoadTokens(ctx context.Context) ([]*entity.TokenDescriptor, error) {
	models, err := r.queries.GetTokens(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	tokens := make([]*entity.TokenDescriptor, 0, len(models))
	for _, model := range models {
		token, err := mapTokenModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse token model")
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func (r *Repository) SaveTokens(ctx context.Context, tokens []*entity.TokenDescriptor) error {
	if len(tokens) == 0 {
		return nil
	}
	if err := r.queries.BatchCreateTokens(ctx, mapTokenTypesToParams(tokens)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) LoadNfts(ctx context.Context) ([]*entity.NftDescriptor, error) {
	models, err := r.queries.GetNfts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	nfts := make([]*entity.NftDescriptor, 0, len(models))
	for _, model := range models {
		nft, err := mapNftModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse nft model")
		}
		nfts = append(nfts, nft)
	}
	return nfts, nil
}

func (r *Repository) SaveNfts(ctx context.Context, nfts []*entity.NftDescriptor) error {
	if len(nfts) == 0 {
		return nil
	}
	if err := r.queries.BatchCreateNfts(ctx, mapNftTypesToParams(nfts)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
