package postgres

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/repository/postgres/gen"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/samber/lo"
)

func mapVerifiedTxModelToType(src gen.SlpVerifiedTx) (chainhash.Hash, error) {
	txHash, err := chainhash.NewHashFromStr(src.TxHash)
	if err != nil {
		return chainhash.Hash{}, errors.Wrap(err, "failed to parse tx hash")
	}
	return *txHash, nil
}

func mapVerifiedTxTypesToParams(src []chainhash.Hash) []string {
	return lo.Map(src, func(txHash chainhash.Hash, _ int) string {
		return txHash.String()
	})
}

func mapTokenModelToType(src gen.SlpToken) (*entity.TokenDescriptor, error) {
	tokenId, err := slp.NewTokenIdFromString(src.TokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token id")
	}
	return &entity.TokenDescriptor{
		TokenId:  tokenId,
		Ticker:   src.Ticker,
		Decimals: uint8(src.Decimals),
	}, nil
}

func mapTokenTypesToParams(src []*entity.TokenDescriptor) gen.BatchCreateTokensParams {
	params := gen.BatchCreateTokensParams{
		TokenIDArr:  make([]string, 0, len(src)),
		TickerArr:   make([]string, 0, len(src)),
		DecimalsArr: make([]int16, 0, len(src)),
	}
	for _, token := range src {
		params.TokenIDArr = append(params.TokenIDArr, token.TokenId.String())
		params.TickerArr = append(params.TickerArr, token.Ticker)
		params.DecimalsArr = append(params.DecimalsArr, int16(token.Decimals))
	}
	return params
}

func mapNftModelToType(src gen.SlpNft) (*entity.NftDescriptor, error) {
	tokenId, err := slp.NewTokenIdFromString(src.TokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token id")
	}
	var parentId slp.TokenId
	if src.NftParentID != "" {
		parentId, err = slp.NewTokenIdFromString(src.NftParentID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse nft parent id")
		}
	}
	return &entity.NftDescriptor{
		TokenId:     tokenId,
		NftParentId: parentId,
		Name:        src.Name,
		Ticker:      src.Ticker,
		Decimals:    uint8(src.Decimals),
	}, nil
}

func mapNftTypesToParams(src []*entity.NftDescriptor) gen.BatchCreateNftsParams {
	params := gen.BatchCreateNftsParams{
		TokenIDArr:     make([]string, 0, len(src)),
		NftParentIDArr: make([]string, 0, len(src)),
		NameArr:        make([]string, 0, len(src)),
		TickerArr:      make([]string, 0, len(src)),
		DecimalsArr:    make([]int16, 0, len(src)),
	}
	for _, nft := range src {
		parentId := ""
		if !nft.NftParentId.IsZero() {
			parentId = nft.NftParentId.String()
		}
		params.TokenIDArr = append(params.TokenIDArr, nft.TokenId.String())
		params.NftParentIDArr = append(params.NftParentIDArr, parentId)
		params.NameArr = append(params.NameArr, nft.Name)
		params.TickerArr = append(params.TickerArr, nft.Ticker)
		params.DecimalsArr = append(params.DecimalsArr, int16(nft.Decimals))
	}
	return params
}
