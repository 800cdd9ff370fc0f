package postgres

import (
	"testing"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/repository/postgres/gen"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTokens(t *testing.T) {
	tokenId := utils.Must(slp.NewTokenIdFromString("959a6818cba5af8aba391d3f7649f5f6a5ceb6cdcd2c2a3dcb5d2fbfc4b08e98"))
	params := mapTokenTypesToParams([]*entity.TokenDescriptor{{TokenId: tokenId, Ticker: "TST", Decimals: 8}})
	assert.Equal(t, []string{tokenId.String()}, params.TokenIDArr)
	assert.Equal(t, []int16{8}, params.DecimalsArr)

	token, err := mapTokenModelToType(gen.SlpToken{TokenID: params.TokenIDArr[0], Ticker: "TST", Decimals: 8})
	require.NoError(t, err)
	assert.Equal(t, &entity.TokenDescriptor{TokenId: tokenId, Ticker: "TST", Decimals: 8}, token)

	_, err = mapTokenModelToType(gen.SlpToken{TokenID: "zz"})
	assert.Error(t, err)
}

func TestMapNfts(t *testing.T) {
	tokenId := utils.Must(slp.NewTokenIdFromString("4abbea22956e7db07ab1a8b8f6e2e5b3c5f2bc5db7a6f1b7c0cd2ef52e6b6a01"))
	t.Run("without_parent", func(t *testing.T) {
		params := mapNftTypesToParams([]*entity.NftDescriptor{{TokenId: tokenId, Name: "Art"}})
		assert.Equal(t, []string{""}, params.NftParentIDArr)

		nft, err := mapNftModelToType(gen.SlpNft{TokenID: params.TokenIDArr[0], Name: "Art"})
		require.NoError(t, err)
		assert.True(t, nft.NftParentId.IsZero())
		assert.Equal(t, "Art", nft.Name)
	})
}

func TestMapVerifiedTxs(t *testing.T) {
	txHash := chainhash.DoubleHashH([]byte("tx"))
	params := mapVerifiedTxTypesToParams([]chainhash.Hash{txHash})
	got, err := mapVerifiedTxModelToType(gen.SlpVerifiedTx{TxHash: params[0]})
	require.NoError(t, err)
	assert.Equal(t, txHash, got)
}
