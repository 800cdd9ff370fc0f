package usecase

import (
	"context"
	"testing"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/core/types"
	slpengine "github.com/gaze-network/slp-indexer/modules/slp"
	"github.com/gaze-network/slp-indexer/modules/slp/datagateway/mocks"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	alphaId  = utils.Must(slp.NewTokenIdFromString("959a6818cba5af8aba391d3f7649f5f6a5ceb6cdcd2c2a3dcb5d2fbfc4b08e98"))
	bravoId  = utils.Must(slp.NewTokenIdFromString("a2987562a405648a6c5622ed6c205fca6169faa8afeb96a994b48010bd186a66"))
	parentId = utils.Must(slp.NewTokenIdFromString("4abbea22956e7db07ab1a8b8f6e2e5b3c5f2bc5db7a6f1b7c0cd2ef52e6b6a01"))
	nftId    = utils.Must(slp.NewTokenIdFromString("0f3c8e4b0a1e6a2c1b7d90a4f1c5e2d3b4a5968778695a4b3c2d1e0f1a2b3c4d"))
)

func sendOutputs(t *testing.T, tokenType slp.TokenType, tokenId slp.TokenId, amounts ...uint64) (chainhash.Hash, []*types.SpendableOutput) {
	t.Helper()
	script, err := slp.EncodeSendMany(tokenType, tokenId, amounts)
	require.NoError(t, err)
	tx := &types.Transaction{
		Version: 2,
		TxHash:  chainhash.DoubleHashH(script),
		TxOut:   []*types.TxOut{{PkScript: script}},
	}
	for range amounts {
		tx.TxOut = append(tx.TxOut, &types.TxOut{PkScript: []byte{txscript.OP_TRUE}, Value: 546})
	}
	outputs := make([]*types.SpendableOutput, 0, len(amounts))
	for i := 1; i <= len(amounts); i++ {
		outputs = append(outputs, &types.SpendableOutput{
			OutPoint: wire.OutPoint{Hash: tx.TxHash, Index: uint32(i)},
			Value:    546,
			PkScript: tx.TxOut[i].PkScript,
			ParentTx: tx,
		})
	}
	return tx.TxHash, outputs
}

// newTestUsecase returns a usecase over a reconciler whose caches already hold every fixture.
func newTestUsecase(t *testing.T) (*Usecase, []chainhash.Hash) {
	t.Helper()
	alphaTx, alphaOutputs := sendOutputs(t, slp.TokenTypeFungible, alphaId, 150, 50)
	bravoTx, bravoOutputs := sendOutputs(t, slp.TokenTypeFungible, bravoId, 7)
	parentTx, parentOutputs := sendOutputs(t, slp.TokenTypeNftParent, parentId, 3)
	nftTx, nftOutputs := sendOutputs(t, slp.TokenTypeNftChild, nftId, 1)
	txHashes := []chainhash.Hash{alphaTx, bravoTx, parentTx, nftTx}

	wallet := mocks.NewWalletDataGateway(t)
	cacheDg := mocks.NewCacheDataGateway(t)
	cacheDg.EXPECT().LoadVerifiedTxs(mock.Anything).Return(txHashes, nil).Once()
	cacheDg.EXPECT().LoadTokens(mock.Anything).Return([]*entity.TokenDescriptor{
		{TokenId: alphaId, Ticker: "alpha", Decimals: 2},
		{TokenId: bravoId, Ticker: "ALPHA", Decimals: 0},
		{TokenId: parentId, Ticker: "ART", Decimals: 0},
	}, nil).Once()
	cacheDg.EXPECT().LoadNfts(mock.Anything).Return([]*entity.NftDescriptor{
		{TokenId: nftId, NftParentId: parentId, Name: "Art #1", Ticker: "ART1"},
	}, nil).Once()
	wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(lo.Flatten([][]*types.SpendableOutput{
		alphaOutputs, bravoOutputs, parentOutputs, nftOutputs,
	}), nil)

	reconciler := slpengine.NewReconciler(wallet, mocks.NewValidityOracle(t), mocks.NewTokenDirectory(t), cacheDg)
	reconciler.LoadCaches(context.Background())
	return New(reconciler, 3), txHashes
}

func TestUsecase(t *testing.T) {
	ctx := context.Background()
	uc, txHashes := newTestUsecase(t)

	results, err := uc.Reconcile(ctx, slpengine.Families)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for i, result := range results {
		assert.Equal(t, slpengine.Families[i], result.Family)
		require.Len(t, result.Reports, 1)
		assert.True(t, result.Reports[0].Converged())
	}

	t.Run("token_balances_sorted_by_ticker", func(t *testing.T) {
		balances, updatedAt, err := uc.GetBalances(ctx, BalanceScopeTokens)
		require.NoError(t, err)
		assert.False(t, updatedAt.IsZero())
		require.Len(t, balances, 2)
		// tickers compare case-insensitively, ties break on token id
		assert.Equal(t, alphaId, balances[0].TokenId)
		assert.Equal(t, "2", balances[0].Amount.String())
		assert.Equal(t, bravoId, balances[1].TokenId)
		assert.Equal(t, "7", balances[1].Amount.String())
	})

	t.Run("nft_parent_balances", func(t *testing.T) {
		balances, _, err := uc.GetBalances(ctx, BalanceScopeNftParents)
		require.NoError(t, err)
		require.Len(t, balances, 1)
		assert.Equal(t, "ART", balances[0].Ticker)
		assert.Equal(t, "3", balances[0].Amount.String())
	})

	t.Run("nft_balances", func(t *testing.T) {
		balances, _, err := uc.GetBalances(ctx, BalanceScopeNfts)
		require.NoError(t, err)
		require.Len(t, balances, 1)
		assert.Equal(t, nftId, balances[0].TokenId)
		assert.Equal(t, "ART1", balances[0].Ticker)
	})

	t.Run("unknown_scope", func(t *testing.T) {
		_, _, err := uc.GetBalances(ctx, BalanceScope("everything"))
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})

	t.Run("utxos", func(t *testing.T) {
		assert.Len(t, uc.GetUTXOs(ctx, slpengine.FamilyFungible), 4)
		assert.Len(t, uc.GetUTXOs(ctx, slpengine.FamilyNft), 1)
	})

	t.Run("descriptors", func(t *testing.T) {
		assert.Len(t, uc.GetTokens(ctx), 3)
		assert.Len(t, uc.GetNfts(ctx), 1)

		token, err := uc.GetToken(ctx, alphaId)
		require.NoError(t, err)
		assert.Equal(t, "alpha", token.Ticker)
		nft, err := uc.GetNft(ctx, nftId)
		require.NoError(t, err)
		assert.Equal(t, parentId, nft.NftParentId)

		_, err = uc.GetToken(ctx, nftId)
		assert.ErrorIs(t, err, errs.NotFound)
		_, err = uc.GetNft(ctx, alphaId)
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("tx_state", func(t *testing.T) {
		assert.Equal(t, slpengine.TxStateResolved, uc.GetTxState(ctx, txHashes[0]))
		assert.Equal(t, slpengine.TxStateUnseen, uc.GetTxState(ctx, chainhash.Hash{}))
	})
}
