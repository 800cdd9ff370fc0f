package slp

import (
	"context"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessor(t *testing.T) {
	ctx := context.Background()

	t.Run("reconciles_every_family", func(t *testing.T) {
		env := newTestEnv(t)
		tokenTx := sendTx(t, slp.TokenTypeFungible, testTokenId, 500)
		nftTx := sendTx(t, slp.TokenTypeNftChild, testNftId, 1)
		preloadCaches(t, env,
			[]chainhash.Hash{tokenTx.TxHash, nftTx.TxHash},
			[]*entity.TokenDescriptor{{TokenId: testTokenId, Ticker: "TST", Decimals: 0}},
			[]*entity.NftDescriptor{{TokenId: testNftId, NftParentId: testNftParentId, Name: "Art #1", Ticker: "ART"}},
		)
		outputs := append(spendable(tokenTx, 1), spendable(nftTx, 1)...)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(outputs, nil)

		processor := NewProcessor(env.reconciler, 3)
		assert.Equal(t, "slp", processor.Name())
		require.NoError(t, processor.Process(ctx))

		assert.Equal(t, "500", env.reconciler.Snapshot(FamilyFungible).Balances[testTokenId].String())
		assert.Equal(t, "1", env.reconciler.Snapshot(FamilyNft).Balances[testNftId].String())
	})

	t.Run("wallet_failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(nil, errs.Unavailable)

		processor := NewProcessor(env.reconciler, 3)
		assert.ErrorIs(t, processor.Process(ctx), errs.Unavailable)
	})
}
