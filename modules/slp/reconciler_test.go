package slp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/core/types"
	"github.com/gaze-network/slp-indexer/modules/slp/datagateway/mocks"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testTokenId     = utils.Must(slp.NewTokenIdFromString("959a6818cba5af8aba391d3f7649f5f6a5ceb6cdcd2c2a3dcb5d2fbfc4b08e98"))
	testNftParentId = utils.Must(slp.NewTokenIdFromString("a2987562a405648a6c5622ed6c205fca6169faa8afeb96a994b48010bd186a66"))
	testNftId       = utils.Must(slp.NewTokenIdFromString("4abbea22956e7db07ab1a8b8f6e2e5b3c5f2bc5db7a6f1b7c0cd2ef52e6b6a01"))
)

type testEnv struct {
	wallet     *mocks.WalletDataGateway
	oracle     *mocks.ValidityOracle
	directory  *mocks.TokenDirectory
	cacheDg    *mocks.CacheDataGateway
	reconciler *Reconciler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		wallet:    mocks.NewWalletDataGateway(t),
		oracle:    mocks.NewValidityOracle(t),
		directory: mocks.NewTokenDirectory(t),
		cacheDg:   mocks.NewCacheDataGateway(t),
	}
	env.reconciler = NewReconciler(env.wallet, env.oracle, env.directory, env.cacheDg)
	return env
}

// newTx builds a transaction with the marker script at output 0 followed by n plain outputs.
func newTx(pkScript []byte, n int) *types.Transaction {
	tx := &types.Transaction{
		Version: 2,
		TxHash:  chainhash.DoubleHashH(pkScript),
		TxIn:    []*types.TxIn{},
		TxOut:   []*types.TxOut{{PkScript: pkScript}},
	}
	for i := 0; i < n; i++ {
		tx.TxOut = append(tx.TxOut, &types.TxOut{PkScript: []byte{txscript.OP_TRUE}, Value: 546})
	}
	return tx
}

func spendable(tx *types.Transaction, indexes ...uint32) []*types.SpendableOutput {
	return lo.Map(indexes, func(index uint32, _ int) *types.SpendableOutput {
		return &types.SpendableOutput{
			OutPoint: wire.OutPoint{Hash: tx.TxHash, Index: index},
			Value:    tx.TxOut[index].Value,
			PkScript: tx.TxOut[index].PkScript,
			ParentTx: tx,
		}
	})
}

func sendTx(t *testing.T, tokenType slp.TokenType, tokenId slp.TokenId, amounts ...uint64) *types.Transaction {
	t.Helper()
	script, err := slp.EncodeSendMany(tokenType, tokenId, amounts)
	require.NoError(t, err)
	return newTx(script, len(amounts))
}

func preloadCaches(t *testing.T, env *testEnv, txHashes []chainhash.Hash, tokens []*entity.TokenDescriptor, nfts []*entity.NftDescriptor) {
	t.Helper()
	env.cacheDg.EXPECT().LoadVerifiedTxs(mock.Anything).Return(txHashes, nil).Once()
	env.cacheDg.EXPECT().LoadTokens(mock.Anything).Return(tokens, nil).Once()
	env.cacheDg.EXPECT().LoadNfts(mock.Anything).Return(nfts, nil).Once()
	env.reconciler.LoadCaches(context.Background())
}

func TestReconcileConvergence(t *testing.T) {
	ctx := context.Background()

	t.Run("from_scratch", func(t *testing.T) {
		env := newTestEnv(t)
		tx := sendTx(t, slp.TokenTypeFungible, testTokenId, 100, 200, 300)
		token := &entity.TokenDescriptor{TokenId: testTokenId, Ticker: "TST", Decimals: 2}

		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 1, 2, 3), nil)
		env.oracle.EXPECT().IsValidSlpTx(mock.Anything, tx.TxHash).Return(true, nil).Once()
		env.cacheDg.EXPECT().SaveVerifiedTxs(mock.Anything, []chainhash.Hash{tx.TxHash}).Return(nil).Once()
		env.directory.EXPECT().GetTokenDescriptor(mock.Anything, testTokenId).Return(token, nil).Once()
		env.cacheDg.EXPECT().SaveTokens(mock.Anything, []*entity.TokenDescriptor{token}).Return(nil).Once()

		// pass 1 verifies the transaction, nothing is classified yet
		report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Outputs)
		assert.Equal(t, 1, report.NewVerifiedTxs)
		assert.Zero(t, report.Classified)
		assert.False(t, report.Converged())
		assert.Equal(t, TxStatePendingMetadata, env.reconciler.TxState(tx.TxHash))

		// pass 2 fetches the descriptor, still nothing classified
		report, err = env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.Equal(t, 1, report.NewDescriptors)
		assert.Zero(t, report.Classified)
		assert.Empty(t, env.reconciler.Snapshot(FamilyFungible).Balances)

		// pass 3 classifies every output
		report, err = env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.True(t, report.Converged())
		assert.Equal(t, 3, report.Classified)
		assert.Equal(t, TxStateResolved, env.reconciler.TxState(tx.TxHash))

		snapshot := env.reconciler.Snapshot(FamilyFungible)
		require.Len(t, snapshot.UTXOs, 3)
		assert.Equal(t, []uint64{100, 200, 300}, lo.Map(snapshot.UTXOs, func(utxo *entity.SlpUTXO, _ int) uint64 { return utxo.Amount }))
		assert.Equal(t, "6", snapshot.Balances[testTokenId].String())
		assert.Empty(t, snapshot.NftParentBalances)
	})

	t.Run("preverified_transaction_needs_two_passes", func(t *testing.T) {
		env := newTestEnv(t)
		tx := sendTx(t, slp.TokenTypeFungible, testTokenId, 1, 2, 3)
		preloadCaches(t, env, []chainhash.Hash{tx.TxHash}, nil, nil)
		token := &entity.TokenDescriptor{TokenId: testTokenId, Ticker: "TST", Decimals: 0}

		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 1, 2, 3), nil)
		env.directory.EXPECT().GetTokenDescriptor(mock.Anything, testTokenId).Return(token, nil).Once()
		env.cacheDg.EXPECT().SaveTokens(mock.Anything, mock.Anything).Return(nil).Once()

		report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.Equal(t, 1, report.NewDescriptors)
		assert.Zero(t, report.Classified)

		report, err = env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.True(t, report.Converged())
		assert.Equal(t, 3, report.Classified)
		assert.Equal(t, "6", env.reconciler.Snapshot(FamilyFungible).Balances[testTokenId].String())
	})

	t.Run("until_converged", func(t *testing.T) {
		env := newTestEnv(t)
		tx := sendTx(t, slp.TokenTypeFungible, testTokenId, 5)

		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 1), nil)
		env.oracle.EXPECT().IsValidSlpTx(mock.Anything, tx.TxHash).Return(true, nil).Once()
		env.cacheDg.EXPECT().SaveVerifiedTxs(mock.Anything, mock.Anything).Return(nil).Once()
		env.directory.EXPECT().GetTokenDescriptor(mock.Anything, testTokenId).
			Return(&entity.TokenDescriptor{TokenId: testTokenId, Ticker: "TST"}, nil).Once()
		env.cacheDg.EXPECT().SaveTokens(mock.Anything, mock.Anything).Return(nil).Once()

		reports, err := env.reconciler.ReconcileUntilConverged(ctx, FamilyFungible, 10)
		require.NoError(t, err)
		require.Len(t, reports, 3)
		assert.True(t, reports[2].Converged())
		assert.Equal(t, "5", env.reconciler.Snapshot(FamilyFungible).Balances[testTokenId].String())
	})

	t.Run("until_converged_stops_at_max_passes", func(t *testing.T) {
		env := newTestEnv(t)
		tx := sendTx(t, slp.TokenTypeFungible, testTokenId, 5)

		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 1), nil)
		env.oracle.EXPECT().IsValidSlpTx(mock.Anything, tx.TxHash).Return(true, nil).Once()
		env.cacheDg.EXPECT().SaveVerifiedTxs(mock.Anything, mock.Anything).Return(nil).Once()

		reports, err := env.reconciler.ReconcileUntilConverged(ctx, FamilyFungible, 1)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.False(t, reports[0].Converged())
	})

	t.Run("invalid_max_passes", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.reconciler.ReconcileUntilConverged(ctx, FamilyFungible, 0)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

func TestReconcileIdempotence(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tx := sendTx(t, slp.TokenTypeFungible, testTokenId, 1000, 250)
	preloadCaches(t, env,
		[]chainhash.Hash{tx.TxHash},
		[]*entity.TokenDescriptor{{TokenId: testTokenId, Ticker: "TST", Decimals: 2}},
		nil,
	)
	env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 1, 2), nil)

	first, err := env.reconciler.Reconcile(ctx, FamilyFungible)
	require.NoError(t, err)
	require.True(t, first.Converged())
	firstSnapshot := env.reconciler.Snapshot(FamilyFungible)

	second, err := env.reconciler.Reconcile(ctx, FamilyFungible)
	require.NoError(t, err)
	secondSnapshot := env.reconciler.Snapshot(FamilyFungible)

	assert.True(t, second.Converged())
	assert.Equal(t, firstSnapshot.UTXOs, secondSnapshot.UTXOs)
	assert.Equal(t, firstSnapshot.Balances, secondSnapshot.Balances)
	assert.Equal(t, "12.5", secondSnapshot.Balances[testTokenId].String())

	// nothing grew, so nothing is persisted
	env.cacheDg.AssertNotCalled(t, "SaveVerifiedTxs", mock.Anything, mock.Anything)
	env.cacheDg.AssertNotCalled(t, "SaveTokens", mock.Anything, mock.Anything)
	env.cacheDg.AssertNotCalled(t, "SaveNfts", mock.Anything, mock.Anything)
}

func TestReconcileClassification(t *testing.T) {
	ctx := context.Background()

	t.Run("genesis_with_decimals", func(t *testing.T) {
		env := newTestEnv(t)
		script := utils.Must(slp.EncodeGenesis(slp.TokenTypeFungible, slp.GenesisInfo{Ticker: "TST", Decimals: 2}, lo.ToPtr[uint32](2), 1000))
		tx := newTx(script, 2)
		tokenId := slp.NewTokenIdFromHash(tx.TxHash)
		preloadCaches(t, env,
			[]chainhash.Hash{tx.TxHash},
			[]*entity.TokenDescriptor{{TokenId: tokenId, Ticker: "TST", Decimals: 2}},
			nil,
		)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 1, 2), nil)

		report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Classified)

		snapshot := env.reconciler.Snapshot(FamilyFungible)
		assert.Equal(t, "10", snapshot.Balances[tokenId].String())

		require.Len(t, snapshot.UTXOs, 2)
		assert.Equal(t, entity.UTXOKindNormal, snapshot.UTXOs[0].Kind)
		assert.EqualValues(t, 1000, snapshot.UTXOs[0].Amount)
		assert.Equal(t, entity.UTXOKindMintBaton, snapshot.UTXOs[1].Kind)
		assert.Zero(t, snapshot.UTXOs[1].Amount)
		assert.Equal(t, wire.OutPoint{Hash: tx.TxHash, Index: 2}, snapshot.UTXOs[1].OutPoint)
	})

	t.Run("outputs_without_quantity_are_skipped", func(t *testing.T) {
		env := newTestEnv(t)
		tx := sendTx(t, slp.TokenTypeFungible, testTokenId, 0, 7)
		// output 3 is beyond the amounts
		tx.TxOut = append(tx.TxOut, &types.TxOut{PkScript: []byte{txscript.OP_TRUE}, Value: 1000})
		preloadCaches(t, env,
			[]chainhash.Hash{tx.TxHash},
			[]*entity.TokenDescriptor{{TokenId: testTokenId, Ticker: "TST"}},
			nil,
		)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 0, 1, 2, 3), nil)

		report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.Equal(t, 4, report.Outputs)
		assert.Equal(t, 1, report.Classified)
		assert.Equal(t, uint32(2), env.reconciler.Snapshot(FamilyFungible).UTXOs[0].OutPoint.Index)
	})

	t.Run("nft_parent_balances_are_separate", func(t *testing.T) {
		env := newTestEnv(t)
		fungible := sendTx(t, slp.TokenTypeFungible, testTokenId, 40)
		parent := sendTx(t, slp.TokenTypeNftParent, testNftParentId, 3, 2)
		preloadCaches(t, env,
			[]chainhash.Hash{fungible.TxHash, parent.TxHash},
			[]*entity.TokenDescriptor{
				{TokenId: testTokenId, Ticker: "TST", Decimals: 1},
				{TokenId: testNftParentId, Ticker: "GRP"},
			},
			nil,
		)
		outputs := append(spendable(fungible, 1), spendable(parent, 1, 2)...)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(outputs, nil)

		_, err := env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)

		snapshot := env.reconciler.Snapshot(FamilyFungible)
		assert.Equal(t, "4", snapshot.Balances[testTokenId].String())
		assert.NotContains(t, snapshot.Balances, testNftParentId)
		assert.Equal(t, "5", snapshot.NftParentBalances[testNftParentId].String())
		assert.Len(t, snapshot.UTXOsOf(slp.TokenTypeNftParent), 2)
		assert.Len(t, snapshot.UTXOsOf(slp.TokenTypeFungible), 1)
	})

	t.Run("nft_family_only_sees_children", func(t *testing.T) {
		env := newTestEnv(t)
		fungible := sendTx(t, slp.TokenTypeFungible, testTokenId, 40)
		child := sendTx(t, slp.TokenTypeNftChild, testNftId, 1)
		nft := &entity.NftDescriptor{TokenId: testNftId, NftParentId: testNftParentId, Name: "Art #1", Ticker: "ART"}
		preloadCaches(t, env, []chainhash.Hash{fungible.TxHash, child.TxHash}, nil, nil)

		outputs := append(spendable(fungible, 1), spendable(child, 1)...)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(outputs, nil)
		env.directory.EXPECT().GetNftDescriptor(mock.Anything, testNftId).Return(nft, nil).Once()
		env.cacheDg.EXPECT().SaveNfts(mock.Anything, []*entity.NftDescriptor{nft}).Return(nil).Once()

		reports, err := env.reconciler.ReconcileUntilConverged(ctx, FamilyNft, 5)
		require.NoError(t, err)
		require.Len(t, reports, 2)

		snapshot := env.reconciler.Snapshot(FamilyNft)
		require.Len(t, snapshot.UTXOs, 1)
		assert.Equal(t, slp.TokenTypeNftChild, snapshot.UTXOs[0].TokenType)
		assert.Equal(t, "1", snapshot.Balances[testNftId].String())
		assert.Empty(t, snapshot.NftParentBalances)
		assert.Empty(t, env.reconciler.Snapshot(FamilyFungible).UTXOs)

		got, ok := env.reconciler.Nft(testNftId)
		require.True(t, ok)
		assert.Equal(t, "Art #1", got.Name)
		env.directory.AssertNotCalled(t, "GetTokenDescriptor", mock.Anything, mock.Anything)
	})

	t.Run("outputs_without_parent_tx_are_ignored", func(t *testing.T) {
		env := newTestEnv(t)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return([]*types.SpendableOutput{
			{OutPoint: wire.OutPoint{Index: 0}, Value: 1000},
		}, nil)

		report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Outputs)
		assert.Zero(t, report.Classified)
		assert.Empty(t, report.Invalid)
	})
}

func TestReconcileInvalidTransactions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// 9-byte quantity
	bad := newTx(utils.Must(txscript.NewScriptBuilder().
		AddOp(txscript.OP_RETURN).
		AddData(slp.ProtocolTag).
		AddOps([]byte{txscript.OP_DATA_1, 0x01}).
		AddData([]byte("SEND")).
		AddData(testTokenId.Bytes()).
		AddData(make([]byte, 9)).
		Script()), 1)
	// token type 0x02 is not supported
	unknown := newTx(utils.Must(txscript.NewScriptBuilder().
		AddOp(txscript.OP_RETURN).
		AddData(slp.ProtocolTag).
		AddOps([]byte{txscript.OP_DATA_1, 0x02}).
		AddData([]byte("SEND")).
		Script()), 1)
	plain := newTx([]byte{txscript.OP_TRUE}, 1)

	preloadCaches(t, env, []chainhash.Hash{bad.TxHash}, nil, nil)
	outputs := lo.Flatten([][]*types.SpendableOutput{
		spendable(bad, 1),
		spendable(unknown, 1),
		spendable(plain, 1),
	})
	env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(outputs, nil)

	report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
	require.NoError(t, err)
	assert.Zero(t, report.Classified)
	require.Len(t, report.Invalid, 2)

	byHash := lo.SliceToMap(report.Invalid, func(item InvalidTx) (chainhash.Hash, error) {
		return item.TxHash, item.Err
	})
	assert.True(t, errors.Is(byHash[bad.TxHash], slp.ErrMalformedAmount))
	assert.True(t, errors.Is(byHash[unknown.TxHash], slp.ErrUnknownTokenType))
	assert.NotContains(t, byHash, plain.TxHash)
}

func TestReconcileFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("wallet_failure_aborts_pass", func(t *testing.T) {
		env := newTestEnv(t)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(nil, errs.Unavailable)

		report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, errs.Unavailable)
		assert.False(t, env.reconciler.IsRunning(FamilyFungible))
	})

	t.Run("oracle_failure_is_retried_next_pass", func(t *testing.T) {
		env := newTestEnv(t)
		tx := sendTx(t, slp.TokenTypeFungible, testTokenId, 1, 2)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 1, 2), nil)
		env.oracle.EXPECT().IsValidSlpTx(mock.Anything, tx.TxHash).Return(false, errs.Unavailable).Once()
		env.oracle.EXPECT().IsValidSlpTx(mock.Anything, tx.TxHash).Return(true, nil).Once()
		env.cacheDg.EXPECT().SaveVerifiedTxs(mock.Anything, mock.Anything).Return(nil).Once()

		report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		// two outputs of the same transaction, one oracle query
		assert.Equal(t, 1, report.OracleFailures)
		assert.Zero(t, report.NewVerifiedTxs)
		assert.Equal(t, TxStatePendingValidation, env.reconciler.TxState(tx.TxHash))

		report, err = env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.Zero(t, report.OracleFailures)
		assert.Equal(t, 1, report.NewVerifiedTxs)
		assert.Equal(t, TxStatePendingMetadata, env.reconciler.TxState(tx.TxHash))
	})

	t.Run("unconfirmed_transaction_stays_pending", func(t *testing.T) {
		env := newTestEnv(t)
		tx := sendTx(t, slp.TokenTypeFungible, testTokenId, 1)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 1), nil)
		env.oracle.EXPECT().IsValidSlpTx(mock.Anything, tx.TxHash).Return(false, nil).Twice()

		for i := 0; i < 2; i++ {
			report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
			require.NoError(t, err)
			assert.True(t, report.Converged())
		}
		assert.Equal(t, TxStatePendingValidation, env.reconciler.TxState(tx.TxHash))
		assert.Zero(t, env.reconciler.VerifiedTxs())
	})

	t.Run("directory_errors", func(t *testing.T) {
		env := newTestEnv(t)
		other := utils.Must(slp.NewTokenIdFromString("1111111111111111111111111111111111111111111111111111111111111111"))
		unknownTx := sendTx(t, slp.TokenTypeFungible, testTokenId, 1)
		mismatchTx := sendTx(t, slp.TokenTypeFungible, other, 2)
		preloadCaches(t, env, []chainhash.Hash{unknownTx.TxHash, mismatchTx.TxHash}, nil, nil)

		outputs := append(spendable(unknownTx, 1), spendable(mismatchTx, 1)...)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(outputs, nil)
		env.directory.EXPECT().GetTokenDescriptor(mock.Anything, testTokenId).Return(nil, errors.WithStack(errs.NotFound)).Once()
		env.directory.EXPECT().GetTokenDescriptor(mock.Anything, other).
			Return(&entity.TokenDescriptor{TokenId: testTokenId, Ticker: "TST"}, nil).Once()

		report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.Equal(t, 1, report.DirectoryFailures)
		assert.Zero(t, report.NewDescriptors)
		assert.Empty(t, env.reconciler.Tokens())
	})

	t.Run("persist_failure_keeps_in_memory_state", func(t *testing.T) {
		env := newTestEnv(t)
		tx := sendTx(t, slp.TokenTypeFungible, testTokenId, 1)
		env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 1), nil)
		env.oracle.EXPECT().IsValidSlpTx(mock.Anything, tx.TxHash).Return(true, nil).Once()
		env.cacheDg.EXPECT().SaveVerifiedTxs(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		report, err := env.reconciler.Reconcile(ctx, FamilyFungible)
		require.NoError(t, err)
		assert.Equal(t, 1, report.PersistFailures)
		assert.Equal(t, 1, report.NewVerifiedTxs)
		assert.Equal(t, 1, env.reconciler.VerifiedTxs())
	})

	t.Run("unknown_family", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.reconciler.Reconcile(ctx, Family(9))
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

func TestReconcileLatch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tx := sendTx(t, slp.TokenTypeNftChild, testNftId, 1)
	preloadCaches(t, env,
		[]chainhash.Hash{tx.TxHash},
		nil,
		[]*entity.NftDescriptor{{TokenId: testNftId, NftParentId: testNftParentId, Ticker: "ART"}},
	)

	entered := make(chan struct{})
	release := make(chan struct{})
	env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).
		Run(func(context.Context) {
			close(entered)
			<-release
		}).
		Return(spendable(tx, 1), nil).Once()
	env.wallet.EXPECT().GetSpendableOutputs(mock.Anything).Return(spendable(tx, 1), nil)

	var (
		wg      sync.WaitGroup
		blocked *Report
		err     error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		blocked, err = env.reconciler.Reconcile(ctx, FamilyNft)
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("first pass didn't start")
	}
	assert.True(t, env.reconciler.IsRunning(FamilyNft))

	skipped, skippedErr := env.reconciler.Reconcile(ctx, FamilyNft)
	require.NoError(t, skippedErr)
	assert.True(t, skipped.Skipped)
	assert.False(t, skipped.Converged())

	// the other family has its own latch
	fungible, fungibleErr := env.reconciler.Reconcile(ctx, FamilyFungible)
	require.NoError(t, fungibleErr)
	assert.False(t, fungible.Skipped)

	close(release)
	wg.Wait()
	require.NoError(t, err)
	assert.False(t, blocked.Skipped)
	assert.Equal(t, 1, blocked.Classified)
	assert.False(t, env.reconciler.IsRunning(FamilyNft))

	reports, err := env.reconciler.ReconcileUntilConverged(ctx, FamilyNft, 3)
	require.NoError(t, err)
	require.Len(t, reports, 1)
}

func TestLoadCaches(t *testing.T) {
	env := newTestEnv(t)
	txHash := chainhash.DoubleHashH([]byte("tx"))
	env.cacheDg.EXPECT().LoadVerifiedTxs(mock.Anything).Return([]chainhash.Hash{txHash, txHash}, nil).Once()
	env.cacheDg.EXPECT().LoadTokens(mock.Anything).Return(nil, errors.New("corrupted")).Once()
	env.cacheDg.EXPECT().LoadNfts(mock.Anything).Return([]*entity.NftDescriptor{{TokenId: testNftId}}, nil).Once()

	env.reconciler.LoadCaches(context.Background())

	assert.Equal(t, 1, env.reconciler.VerifiedTxs())
	assert.Equal(t, TxStatePendingMetadata, env.reconciler.TxState(txHash))
	assert.Empty(t, env.reconciler.Tokens())
	assert.Len(t, env.reconciler.Nfts(), 1)
}
