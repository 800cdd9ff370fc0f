package datasources

import (
	"context"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/core/types"
	"github.com/gaze-network/slp-indexer/pkg/logger"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
	cstream "github.com/planxnx/concurrent-stream"
	"github.com/samber/lo"
)

const (
	// DefaultMinConfirmations includes unconfirmed outputs, SLP validity is decided by the oracle.
	DefaultMinConfirmations = 0
	DefaultMaxConfirmations = 9999999

	// DefaultConcurrency is the number of parent transactions fetched in parallel.
	DefaultConcurrency = 8
)

// NodeClient is the subset of the node RPC the wallet datasource uses. Implemented by *rpcclient.Client.
type NodeClient interface {
	ListUnspentMinMax(minConf, maxConf int) ([]btcjson.ListUnspentResult, error)
	GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
	GetBestBlockHash() (*chainhash.Hash, error)
}

// Make sure to implement the WalletDatasource interface
var _ WalletDatasource = (*WalletNodeDatasource)(nil)

// WalletNodeDatasource reads the spendable outputs of the node's wallet over JSON-RPC.
type WalletNodeDatasource struct {
	client      NodeClient
	minConf     int
	maxConf     int
	concurrency int
}

func NewWalletNode(client NodeClient) *WalletNodeDatasource {
	return &WalletNodeDatasource{
		client:      client,
		minConf:     DefaultMinConfirmations,
		maxConf:     DefaultMaxConfirmations,
		concurrency: DefaultConcurrency,
	}
}

func (d *WalletNodeDatasource) Name() string {
	return "wallet_node"
}

// GetSpendableOutputs lists the wallet's unspent outputs in the order the node returns them. The parent transaction
// of each output is fetched once per call. Outputs whose parent can't be fetched are returned with a nil ParentTx.
func (d *WalletNodeDatasource) GetSpendableOutputs(ctx context.Context) ([]*types.SpendableOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	start := time.Now()

	unspents, err := d.client.ListUnspentMinMax(d.minConf, d.maxConf)
	if err != nil {
		return nil, errors.Wrapf(errs.Unavailable, "can't list unspent outputs: %v", err)
	}

	outputs := make([]*types.SpendableOutput, 0, len(unspents))
	for _, unspent := range unspents {
		output, err := spendableOutputFromResult(unspent)
		if err != nil {
			logger.WarnContext(ctx, "Skipped malformed unspent output", slogx.String("txid", unspent.TxID), slogx.Error(err))
			continue
		}
		outputs = append(outputs, output)
	}

	parentHashes := lo.Uniq(lo.Map(outputs, func(output *types.SpendableOutput, _ int) chainhash.Hash {
		return output.OutPoint.Hash
	}))
	parents, err := d.getTransactions(ctx, parentHashes)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for _, output := range outputs {
		output.ParentTx = parents[output.OutPoint.Hash]
	}

	logger.DebugContext(ctx, "Fetched spendable outputs",
		slog.String("datasource", d.Name()),
		slog.Int("outputs", len(outputs)),
		slog.Int("parent_txs", len(parentHashes)),
		slog.Duration("duration", time.Since(start)),
	)
	return outputs, nil
}

type parentResult struct {
	txHash chainhash.Hash
	tx     *types.Transaction
}

// getTransactions fetches the given transactions with up to d.concurrency requests in flight.
// A transaction that can't be fetched maps to nil.
func (d *WalletNodeDatasource) getTransactions(ctx context.Context, txHashes []chainhash.Hash) (map[chainhash.Hash]*types.Transaction, error) {
	out := make(chan parentResult)
	stream := cstream.NewStream(ctx, d.concurrency, out)

	go func() {
		defer close(out)
		_ = stream.Wait()
	}()

	go func() {
		defer stream.Close()
		for _, txHash := range txHashes {
			txHash := txHash
			if ctx.Err() != nil {
				return
			}
			stream.Go(func() parentResult {
				tx, err := d.getTransaction(txHash)
				if err != nil {
					logger.WarnContext(ctx, "Can't get parent transaction", slogx.Stringer("tx_hash", txHash), slogx.Error(err))
				}
				return parentResult{txHash: txHash, tx: tx}
			})
		}
	}()

	parents := make(map[chainhash.Hash]*types.Transaction, len(txHashes))
	for result := range out {
		parents[result.txHash] = result.tx
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return parents, nil
}

func (d *WalletNodeDatasource) GetBestBlockHash(ctx context.Context) (chainhash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return chainhash.Hash{}, errors.WithStack(err)
	}
	hash, err := d.client.GetBestBlockHash()
	if err != nil {
		return chainhash.Hash{}, errors.Wrapf(errs.Unavailable, "can't get best block hash: %v", err)
	}
	return *hash, nil
}

func (d *WalletNodeDatasource) getTransaction(txHash chainhash.Hash) (*types.Transaction, error) {
	tx, err := d.client.GetRawTransaction(&txHash)
	if err != nil {
		return nil, errors.Wrap(err, "can't get raw transaction")
	}
	// unconfirmed as far as the wallet scan is concerned, the block isn't needed
	return types.ParseMsgTx(tx.MsgTx(), -1, chainhash.Hash{}), nil
}

func spendableOutputFromResult(src btcjson.ListUnspentResult) (*types.SpendableOutput, error) {
	txHash, err := chainhash.NewHashFromStr(src.TxID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid txid")
	}
	value, err := btcutil.NewAmount(src.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount")
	}
	pkScript, err := hex.DecodeString(src.ScriptPubKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid script pubkey")
	}
	return &types.SpendableOutput{
		OutPoint: *wire.NewOutPoint(txHash, src.Vout),
		Value:    int64(value),
		PkScript: pkScript,
	}, nil
}
