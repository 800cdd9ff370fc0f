package datasources

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gaze-network/slp-indexer/core/types"
)

// WalletDatasource is a source of the wallet's spendable outputs and of the chain tip they were read at.
type WalletDatasource interface {
	Name() string
	GetSpendableOutputs(ctx context.Context) ([]*types.SpendableOutput, error)
	GetBestBlockHash(ctx context.Context) (chainhash.Hash, error)
}
