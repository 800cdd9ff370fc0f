package usecase

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gaze-network/slp-indexer/modules/slp"
)

func (u *Usecase) GetTxState(_ context.Context, txHash chainhash.Hash) slp.TxState {
	return u.reconciler.TxState(txHash)
}
