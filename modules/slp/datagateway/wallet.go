package datagateway

import (
	"context"

	"github.com/gaze-network/slp-indexer/core/types"
)

type WalletDataGateway interface {
	// GetSpendableOutputs returns the wallet's unspent outputs in wallet enumeration order.
	// Outputs whose parent transaction can't be fetched are returned with a nil ParentTx.
	GetSpendableOutputs(ctx context.Context) ([]*types.SpendableOutput, error)
}
