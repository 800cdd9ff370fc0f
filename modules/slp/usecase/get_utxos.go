package usecase

import (
	"context"

	"github.com/gaze-network/slp-indexer/modules/slp"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
)

// GetUTXOs returns the classified outputs of the family in wallet order.
func (u *Usecase) GetUTXOs(_ context.Context, family slp.Family) []*entity.SlpUTXO {
	return u.reconciler.Snapshot(family).UTXOs
}
