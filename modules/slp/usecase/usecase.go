package usecase

import (
	"github.com/gaze-network/slp-indexer/modules/slp"
)

type Usecase struct {
	reconciler *slp.Reconciler
	maxPasses  int
}

func New(reconciler *slp.Reconciler, maxPasses int) *Usecase {
	return &Usecase{
		reconciler: reconciler,
		maxPasses:  maxPasses,
	}
}
