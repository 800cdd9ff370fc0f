package slp

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/pkg/logger"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
	"golang.org/x/sync/errgroup"
)

// Processor reconciles every family until it converges whenever the watcher triggers it.
type Processor struct {
	reconciler *Reconciler
	maxPasses  int
}

func NewProcessor(reconciler *Reconciler, maxPasses int) *Processor {
	return &Processor{
		reconciler: reconciler,
		maxPasses:  maxPasses,
	}
}

func (p *Processor) Name() string {
	return "slp"
}

func (p *Processor) Process(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)
	for _, family := range Families {
		family := family
		group.Go(func() error {
			reports, err := p.reconciler.ReconcileUntilConverged(ctx, family, p.maxPasses)
			if err != nil {
				return errors.Wrapf(err, "failed to reconcile %s family", family)
			}
			if len(reports) > 0 {
				last := reports[len(reports)-1]
				logger.DebugContext(ctx, "Reconciled family",
					slogx.Stringer("family", family),
					slogx.Int("passes", len(reports)),
					slogx.Bool("converged", last.Converged()),
					slogx.Int("utxos", last.Classified),
				)
			}
			return nil
		})
	}
	return errors.WithStack(group.Wait())
}
