package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/modules/slp"
	"golang.org/x/sync/errgroup"
)

// ReconcileResult is the outcome of running a family until it converged.
type ReconcileResult struct {
	Family  slp.Family
	Reports []*slp.Report
}

// Reconcile runs every given family until it converges, families in parallel.
func (u *Usecase) Reconcile(ctx context.Context, families []slp.Family) ([]*ReconcileResult, error) {
	results := make([]*ReconcileResult, len(families))
	group, ctx := errgroup.WithContext(ctx)
	for i, family := range families {
		i, family := i, family
		group.Go(func() error {
			reports, err := u.reconciler.ReconcileUntilConverged(ctx, family, u.maxPasses)
			if err != nil {
				return errors.Wrapf(err, "can't reconcile %s family", family)
			}
			results[i] = &ReconcileResult{Family: family, Reports: reports}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}
	return results, nil
}
