package watcher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/core"
	"github.com/gaze-network/slp-indexer/pkg/logger"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
)

const (
	// DefaultPollInterval is how often the chain tip is checked
	DefaultPollInterval = 10 * time.Second

	// DefaultRefreshInterval is how often the processor runs when the tip didn't move, to pick up mempool outputs
	DefaultRefreshInterval = time.Minute

	shutdownTimeout = 180 * time.Second
)

// Processor runs one round of work against the current wallet state.
type Processor interface {
	Name() string
	Process(ctx context.Context) error
}

// TipSource reports the chain tip the wallet state is read at.
type TipSource interface {
	Name() string
	GetBestBlockHash(ctx context.Context) (chainhash.Hash, error)
}

type Config struct {
	PollInterval    time.Duration
	RefreshInterval time.Duration
}

var _ core.IndexerWorker = (*Watcher)(nil)

// Watcher runs the processor whenever the chain tip changes, and at least every refresh interval.
// Processing errors are logged and retried on the next round.
type Watcher struct {
	Processor Processor
	TipSource TipSource
	config    Config

	lastTip     chainhash.Hash
	lastProcess time.Time

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

func New(processor Processor, tipSource TipSource, config Config) *Watcher {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = DefaultRefreshInterval
	}
	return &Watcher{
		Processor: processor,
		TipSource: tipSource,
		config:    config,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (w *Watcher) Shutdown() error {
	return w.ShutdownWithContext(context.Background())
}

func (w *Watcher) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return w.ShutdownWithContext(ctx)
}

// ShutdownWithContext stops the watcher and waits for the running round to finish.
func (w *Watcher) ShutdownWithContext(ctx context.Context) (err error) {
	w.quitOnce.Do(func() {
		close(w.quit)
		select {
		case <-w.done:
		case <-time.After(shutdownTimeout):
			err = errors.Wrap(errs.Timeout, "watcher shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "watcher shutdown context canceled")
		}
	})
	return
}

func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.done)

	ctx = logger.WithContext(ctx,
		slog.String("package", "watcher"),
		slog.String("processor", w.Processor.Name()),
		slog.String("datasource", w.TipSource.Name()),
	)

	// first round right away
	w.tick(ctx)

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-w.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping watcher")
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Watcher) tick(ctx context.Context) {
	tip, err := w.TipSource.GetBestBlockHash(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Can't get chain tip, will retry", slogx.Error(err))
		return
	}

	tipChanged := !tip.IsEqual(&w.lastTip)
	if !tipChanged && time.Since(w.lastProcess) < w.config.RefreshInterval {
		logger.DebugContext(ctx, "Chain tip didn't change, waiting for next polling interval")
		return
	}

	start := time.Now()
	ctx = logger.WithContext(ctx, slogx.Stringer("tip", tip), slog.Bool("new_tip", tipChanged))
	if err := w.Processor.Process(ctx); err != nil {
		logger.ErrorContext(ctx, "Watcher failed while processing, will retry", err)
		return
	}
	w.lastTip = tip
	w.lastProcess = time.Now()

	logger.InfoContext(ctx, "Processed wallet state",
		slogx.String("event", "processed"),
		slogx.Duration("duration", time.Since(start)),
	)
}
