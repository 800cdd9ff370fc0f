package watcher

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	calls atomic.Int32
	err   error
}

func (p *fakeProcessor) Name() string { return "fake" }

func (p *fakeProcessor) Process(context.Context) error {
	p.calls.Add(1)
	return p.err
}

type fakeTipSource struct {
	tip chainhash.Hash
	err error
}

func (s *fakeTipSource) Name() string { return "fake" }

func (s *fakeTipSource) GetBestBlockHash(context.Context) (chainhash.Hash, error) {
	return s.tip, s.err
}

func TestWatcherTick(t *testing.T) {
	ctx := context.Background()

	t.Run("processes_on_new_tip_only", func(t *testing.T) {
		processor := &fakeProcessor{}
		tips := &fakeTipSource{tip: chainhash.DoubleHashH([]byte("1"))}
		w := New(processor, tips, Config{RefreshInterval: time.Hour})

		w.tick(ctx)
		assert.EqualValues(t, 1, processor.calls.Load())

		w.tick(ctx)
		assert.EqualValues(t, 1, processor.calls.Load())

		tips.tip = chainhash.DoubleHashH([]byte("2"))
		w.tick(ctx)
		assert.EqualValues(t, 2, processor.calls.Load())
	})

	t.Run("refreshes_without_new_tip", func(t *testing.T) {
		processor := &fakeProcessor{}
		tips := &fakeTipSource{tip: chainhash.DoubleHashH([]byte("1"))}
		w := New(processor, tips, Config{RefreshInterval: time.Hour})

		w.tick(ctx)
		w.lastProcess = time.Now().Add(-2 * time.Hour)
		w.tick(ctx)
		assert.EqualValues(t, 2, processor.calls.Load())
	})

	t.Run("failed_round_is_retried", func(t *testing.T) {
		processor := &fakeProcessor{err: errors.New("node unavailable")}
		tips := &fakeTipSource{tip: chainhash.DoubleHashH([]byte("1"))}
		w := New(processor, tips, Config{RefreshInterval: time.Hour})

		w.tick(ctx)
		w.tick(ctx)
		assert.EqualValues(t, 2, processor.calls.Load())

		processor.err = nil
		w.tick(ctx)
		w.tick(ctx)
		assert.EqualValues(t, 3, processor.calls.Load())
	})

	t.Run("tip_error_skips_round", func(t *testing.T) {
		processor := &fakeProcessor{}
		w := New(processor, &fakeTipSource{err: errors.New("timeout")}, Config{})

		w.tick(ctx)
		assert.Zero(t, processor.calls.Load())
	})
}

func TestWatcherRunAndShutdown(t *testing.T) {
	processor := &fakeProcessor{}
	w := New(processor, &fakeTipSource{tip: chainhash.DoubleHashH([]byte("1"))}, Config{PollInterval: time.Millisecond})

	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Run(context.Background())
	}()

	assert.Eventually(t, func() bool { return processor.calls.Load() >= 1 }, 5*time.Second, time.Millisecond)
	require.NoError(t, w.ShutdownWithTimeout(5*time.Second))
	require.NoError(t, <-errCh)

	// shutdown is idempotent
	require.NoError(t, w.Shutdown())
}
