package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() {
		_ = Init(Config{})
	})
	assert.NoError(t, Init(Config{Output: "json", Debug: true}))
	assert.Equal(t, slog.LevelDebug, lvl.Level())
	assert.NoError(t, Init(Config{Output: "TEXT"}))
	assert.Equal(t, slog.LevelInfo, lvl.Level())
	assert.Error(t, Init(Config{Output: "gelf"}))
}

func TestAttrReplacers(t *testing.T) {
	t.Run("error_is_rendered_as_message", func(t *testing.T) {
		attr := errorAttrReplacer(nil, slog.Any(slogx.ErrorKey, errors.New("boom")))
		assert.Equal(t, "boom", attr.Value.String())
	})
	t.Run("nested_error_is_untouched", func(t *testing.T) {
		err := errors.New("boom")
		attr := errorAttrReplacer([]string{"group"}, slog.Any(slogx.ErrorKey, err))
		assert.Equal(t, err, attr.Value.Any())
	})
	t.Run("duration_in_milliseconds", func(t *testing.T) {
		attr := durationAttrReplacer(nil, slog.Duration("took", 1500*time.Millisecond))
		assert.Equal(t, int64(1500), attr.Value.Int64())
	})
	t.Run("custom_levels", func(t *testing.T) {
		attr := levelAttrReplacer(nil, slog.Any(slog.LevelKey, LevelCritical))
		assert.Equal(t, "CRITICAL", attr.Value.String())
		attr = levelAttrReplacer(nil, slog.Any(slog.LevelKey, LevelPanic+1))
		assert.Equal(t, "PANIC+1", attr.Value.String())
		attr = levelAttrReplacer(nil, slog.Any(slog.LevelKey, slog.LevelWarn))
		assert.Equal(t, slog.LevelWarn, attr.Value.Any())
	})
}

func TestContext(t *testing.T) {
	assert.Same(t, logger, FromContext(context.Background()))
	ctx := WithContext(context.Background(), "family", "tokens")
	assert.NotSame(t, logger, FromContext(ctx))
	assert.NotPanics(t, func() { InfoContext(ctx, "hello") })
	assert.Panics(t, func() { PanicContext(ctx, "boom") })
}
