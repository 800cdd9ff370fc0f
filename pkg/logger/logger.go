// nolint: sloglint
package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Levels above slog.LevelError.
const (
	LevelCritical = slog.Level(12)
	LevelPanic    = slog.Level(14)
	LevelFatal    = slog.Level(16)
)

var (
	lvl = new(slog.LevelVar)

	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: levelAttrReplacer,
	}))
)

func init() {
	lvl.Set(slog.LevelDebug)
	slog.SetDefault(logger)
}

// Config is the logger configuration.
type Config struct {
	// Output is the log format, "text" (default) or "json".
	// The json output writes durations as milliseconds.
	Output string `mapstructure:"output"`

	// Debug enables debug level, source locations and error stack traces.
	Debug bool `mapstructure:"debug"`
}

// Init replaces the global logger and the slog default logger.
func Init(cfg Config) error {
	replacers := []attrReplacer{levelAttrReplacer, errorAttrReplacer}
	options := &slog.HandlerOptions{Level: lvl}

	var middlewares []middleware
	lvl.Set(slog.LevelInfo)
	if cfg.Debug {
		lvl.Set(slog.LevelDebug)
		options.AddSource = true
		middlewares = append(middlewares, errorDetails)
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Output) {
	case "json":
		options.ReplaceAttr = chainReplacers(append(replacers, durationAttrReplacer)...)
		handler = slog.NewJSONHandler(os.Stdout, options)
	case "", "text":
		options.ReplaceAttr = chainReplacers(replacers...)
		handler = slog.NewTextHandler(os.Stdout, options)
	default:
		return errors.Errorf("unsupported logger output %q", cfg.Output)
	}

	logger = slog.New(&middlewareHandler{next: handler, middlewares: middlewares})
	slog.SetDefault(logger)
	return nil
}

// With returns a logger that includes the given attributes in each record.
func With(args ...any) *slog.Logger {
	return logger.With(args...)
}

func Debug(msg string, args ...any) {
	log(context.Background(), logger, slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...any) {
	log(context.Background(), logger, slog.LevelInfo, msg, args...)
}

func Error(msg string, args ...any) {
	log(context.Background(), logger, slog.LevelError, msg, args...)
}

// Panic logs at LevelPanic and then panics.
func Panic(msg string, args ...any) {
	log(context.Background(), logger, LevelPanic, msg, args...)
	panic(msg)
}

// LogAttrs logs the attributes with the logger found in ctx.
func LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	l := FromContext(ctx)
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}
	_ = l.Handler().Handle(ctx, newRecord(3, level, msg, func(r *slog.Record) { r.AddAttrs(attrs...) }))
}

// log must be called directly by an exported function, the caller depth is fixed.
func log(ctx context.Context, l *slog.Logger, level slog.Level, msg string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}
	_ = l.Handler().Handle(ctx, newRecord(4, level, msg, func(r *slog.Record) { r.Add(args...) }))
}

// newRecord reports the source at skip frames above runtime.Callers.
func newRecord(skip int, level slog.Level, msg string, add func(*slog.Record)) slog.Record {
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	add(&r)
	return r
}
