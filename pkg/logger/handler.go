package logger

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors/errbase"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
)

const (
	ErrorVerboseKey    = "error_verbose"
	ErrorStackTraceKey = "error_stacktrace"
)

type (
	handleFunc   func(context.Context, slog.Record) error
	middleware   func(handleFunc) handleFunc
	attrReplacer func([]string, slog.Attr) slog.Attr
)

// middlewareHandler runs records through middlewares before the wrapped handler.
type middlewareHandler struct {
	next        slog.Handler
	middlewares []middleware
}

func (h *middlewareHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *middlewareHandler) Handle(ctx context.Context, rec slog.Record) error {
	handle := h.next.Handle
	for i := len(h.middlewares) - 1; i >= 0; i-- {
		handle = h.middlewares[i](handle)
	}
	return handle(ctx, rec)
}

func (h *middlewareHandler) WithGroup(group string) slog.Handler {
	return &middlewareHandler{next: h.next.WithGroup(group), middlewares: h.middlewares}
}

func (h *middlewareHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &middlewareHandler{next: h.next.WithAttrs(attrs), middlewares: h.middlewares}
}

// errorDetails adds the verbose form and stack trace of the first error attribute.
func errorDetails(next handleFunc) handleFunc {
	return func(ctx context.Context, rec slog.Record) error {
		rec.Attrs(func(attr slog.Attr) bool {
			if attr.Key != slogx.ErrorKey {
				return true
			}
			if err, ok := attr.Value.Any().(error); ok && err != nil {
				rec.AddAttrs(slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", err)))
				if st, ok := err.(errbase.StackTraceProvider); ok {
					rec.AddAttrs(slog.Any(ErrorStackTraceKey, traceLines(st.StackTrace())))
				}
			}
			return false
		})
		return next(ctx, rec)
	}
}

// traceLines formats frames outermost first, dropping the runtime frames at the bottom.
func traceLines(frames errbase.StackTrace) []string {
	lines := make([]string, 0, len(frames))
	skipping := true
	for i := len(frames) - 1; i >= 0; i-- {
		pc := uintptr(frames[i]) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			lines = append(lines, "unknown")
			skipping = false
			continue
		}
		if skipping && strings.HasPrefix(fn.Name(), "runtime.") {
			continue
		}
		skipping = false
		file, line := fn.FileLine(pc)
		lines = append(lines, fmt.Sprintf("%s %s:%d", fn.Name(), file, line))
	}
	return lines
}

func chainReplacers(replacers ...attrReplacer) attrReplacer {
	return func(groups []string, attr slog.Attr) slog.Attr {
		for _, replace := range replacers {
			attr = replace(groups, attr)
		}
		return attr
	}
}

func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) != 0 || attr.Key != slog.LevelKey {
		return attr
	}
	level, ok := attr.Value.Any().(slog.Level)
	if !ok || level < LevelCritical {
		return attr
	}
	name, base := "FATAL", LevelFatal
	switch {
	case level < LevelPanic:
		name, base = "CRITICAL", LevelCritical
	case level < LevelFatal:
		name, base = "PANIC", LevelPanic
	}
	if level != base {
		name = fmt.Sprintf("%s%+d", name, level-base)
	}
	return slog.String(attr.Key, name)
}

// errorAttrReplacer writes errors as their message, the json handler would otherwise write "{}".
func errorAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == slogx.ErrorKey {
		if err, ok := attr.Value.Any().(error); ok && err != nil {
			return slog.String(attr.Key, err.Error())
		}
	}
	return attr
}

func durationAttrReplacer(_ []string, attr slog.Attr) slog.Attr {
	if attr.Value.Kind() == slog.KindDuration {
		return slog.Int64(attr.Key, attr.Value.Duration().Milliseconds())
	}
	return attr
}
