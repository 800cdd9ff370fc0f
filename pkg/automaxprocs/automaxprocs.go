package automaxprocs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/pkg/logger"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

// Init sets GOMAXPROCS to the container CPU quota. A GOMAXPROCS environment variable takes precedence.
func Init() error {
	prev := runtime.GOMAXPROCS(0)
	log := logger.With(
		slogx.String("package", "automaxprocs"),
		slogx.String("event", "set_gomaxprocs"),
		slogx.Int("prev_maxprocs", prev),
	)

	printf := func(format string, v ...any) {
		log.LogAttrs(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...),
			slogx.Int("set_maxprocs", runtime.GOMAXPROCS(0)),
			slogx.Bool("env_override", envOverride()),
		)
	}

	if _, err := maxprocs.Set(maxprocs.Logger(printf), maxprocs.Min(1)); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func envOverride() bool {
	_, ok := os.LookupEnv("GOMAXPROCS")
	return ok
}
