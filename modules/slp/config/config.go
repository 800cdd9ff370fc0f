package config

import (
	"time"

	"github.com/gaze-network/slp-indexer/internal/postgres"
)

type Config struct {
	Database        string          `mapstructure:"database"`    // Database to persist the verified tx set and descriptor caches e.g. `filestore` | `postgres`
	DataDir         string          `mapstructure:"data_dir"`    // Directory of the filestore cache files.
	FilePrefix      string          `mapstructure:"file_prefix"` // File name prefix of the filestore cache files. Default is `slp`.
	Postgres        postgres.Config `mapstructure:"postgres"`
	SlpdbURL        string          `mapstructure:"slpdb_url"`        // Base URL of the SLPDB instance used as validity oracle and token directory.
	SlpdbTimeout    time.Duration   `mapstructure:"slpdb_timeout"`    // Default is 10s.
	PollInterval    time.Duration   `mapstructure:"poll_interval"`    // How often the node tip is polled. Default is 10s.
	RefreshInterval time.Duration   `mapstructure:"refresh_interval"` // Reconcile at least this often even without a new block. Default is 1m.
	MaxPasses       int             `mapstructure:"max_passes"`       // Passes per family before giving up on convergence. Default is 5.
	APIHandlers     []string        `mapstructure:"api_handlers"`     // API handlers to enable e.g. `http`
}
