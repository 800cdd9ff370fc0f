package config

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common"
	slpconfig "github.com/gaze-network/slp-indexer/modules/slp/config"
	"github.com/gaze-network/slp-indexer/pkg/logger"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
	"github.com/gaze-network/slp-indexer/pkg/middleware/requestlogger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	isInit bool
	mu     sync.Mutex
	config = defaultConfig()
)

type Config struct {
	Logger     logger.Config  `mapstructure:"logger"`
	Node       NodeClient     `mapstructure:"bch_node"`
	Network    common.Network `mapstructure:"network"`
	HTTPServer HTTPServer     `mapstructure:"http_server"`
	Modules    Modules        `mapstructure:"modules"`
	APIOnly    bool           `mapstructure:"api_only"`
}

type NodeClient struct {
	Host       string `mapstructure:"host"`
	User       string `mapstructure:"user"`
	Pass       string `mapstructure:"pass"`
	DisableTLS bool   `mapstructure:"disable_tls"`
}

type HTTPServer struct {
	Port   int                  `mapstructure:"port"`
	Logger requestlogger.Config `mapstructure:"logger"`
}

type Modules struct {
	SLP slpconfig.Config `mapstructure:"slp"`
}

func defaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network: common.NetworkMainnet,
		Node: NodeClient{
			User: "user",
			Pass: "pass",
		},
		HTTPServer: HTTPServer{
			Port: 8080,
		},
		Modules: Modules{
			SLP: slpconfig.Config{
				Database:        "filestore",
				DataDir:         "./data",
				SlpdbTimeout:    10 * time.Second,
				PollInterval:    10 * time.Second,
				RefreshInterval: time.Minute,
				MaxPasses:       5,
				APIHandlers:     []string{"http"},
			},
		},
	}
}

// Parse parses the configuration from environment variables and the config file.
func Parse(configFile ...string) Config {
	mu.Lock()
	defer mu.Unlock()
	return parse(configFile...)
}

// Load returns the loaded configuration
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	if isInit {
		return *config
	}
	return parse()
}

// BindPFlag binds a specific key to a pflag (as used by cobra).
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slogx.String("package", "config"), slogx.Error(err))
	}
}

// SetDefault sets the default value for this key.
// Default only used when no value is provided by the user via flag, config or ENV.
func SetDefault(key string, value any) {
	viper.SetDefault(key, value)
}

func parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slogx.String("package", "config"))

	if len(configFile) > 0 && configFile[0] != "" {
		viper.SetConfigFile(configFile[0])
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if errors.As(err, &errNotfound) {
			logger.WarnContext(ctx, "Config file not found, use default config value", slogx.Error(err))
		} else {
			logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		logger.PanicContext(ctx, "Something went wrong, failed to unmarshal config", slogx.Error(err))
	}

	isInit = true
	return *config
}
