package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Export ExportConfig
	Redis  RedisConfig
}

// ExportConfig points at the two JSON documents published by the export
// pipeline. MetadataURL may be left empty when the pipeline publishes no
// companion metadata document.
type ExportConfig struct {
	PayloadURL  string        `env:"EXPORT_PAYLOAD_URL,  default=http://localhost:8000/returns_intransit.json"`
	MetadataURL string        `env:"EXPORT_METADATA_URL"`
	Timeout     time.Duration `env:"EXPORT_FETCH_TIMEOUT, default=30s"`

	// RefreshMinInterval is the minimum time between manual refreshes,
	// enforced via Redis. Ignored when no Redis address is configured.
	RefreshMinInterval time.Duration `env:"EXPORT_REFRESH_MIN_INTERVAL, default=15s"`
}

// RedisConfig is optional: an empty Addr disables the refresh throttle.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
