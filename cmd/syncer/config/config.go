package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`

	HTTP     HTTP
	Sync     Sync
	Redis    Redis
	RabbitMQ RabbitMQ
}

// HTTP holds admin API server configuration.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Sync holds feed syncing configuration.
type Sync struct {
	BatchSize         int           `env:"BATCH_SIZE" envDefault:"500"`
	FetchTimeout      time.Duration `env:"FETCH_TIMEOUT" envDefault:"60s"`
	BatchFetchTimeout time.Duration `env:"BATCH_FETCH_TIMEOUT" envDefault:"300s"`
	Concurrency       int           `env:"SYNC_CONCURRENCY" envDefault:"4"`
	FetchRate         float64       `env:"FETCH_RATE" envDefault:"5"`
	StaleRunAfter     time.Duration `env:"STALE_RUN_AFTER" envDefault:"1h"`
	PreviewTTL        time.Duration `env:"PREVIEW_TTL" envDefault:"30m"`
}

// Redis holds Redis configuration.
type Redis struct {
	Addr         string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password     string        `env:"REDIS_PASSWORD"`
	DB           int           `env:"REDIS_DB" envDefault:"0"`
	SelectionTTL time.Duration `env:"SELECTION_TTL" envDefault:"0"`
}

// RabbitMQ holds RabbitMQ configuration. Quick sync commands are disabled when URL is empty.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"feed-sync-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"supplier-feed-sync.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"quick-sync"`
	Prefetch   int    `env:"RABBITMQ_PREFETCH" envDefault:"1"`
}

// Load reads configuration from environment. Variables from provided dotenv files
// are loaded first without overriding the environment; missing files are skipped.
func Load(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("can't load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("can't parse env variables: %w", err)
	}

	return cfg, nil
}
