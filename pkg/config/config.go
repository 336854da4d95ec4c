package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/public-api/pkg/granularity"
	"github.com/muhammadchandra19/public-api/pkg/postgresql"
	"github.com/muhammadchandra19/public-api/pkg/questdb"
	"github.com/muhammadchandra19/public-api/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App             AppConfig             `envPrefix:"APP_"`
	QuestDB         questdb.Config        `envPrefix:"QUESTDB_"`
	Postgres        postgresql.Config     `envPrefix:"POSTGRES_"`
	Redis           redis.Config          `envPrefix:"REDIS_"`
	Catalog         CatalogConfig         `envPrefix:"CATALOG_"`
	Rates           RatesConfig           `envPrefix:"RATES_"`
	DictionaryKafka DictionaryKafkaConfig `envPrefix:"DICTIONARY_KAFKA_"`
	HTTP            HTTPConfig            `envPrefix:"HTTP_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"public-api"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// CatalogConfig controls the asset pair dictionary snapshot.
type CatalogConfig struct {
	TTL            time.Duration `env:"TTL" envDefault:"5m"`
	RetryBackoff   time.Duration `env:"RETRY_BACKOFF" envDefault:"5s"`
	LoadTimeout    time.Duration `env:"LOAD_TIMEOUT" envDefault:"10s"`
	SharedCacheTTL time.Duration `env:"SHARED_CACHE_TTL" envDefault:"1m"`
}

// RatesConfig controls rate resolution.
type RatesConfig struct {
	SupportedGranularities []string      `env:"SUPPORTED_GRANULARITIES" envSeparator:"," envDefault:"Day"`
	MaxBatchSize           int           `env:"MAX_BATCH_SIZE" envDefault:"0"`
	MaxConcurrency         int           `env:"MAX_CONCURRENCY" envDefault:"16"`
	LookupTimeout          time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"5s"`
}

// DictionaryKafkaConfig represents the Kafka configuration of dictionary change events.
type DictionaryKafkaConfig struct {
	Enabled       bool     `env:"ENABLED" envDefault:"false"`
	Brokers       []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string   `env:"TOPIC" envDefault:"asset-pairs-changed"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"public-api"`
}

// HTTPConfig represents the HTTP server configuration.
type HTTPConfig struct {
	Port             int           `env:"PORT" envDefault:"8080"`
	CORSOrigins      []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"2s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Granularities parses SupportedGranularities.
func (c RatesConfig) Granularities() (granularity.Set, error) {
	list, err := granularity.ParseList(c.SupportedGranularities)
	if err != nil {
		return nil, err
	}
	return granularity.NewSet(list...), nil
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := cfg.Rates.Granularities(); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if msg := cfg.Redis.Validate(); msg != "" {
		return nil, fmt.Errorf("failed to parse config: %s", msg)
	}

	return cfg, nil
}
