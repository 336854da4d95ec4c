package bootstrap

import (
	"github.com/muhammadchandra19/public-api/pkg/config"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/muhammadchandra19/public-api/pkg/metrics"
	"github.com/muhammadchandra19/public-api/pkg/postgresql"
	"github.com/muhammadchandra19/public-api/pkg/questdb"
	"github.com/muhammadchandra19/public-api/pkg/redis"
)

// Bootstrap is the bootstrap for the public api.
type Bootstrap struct {
	Usecase    Usecase
	Logger     logger.Interface
	HTTP       HTTP
	Repository Repository
	Consumer   Consumer
	Metrics    *metrics.Metrics

	Config   *config.Config
	QuestDB  questdb.QuestDBClient
	Postgres postgresql.PostgreSQLClient
	Redis    redis.Client
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config   *config.Config
	QuestDB  questdb.QuestDBClient
	Postgres postgresql.PostgreSQLClient
	Redis    redis.Client
	Logger   logger.Interface
	Metrics  *metrics.Metrics
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) (Bootstrap, error) {
	b.Config = config.Config
	b.QuestDB = config.QuestDB
	b.Postgres = config.Postgres
	b.Redis = config.Redis
	b.Logger = config.Logger
	b.Metrics = config.Metrics

	b.registerRepository()
	if err := b.registerUsecase(); err != nil {
		return Bootstrap{}, err
	}
	b.registerHTTP()
	b.registerConsumer()

	return *b, nil
}
