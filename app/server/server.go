package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/muhammadchandra19/public-api/internal/bootstrap"
	"github.com/muhammadchandra19/public-api/pkg/config"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/muhammadchandra19/public-api/pkg/metrics"
	"github.com/muhammadchandra19/public-api/pkg/postgresql"
	"github.com/muhammadchandra19/public-api/pkg/questdb"
	"github.com/muhammadchandra19/public-api/pkg/redis"
)

// Server is the public api process: storage clients, the HTTP server and
// the dictionary consumer.
type Server struct {
	Logger    logger.Interface
	Bootstrap bootstrap.Bootstrap

	config     config.Config
	httpServer *http.Server
	questdb    questdb.QuestDBClient
	postgres   postgresql.PostgreSQLClient
	redis      redis.Client
}

// InitServer connects the storage clients and wires the application.
func InitServer(ctx context.Context, cfg config.Config) (*Server, error) {
	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ParseLevel(cfg.App.LogLevel)))
	if err != nil {
		return nil, err
	}

	s := &Server{
		Logger: log.With(logger.NewField("app", cfg.App.Name)),
		config: cfg,
	}

	if err := s.initStorage(ctx); err != nil {
		s.closeStorage(ctx)
		return nil, err
	}

	var b bootstrap.Bootstrap
	s.Bootstrap, err = b.Init(bootstrap.BootstrapConfig{
		Config:   &s.config,
		QuestDB:  s.questdb,
		Postgres: s.postgres,
		Redis:    s.redis,
		Logger:   s.Logger,
		Metrics:  metrics.New(),
	})
	if err != nil {
		s.closeStorage(ctx)
		return nil, err
	}

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: s.Bootstrap.HTTP.Handler,
	}

	return s, nil
}

func (s *Server) initStorage(ctx context.Context) error {
	var err error

	s.questdb, err = questdb.NewClient(ctx, s.config.QuestDB)
	if err != nil {
		return err
	}

	s.postgres, err = postgresql.NewClient(ctx, s.config.Postgres)
	if err != nil {
		return err
	}

	// The API keeps serving without Redis: the dictionary falls back to
	// PostgreSQL and current rates fail until Redis is back.
	s.redis = redis.NewClient(s.Logger, &s.config.Redis)
	if err := s.redis.Connect(ctx); err != nil {
		s.Logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "connect_redis"})
		if !s.redis.Reconnect(ctx) {
			s.Logger.WarnContext(ctx, "Starting without Redis")
		}
	}

	return nil
}

// Start starts the consumer and serves HTTP until Stop is called.
func (s *Server) Start(ctx context.Context) error {
	if c := s.Bootstrap.Consumer.DictionaryConsumer; c != nil {
		c.Start(ctx)
	}

	s.Logger.InfoContext(ctx, "Public API started",
		logger.Field{Key: "environment", Value: s.config.App.Environment},
		logger.Field{Key: "http_port", Value: s.config.HTTP.Port},
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests, stops the consumer and closes the storage clients.
func (s *Server) Stop(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)

	if c := s.Bootstrap.Consumer.DictionaryConsumer; c != nil {
		if cerr := c.Stop(ctx); cerr != nil {
			s.Logger.ErrorContext(ctx, cerr, logger.Field{Key: "action", Value: "stop_dictionary_consumer"})
		}
	}

	s.closeStorage(ctx)
	_ = s.Logger.Sync()

	return err
}

func (s *Server) closeStorage(ctx context.Context) {
	if s.questdb != nil {
		s.questdb.Close()
	}
	if s.postgres != nil {
		s.postgres.Close()
	}
	if s.redis != nil {
		if err := s.redis.Disconnect(ctx); err != nil {
			s.Logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "disconnect_redis"})
		}
	}
}
