package bootstrap

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/public-api/internal/api"
	"github.com/muhammadchandra19/public-api/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/public-api/pkg/httplib/middleware"
)

// HTTP is the HTTP surface of the public api.
type HTTP struct {
	AssetPairHandler *api.AssetPairHandler
	HealthCheck      *healthcheck.HealthCheck

	// Handler is the root handler, /health and /ready included.
	Handler http.Handler
}

// registerHTTP registers the HTTP handlers.
func (b *Bootstrap) registerHTTP() {
	b.HTTP.AssetPairHandler = api.NewAssetPairHandler(b.Usecase.AssetPairUsecase, b.Usecase.RateUsecase, b.Logger)

	b.HTTP.HealthCheck = healthcheck.New(b.Config.HTTP.ReadinessTimeout).
		Register("postgres", b.checkPostgres).
		Register("questdb", b.QuestDB.Ping).
		Register("redis", b.Redis.Ping)

	router := gin.New()
	router.Use(
		middleware.Recovery(b.Logger),
		middleware.RequestID(),
		middleware.Logging(b.Logger),
		middleware.Metrics(b.Metrics),
		middleware.CORS(b.Config.HTTP.CORSOrigins),
		middleware.Timeout(b.Config.HTTP.RequestTimeout),
	)
	router.GET("/metrics", gin.WrapH(b.Metrics.Handler()))
	b.HTTP.AssetPairHandler.RegisterRoutes(router)

	b.HTTP.Handler = b.HTTP.HealthCheck.Handler(router)
}

func (b *Bootstrap) checkPostgres(ctx context.Context) error {
	health := b.Postgres.CheckHealth(ctx)
	if !health.Healthy() {
		return errors.New(health.Error)
	}
	return nil
}
