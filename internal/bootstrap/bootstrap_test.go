package bootstrap

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	assetpairInfra "github.com/muhammadchandra19/public-api/internal/infrastructure/postgresql/assetpair"
	assetpairCache "github.com/muhammadchandra19/public-api/internal/infrastructure/redis/assetpair"
	"github.com/muhammadchandra19/public-api/pkg/config"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/muhammadchandra19/public-api/pkg/metrics"
	"github.com/muhammadchandra19/public-api/pkg/postgresql"
	mockPg "github.com/muhammadchandra19/public-api/pkg/postgresql/mock"
	mockQuestDB "github.com/muhammadchandra19/public-api/pkg/questdb/mock"
	redisMock "github.com/muhammadchandra19/public-api/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	questdb  *mockQuestDB.MockQuestDBClient
	postgres *mockPg.MockPostgreSQLClient
	redis    *redisMock.MockClient
}

func testConfig() *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{TTL: time.Minute, SharedCacheTTL: time.Minute},
		Rates:   config.RatesConfig{SupportedGranularities: []string{"Day"}, LookupTimeout: time.Second},
		HTTP: config.HTTPConfig{
			CORSOrigins:      []string{"*"},
			RequestTimeout:   time.Second,
			ReadinessTimeout: time.Second,
		},
	}
}

func TestBootstrap_Init(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		cfgFn    func(cfg *config.Config)
		mockFn   func(d deps)
		assertFn func(t *testing.T, b Bootstrap, err error)
	}{
		{
			name:   "shared cache in front of postgres",
			cfgFn:  func(cfg *config.Config) {},
			mockFn: func(d deps) {},
			assertFn: func(t *testing.T, b Bootstrap, err error) {
				require.NoError(t, err)
				assert.IsType(t, &assetpairCache.CachedSource{}, b.Repository.AssetPairSource)
				assert.NotNil(t, b.Repository.AssetPairPurger)
				assert.Nil(t, b.Consumer.DictionaryConsumer)
			},
		},
		{
			name:   "shared cache disabled",
			cfgFn:  func(cfg *config.Config) { cfg.Catalog.SharedCacheTTL = 0 },
			mockFn: func(d deps) {},
			assertFn: func(t *testing.T, b Bootstrap, err error) {
				require.NoError(t, err)
				assert.IsType(t, &assetpairInfra.Repository{}, b.Repository.AssetPairSource)
				assert.Nil(t, b.Repository.AssetPairPurger)
			},
		},
		{
			name: "dictionary consumer enabled",
			cfgFn: func(cfg *config.Config) {
				cfg.DictionaryKafka = config.DictionaryKafkaConfig{
					Enabled: true, Brokers: []string{"localhost:9092"}, Topic: "asset-pairs-changed", ConsumerGroup: "public-api",
				}
			},
			mockFn: func(d deps) {},
			assertFn: func(t *testing.T, b Bootstrap, err error) {
				require.NoError(t, err)
				assert.NotNil(t, b.Consumer.DictionaryConsumer)
			},
		},
		{
			name:   "invalid granularity",
			cfgFn:  func(cfg *config.Config) { cfg.Rates.SupportedGranularities = []string{"Week"} },
			mockFn: func(d deps) {},
			assertFn: func(t *testing.T, b Bootstrap, err error) {
				assert.ErrorContains(t, err, "unsupported granularity")
			},
		},
		{
			name:  "readiness reports failing dependency",
			cfgFn: func(cfg *config.Config) {},
			mockFn: func(d deps) {
				d.postgres.EXPECT().CheckHealth(gomock.Any()).Return(&postgresql.HealthCheck{Status: "healthy"})
				d.questdb.EXPECT().Ping(gomock.Any()).Return(nil)
				d.redis.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
			},
			assertFn: func(t *testing.T, b Bootstrap, err error) {
				require.NoError(t, err)

				rec := httptest.NewRecorder()
				b.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
				assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
				assert.Contains(t, rec.Body.String(), "connection refused")

				rec = httptest.NewRecorder()
				b.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "metrics endpoint",
			cfgFn:  func(cfg *config.Config) {},
			mockFn: func(d deps) {},
			assertFn: func(t *testing.T, b Bootstrap, err error) {
				require.NoError(t, err)

				rec := httptest.NewRecorder()
				b.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "public_api_")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := deps{
				questdb:  mockQuestDB.NewMockQuestDBClient(ctrl),
				postgres: mockPg.NewMockPostgreSQLClient(ctrl),
				redis:    redisMock.NewMockClient(ctrl),
			}
			tc.mockFn(d)

			cfg := testConfig()
			tc.cfgFn(cfg)

			var b Bootstrap
			res, err := b.Init(BootstrapConfig{
				Config:   cfg,
				QuestDB:  d.questdb,
				Postgres: d.postgres,
				Redis:    d.redis,
				Logger:   logger.NewNop(),
				Metrics:  metrics.New(),
			})
			tc.assertFn(t, res, err)
		})
	}
}
