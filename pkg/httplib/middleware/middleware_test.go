package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	mockLogger "github.com/muhammadchandra19/public-api/pkg/logger/mock"
	"github.com/muhammadchandra19/public-api/pkg/metrics"
	"github.com/muhammadchandra19/public-api/pkg/util"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		assertFn func(t *testing.T, rec *httptest.ResponseRecorder, seen string)
	}{
		{
			name:   "reuses incoming id",
			header: "req-123",
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, seen string) {
				assert.Equal(t, "req-123", seen)
				assert.Equal(t, "req-123", rec.Header().Get(util.RequestIDHeader))
			},
		},
		{
			name: "generates id",
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, seen string) {
				assert.NotEmpty(t, seen)
				assert.Equal(t, seen, rec.Header().Get(util.RequestIDHeader))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			router := gin.New()
			router.Use(RequestID())
			router.GET("/", func(c *gin.Context) {
				seen = util.GetRequestID(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(util.RequestIDHeader, tc.header)
			}
			tc.assertFn(t, serve(router, req), seen)
		})
	}
}

func TestRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mockLogger.NewMockInterface(ctrl)
	log.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), logger.Field{Key: "path", Value: "/boom"})

	router := gin.New()
	router.Use(Recovery(log))
	router.GET("/boom", func(c *gin.Context) {
		panic("unexpected")
	})

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"general_internal_server_error","msg":"Internal server error"}`, rec.Body.String())
}

func TestLogging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mockLogger.NewMockInterface(ctrl)
	log.EXPECT().InfoContext(gomock.Any(), "HTTP request completed", gomock.Any()).Times(1)
	log.EXPECT().WarnContext(gomock.Any(), "HTTP request failed", gomock.Any()).Times(1)

	router := gin.New()
	router.Use(Logging(log))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(router, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/fail", nil))
}

func TestCORS(t *testing.T) {
	testCases := []struct {
		name     string
		origins  []string
		method   string
		origin   string
		assertFn func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:    "wildcard",
			origins: []string{"*"},
			method:  http.MethodGet,
			origin:  "https://example.com",
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "listed origin echoed",
			origins: []string{"https://a.example.com"},
			method:  http.MethodGet,
			origin:  "https://a.example.com",
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "https://a.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "unlisted origin gets no headers",
			origins: []string{"https://a.example.com"},
			method:  http.MethodGet,
			origin:  "https://b.example.com",
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "preflight",
			origins: []string{"*"},
			method:  http.MethodOptions,
			origin:  "https://example.com",
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tc.origins))
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tc.method, "/", nil)
			req.Header.Set("Origin", tc.origin)
			tc.assertFn(t, serve(router, req))
		})
	}
}

func TestTimeout(t *testing.T) {
	var deadline time.Time
	var ok bool

	router := gin.New()
	router.Use(Timeout(time.Second))
	router.GET("/", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}

func TestMetrics(t *testing.T) {
	m := metrics.New()

	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/api/AssetPairs/rate/:assetPairId", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/AssetPairs/rate/BTCUSD", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, body.Code)

	exposed := httptest.NewRecorder()
	m.Handler().ServeHTTP(exposed, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, exposed.Body.String(), `route="/api/AssetPairs/rate/:assetPairId"`)
}
