package healthcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

// HealthCheck is the health check handler.
// GET /health always answers ok while the process runs; GET /ready runs every
// registered checker and answers 503 when one fails.
type HealthCheck struct {
	checks  map[string]Checker
	timeout time.Duration
}

// New creates a HealthCheck whose readiness checks are bounded by timeout.
func New(timeout time.Duration) *HealthCheck {
	return &HealthCheck{
		checks:  make(map[string]Checker),
		timeout: timeout,
	}
}

// Register adds a readiness checker under name.
func (hc *HealthCheck) Register(name string, check Checker) *HealthCheck {
	hc.checks[name] = check
	return hc
}

// Handler is used to control the flow of GET /health and GET /ready endpoints
func (hc *HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case IsHealthCheckRequest(r):
			hc.ServeHTTP(w, r)
		case IsReadinessRequest(r):
			hc.serveReady(w, r)
		default:
			h.ServeHTTP(w, r)
		}
	}

	return http.HandlerFunc(fn)
}

// ServeHTTP serve http request for health check
func (hc *HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

type readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (hc *HealthCheck) serveReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if hc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, hc.timeout)
		defer cancel()
	}

	names := make([]string, 0, len(hc.checks))
	for name := range hc.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = readiness{Status: "ok", Checks: make(map[string]string, len(names))}
	)

	for _, name := range names {
		wg.Add(1)
		go func(name string, check Checker) {
			defer wg.Done()

			status := "ok"
			if err := check(ctx); err != nil {
				status = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()
			result.Checks[name] = status
			if status != "ok" {
				result.Status = "unavailable"
			}
		}(name, hc.checks[name])
	}
	wg.Wait()

	code := http.StatusOK
	if result.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, result)
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// IsHealthCheckRequest is used to check if the request is a health check request
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/health"
}

// IsReadinessRequest is used to check if the request is a readiness request
func IsReadinessRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/ready"
}
