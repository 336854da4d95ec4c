package postgresql

import (
	"context"
	"fmt"
	"time"
)

// HealthCheck represents database health information
type HealthCheck struct {
	Status       string        `json:"status"`
	ResponseTime time.Duration `json:"response_time"`
	ActiveConns  int32         `json:"active_connections"`
	IdleConns    int32         `json:"idle_connections"`
	MaxConns     int32         `json:"max_connections"`
	DatabaseName string        `json:"database_name"`
	Error        string        `json:"error,omitempty"`
}

// Healthy reports whether the last check succeeded.
func (h *HealthCheck) Healthy() bool {
	return h != nil && h.Status == "healthy"
}

// CheckHealth pings the pool and runs a trivial query, reporting pool stats.
func (c *Client) CheckHealth(ctx context.Context) *HealthCheck {
	start := time.Now()

	stats := c.pool.Stat()
	health := &HealthCheck{
		DatabaseName: c.config.Database,
		ActiveConns:  stats.AcquiredConns(),
		IdleConns:    stats.IdleConns(),
		MaxConns:     stats.MaxConns(),
	}

	if err := c.Ping(ctx); err != nil {
		health.Status = "unhealthy"
		health.Error = fmt.Sprintf("ping failed: %v", err)
		health.ResponseTime = time.Since(start)
		return health
	}

	var one int
	if err := c.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		health.Status = "unhealthy"
		health.Error = fmt.Sprintf("probe query failed: %v", err)
		health.ResponseTime = time.Since(start)
		return health
	}

	health.Status = "healthy"
	health.ResponseTime = time.Since(start)

	return health
}
