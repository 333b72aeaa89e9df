package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client    *redis.Client
	config    *Config
	timeout   time.Duration
	mu        sync.Mutex
	lastCheck time.Time
	lastError string
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client.GetClient(),
		config:  client.GetConfig(),
		timeout: 2 * time.Second,
	}
}

// HealthCheck pings Redis and verifies the pool is reachable
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	h.mu.Lock()
	defer h.mu.Unlock()

	pingResult := h.testPing(ctx)
	poolResult := h.testConnectionPool()

	status := StatusDown
	if pingResult && poolResult {
		status = StatusUp
		h.lastError = ""
	}
	h.lastCheck = time.Now()

	return RedisHealthCheck{
		Status: status,
		Details: map[string]string{
			"address":         h.config.Addr(),
			"database":        strconv.Itoa(h.config.Database),
			"ping_successful": strconv.FormatBool(pingResult),
			"pool_healthy":    strconv.FormatBool(poolResult),
			"last_check":      h.lastCheck.Format(time.RFC3339),
			"last_error":      h.lastError,
		},
	}
}

// testPing tests basic connectivity to Redis
func (h *HealthChecker) testPing(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.client.Ping(ctx).Err(); err != nil {
		h.lastError = fmt.Sprintf("ping failed: %v", err)
		return false
	}
	return true
}

// testConnectionPool tests the connection pool health
func (h *HealthChecker) testConnectionPool() bool {
	stats := h.client.PoolStats()
	if stats.TotalConns == 0 && stats.IdleConns == 0 {
		h.lastError = "connection pool is not accessible"
		return false
	}
	return true
}

