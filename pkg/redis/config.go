package redis

import (
	"fmt"
	"time"
)

// Config holds the connection, pool and per-cache TTL settings of a Client
type Config struct {
	Host     string
	Port     int
	Password string
	Database int

	MinIdleConns int
	MaxIdleConns int
	MaxActive    int
	MaxRetries   int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration

	// CacheTTLs maps a cache name to its TTL; DefaultCacheTTL covers named caches missing here.
	CacheTTLs       map[string]time.Duration
	DefaultCacheTTL time.Duration
}

// NewRedisConfig returns a configuration for a local server with small pool defaults
func NewRedisConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            6379,
		MinIdleConns:    2,
		MaxIdleConns:    10,
		MaxActive:       50,
		MaxRetries:      2,
		DialTimeout:     2 * time.Second,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		PoolTimeout:     2 * time.Second,
		CacheTTLs:       make(map[string]time.Duration),
		DefaultCacheTTL: time.Hour,
	}
}

func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

// WithPort panics outside 1-65535; ports come from trusted configuration.
func (c *Config) WithPort(port int) *Config {
	if !validPort(port) {
		panic(fmt.Sprintf("invalid port: %d", port))
	}
	c.Port = port
	return c
}

func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

func (c *Config) WithDatabase(database int) *Config {
	if !validDatabase(database) {
		panic(fmt.Sprintf("invalid database: %d", database))
	}
	c.Database = database
	return c
}

// WithCacheTTL sets the TTL used by caches created with the given name
func (c *Config) WithCacheTTL(cacheName string, ttl time.Duration) *Config {
	if ttl < 0 {
		panic(fmt.Sprintf("invalid cache TTL: %v", ttl))
	}
	if c.CacheTTLs == nil {
		c.CacheTTLs = make(map[string]time.Duration)
	}
	c.CacheTTLs[cacheName] = ttl
	return c
}

// Addr returns host:port
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if !validPort(c.Port) {
		return fmt.Errorf("invalid port: %d, must be between 1 and 65535", c.Port)
	}
	if !validDatabase(c.Database) {
		return fmt.Errorf("invalid database: %d, must be between 0 and 15", c.Database)
	}

	counts := []struct {
		name  string
		value int
	}{
		{"min idle connections", c.MinIdleConns},
		{"max idle connections", c.MaxIdleConns},
		{"max active connections", c.MaxActive},
		{"max retries", c.MaxRetries},
	}
	for _, n := range counts {
		if n.value < 0 {
			return fmt.Errorf("invalid %s: %d, must be non-negative", n.name, n.value)
		}
	}

	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"dial timeout", c.DialTimeout},
		{"read timeout", c.ReadTimeout},
		{"write timeout", c.WriteTimeout},
		{"pool timeout", c.PoolTimeout},
	}
	for _, d := range timeouts {
		if d.value < 0 {
			return fmt.Errorf("invalid %s: %v, must be non-negative", d.name, d.value)
		}
	}
	return nil
}

func validPort(port int) bool {
	return port >= 1 && port <= 65535
}

func validDatabase(database int) bool {
	return database >= 0 && database <= 15
}
