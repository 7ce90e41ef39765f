package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client   *redis.Client
	initOnce sync.Once
	initErr  error
)

// Config holds the Redis connection settings. The URL accepts redis:// or
// rediss:// (TLS, which Upstash uses); the password may live in the URL or
// be supplied separately.
type Config struct {
	URL      string
	Password string
}

// Client returns the shared Redis client, or nil when Redis is not
// configured or the connection failed. Callers treat nil as "fall back":
// the rate limiter switches to its in-memory store, the health check
// reports the component unavailable.
func Client() *redis.Client {
	return client
}

// Initialize connects the shared client. Called once at startup; later
// calls return the first result.
func Initialize(cfg Config) error {
	initOnce.Do(func() {
		if cfg.URL == "" {
			initErr = errors.New("redis: UPSTASH_REDIS_URL not configured")
			return
		}

		parsed, err := url.Parse(cfg.URL)
		if err != nil {
			initErr = fmt.Errorf("redis: invalid URL: %w", err)
			return
		}

		useTLS := parsed.Scheme == "rediss"
		addr := parsed.Host
		if parsed.Port() == "" {
			addr = parsed.Host + ":6379"
		}

		password := cfg.Password
		if password == "" && parsed.User != nil {
			password, _ = parsed.User.Password()
		}

		opts := &redis.Options{
			Addr:         addr,
			Password:     password,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
			MinIdleConns: 2,
		}
		if useTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}

		c := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Ping(ctx).Err(); err != nil {
			initErr = fmt.Errorf("redis: connection failed: %w", err)
			_ = c.Close()
			return
		}

		client = c
	})

	return initErr
}

// Close releases the shared client's connections.
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}

// HealthCheck pings the shared client.
func HealthCheck(ctx context.Context) error {
	if client == nil {
		return errors.New("redis: client not initialized")
	}
	return client.Ping(ctx).Err()
}
