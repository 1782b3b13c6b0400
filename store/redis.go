// Package store is the persistent key-value collaborator the adapter layer
// reads and writes by string key: credentials, device identity and search
// history. Backed by Redis.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"SoundX/config"
)

// Client is the global Redis client. Nil until Connect succeeds; every
// accessor tolerates the unconnected state so the shell keeps working
// (without persistence) when Redis is down.
var Client *redis.Client

// Connect initializes the Redis connection.
func Connect(cfg *config.Config) error {
	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := c.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	Client = c
	return nil
}

// Close closes the Redis connection.
func Close() error {
	if Client != nil {
		return Client.Close()
	}
	return nil
}

// Configured reports whether a store connection is available.
func Configured() bool { return Client != nil }

// Ping verifies the connection is still alive.
func Ping(ctx context.Context) error {
	if Client == nil {
		return fmt.Errorf("store not connected")
	}
	return Client.Ping(ctx).Err()
}
