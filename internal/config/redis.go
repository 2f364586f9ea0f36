package config

// Redis backs the token-bucket rate limiter on the auth endpoints and the
// color-history read cache.  Both features are optional: when no Redis
// server is reachable at startup the constructor returns nil and callers
// run with the feature disabled.

import (
    "context"
    "os"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from environment variables:
//   REDIS_ADDR – host:port (default "localhost:6379")
//   REDIS_HOST / REDIS_PORT – alternative to REDIS_ADDR, takes precedence
//   REDIS_PASSWORD – optional password
//   REDIS_DB – database number (default 0)
// Returns nil when the server does not answer a ping within two seconds.
func NewRedisClient() *redis.Client {
    addr := getenv("REDIS_ADDR", "localhost:6379")
    if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
        addr = host + ":" + port
    }
    client := redis.NewClient(&redis.Options{
        Addr:     addr,
        Password: os.Getenv("REDIS_PASSWORD"),
        DB:       envInt("REDIS_DB", 0),
    })
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
