package utils

import (
	"context"
	"log"
	"time"

	"tripdesk/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient builds the Redis client used for search-result caching and
// verifies connectivity. The caller owns the client's lifecycle.
func NewCacheClient() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
	return client
}
