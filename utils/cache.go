// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"roomfinder/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the availability cache client. It stays nil when caching is disabled.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the cache client, or nil when CACHE_ENABLED is off.
func GetCacheClient() *redis.Client {
	if !config.AppConfig.CacheEnabled {
		return nil
	}
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// CacheTTL is the lifetime of cached availability results.
func CacheTTL() time.Duration {
	if config.AppConfig.CacheTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second
}
