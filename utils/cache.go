package utils

import (
	"context"
	"log"
	"time"

	"clinicore/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for revoked-token caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for the revoked-token cache.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for the revoked-token cache.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

const revokedTokenPrefix = "revokedToken:"

// RevokeToken marks a token hash as revoked until its natural expiry.
func RevokeToken(client *redis.Client, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	return client.Set(ctx, revokedTokenPrefix+tokenHash, "1", ttl).Err()
}

// IsTokenRevoked checks whether a token hash has been revoked.
func IsTokenRevoked(client *redis.Client, tokenHash string) (bool, error) {
	ctx := context.Background()
	n, err := client.Exists(ctx, revokedTokenPrefix+tokenHash).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
