package worlds

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis-backed world repository with default configuration
func NewRedis(client redis.UniversalClient, ttl time.Duration) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:       client,
		TimeProvider: NewRealTimeProvider(),
		TTL:          ttl,
	})
}
