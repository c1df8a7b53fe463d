package reservation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient команды Redis, которые использует хранилище
// Реализуется *redis.Client и *redis.ClusterClient
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
}
