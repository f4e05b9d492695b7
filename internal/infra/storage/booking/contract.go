package booking

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// RedisClient подмножество redis.UniversalClient, которое нужно хранилищу
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error
}
