package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// maxAppendRetries число попыток при конкурентной записи в тот же ключ
const maxAppendRetries = 5

// RedisStore хранит все бронирования JSON массивом под одним ключом
type RedisStore struct {
	client RedisClient
	key    string
}

// NewRedisStore создает хранилище; пустой key заменяется на domain.BookingsStorageKey
func NewRedisStore(client RedisClient, key string) *RedisStore {
	if key == "" {
		key = domain.BookingsStorageKey
	}
	return &RedisStore{client: client, key: key}
}

// Append читает массив, дописывает бронирование и сохраняет его в транзакции WATCH/MULTI
func (s *RedisStore) Append(ctx context.Context, booking *domain.Booking) error {
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, s.key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		bookings := append(decodeBookings(raw), booking)
		data, err := encodeBookings(bookings)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxAppendRetries; i++ {
		err := s.client.Watch(ctx, txf, s.key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return fmt.Errorf("%w: Append - booking %s: %v", ErrSave, booking.ID, err)
	}

	return fmt.Errorf("%w: Append - booking %s: too many concurrent writers", ErrSave, booking.ID)
}

func (s *RedisStore) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.find(ctx, domain.BookingsFilter{})
}

func (s *RedisStore) ListByCenter(ctx context.Context, centerID string) ([]*domain.Booking, error) {
	return s.find(ctx, domain.BookingsFilter{CenterID: &centerID})
}

func (s *RedisStore) ListByService(ctx context.Context, serviceID string) ([]*domain.Booking, error) {
	return s.find(ctx, domain.BookingsFilter{ServiceID: &serviceID})
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%w: Clear: %v", ErrSave, err)
	}
	return nil
}

// find поврежденное содержимое ключа трактуется как пустой список; ошибка только при сбое Redis
func (s *RedisStore) find(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return make([]*domain.Booking, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrLoad, s.key, err)
	}

	return filterBookings(decodeBookings(raw), filter), nil
}
