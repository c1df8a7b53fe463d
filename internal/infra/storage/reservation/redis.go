package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// DefaultKeyPrefix префикс ключей записей в Redis
const DefaultKeyPrefix = "concierge:reservation:"

// RedisStore хранилище записей брони в Redis
// Запись живет ttl и забирается один раз (GETDEL)
type RedisStore struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore создает хранилище; пустой prefix заменяется на DefaultKeyPrefix
func NewRedisStore(client RedisClient, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// Put сохраняет запись сессии; предыдущая незабранная запись заменяется
func (s *RedisStore) Put(ctx context.Context, sessionID string, record *domain.ReservationRecord) error {
	if sessionID == "" {
		return ErrEmptySession
	}

	data, err := encode(record)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Put - set: %v", ErrStore, err)
	}
	return nil
}

// Take забирает запись сессии; повторный вызов возвращает ErrReservationNotFound
func (s *RedisStore) Take(ctx context.Context, sessionID string) (*domain.ReservationRecord, error) {
	if sessionID == "" {
		return nil, ErrEmptySession
	}

	data, err := s.client.GetDel(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: Take - getdel: %v", ErrStore, err)
	}

	return decode(data)
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}
