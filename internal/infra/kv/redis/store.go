package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/BarberBookingService/internal/infra/kv"
)

// Store key-value хранилище поверх Redis
// Значения живут без TTL: это персистентные данные, а не кэш
type Store struct {
	client *redis.Client
}

// NewStore создает Redis-хранилище и проверяет соединение
func NewStore(ctx context.Context, addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis store: failed to ping %s: %w", addr, err)
	}

	return &Store{client: client}, nil
}

// Load загружает значение по ключу
// Возвращает kv.ErrKeyNotFound, если ключ отсутствует
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, kv.ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis store: Load - get %s: %w", key, err)
	}
	return data, nil
}

// Save сохраняет значение по ключу
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis store: Save - set %s: %w", key, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (s *Store) Close() error {
	return s.client.Close()
}
