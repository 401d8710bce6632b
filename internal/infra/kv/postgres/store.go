package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BarberBookingService/internal/infra/kv"
	"github.com/m04kA/BarberBookingService/pkg/psqlbuilder"
)

// Store key-value хранилище поверх PostgreSQL
// Все коллекции лежат в одной таблице shop_storage(key, value, updated_at);
// value - JSONB с коллекцией целиком, запись заменяет значение через upsert
type Store struct {
	db *sql.DB
}

// NewStore создает PostgreSQL-хранилище и при необходимости таблицу
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	const ddl = `
		CREATE TABLE IF NOT EXISTS shop_storage (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("postgres store: failed to ensure shop_storage table: %w", err)
	}

	return &Store{db: db}, nil
}

// Load загружает значение по ключу
// Возвращает kv.ErrKeyNotFound, если строка отсутствует
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("value").
		From("shop_storage").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres store: Load - build select query: %w", err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres store: Load - scan %s: %w", key, err)
	}

	return value, nil
}

// Save сохраняет значение по ключу (upsert)
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	query, args, err := psqlbuilder.Insert("shop_storage").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("postgres store: Save - build upsert query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("postgres store: Save - execute upsert for %s: %w", key, err)
	}

	return nil
}
