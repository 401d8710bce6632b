package kv

import (
	"context"
	"errors"
)

// Ключи верхнеуровневых коллекций
// Каждая коллекция сериализуется в JSON и хранится целиком под своим ключом
const (
	KeySettings = "barber:settings"
	KeyServices = "barber:services"
	KeyBookings = "barber:bookings"
)

// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище
// Отсутствие ключа означает "использовать стартовые данные", это не ошибка
var ErrKeyNotFound = errors.New("kv: key not found")

// Store интерфейс key-value хранилища
// Значение - непрозрачный JSON blob; запись заменяет значение целиком
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
