package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/m04kA/BarberBookingService/internal/infra/kv"
)

// Store файловое key-value хранилище
// Каждый ключ хранится отдельным JSON-файлом в каталоге данных
// Это локальный аналог browser localStorage из исходной системы
type Store struct {
	dir string
}

// NewStore создает файловое хранилище в указанном каталоге
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: failed to create data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Load загружает значение по ключу
// Возвращает kv.ErrKeyNotFound, если файл отсутствует
func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, kv.ErrKeyNotFound
		}
		return nil, fmt.Errorf("file store: Load - read %s: %w", key, err)
	}
	return data, nil
}

// Save сохраняет значение по ключу
// Запись атомарная: сначала во временный файл, затем rename
func (s *Store) Save(_ context.Context, key string, value []byte) error {
	target := s.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("file store: Save - write temp for %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("file store: Save - rename for %s: %w", key, err)
	}
	return nil
}

// path возвращает путь файла для ключа
// Двоеточия в ключах заменяются, чтобы имена файлов были переносимыми
func (s *Store) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(s.dir, name)
}
