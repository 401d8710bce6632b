package kvmetrics

import (
	"context"
	"errors"
	"time"
)

// Store интерфейс key-value хранилища, совместимый с internal/infra/kv.Store
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Recorder интерфейс для записи метрик операций с хранилищем
type Recorder interface {
	ObserveStorageOp(backend, operation string, err error, duration time.Duration)
}

// WrappedStore обертка над Store, фиксирующая метрики каждой операции
// Отсутствие ключа не считается ошибкой в метриках
type WrappedStore struct {
	inner    Store
	backend  string
	recorder Recorder
	notFound error
}

// Wrap оборачивает хранилище сбором метрик
// notFound - sentinel-ошибка отсутствия ключа, не учитывается как ошибка операции
func Wrap(inner Store, backend string, recorder Recorder, notFound error) *WrappedStore {
	return &WrappedStore{
		inner:    inner,
		backend:  backend,
		recorder: recorder,
		notFound: notFound,
	}
}

// Load загружает значение по ключу, фиксируя длительность операции
func (s *WrappedStore) Load(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := s.inner.Load(ctx, key)

	observed := err
	if observed != nil && s.notFound != nil && errors.Is(observed, s.notFound) {
		observed = nil
	}
	s.recorder.ObserveStorageOp(s.backend, "load", observed, time.Since(start))

	return value, err
}

// Save сохраняет значение по ключу, фиксируя длительность операции
func (s *WrappedStore) Save(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.inner.Save(ctx, key, value)
	s.recorder.ObserveStorageOp(s.backend, "save", err, time.Since(start))
	return err
}
