package services

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("services.repository: service not found")

	// ErrLoadState возвращается при ошибке загрузки каталога из хранилища
	ErrLoadState = errors.New("services.repository: failed to load state")

	// ErrSaveState возвращается при ошибке сохранения каталога в хранилище
	ErrSaveState = errors.New("services.repository: failed to save state")

	// ErrDecodeState возвращается при ошибке декодирования сохраненного каталога
	ErrDecodeState = errors.New("services.repository: failed to decode state")
)
