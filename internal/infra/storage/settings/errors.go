package settings

import "errors"

var (
	// ErrLoadState возвращается при ошибке загрузки настроек из хранилища
	ErrLoadState = errors.New("settings.repository: failed to load state")

	// ErrSaveState возвращается при ошибке сохранения настроек в хранилище
	ErrSaveState = errors.New("settings.repository: failed to save state")

	// ErrDecodeState возвращается при ошибке декодирования сохраненных настроек
	ErrDecodeState = errors.New("settings.repository: failed to decode state")
)
