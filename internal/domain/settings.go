package domain

import "time"

// ShopSettings singleton-настройки барбершопа
// Влияют на отображаемое название и промпты генерации текста
type ShopSettings struct {
	Name    string
	Tagline string

	UpdatedAt time.Time
}
