package update_settings

// Request тело запроса на обновление настроек
type Request struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
}
