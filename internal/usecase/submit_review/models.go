package submit_review

// Request модель запроса на отправку отзыва
type Request struct {
	ServiceID    string // ID существующей услуги (обязательно)
	CustomerName string // Имя клиента (обязательно)
	Rating       int    // Оценка 1..5; 0 трактуется как оценка по умолчанию (5)
	Comment      string // Комментарий (опционально)
}

// Response модель ответа с созданной записью-отзывом
type Response struct {
	BookingID   string // ID синтезированной записи, несущей отзыв
	ServiceName string // Название услуги на момент отзыва
	Rating      int    // Итоговая оценка
	Date        string // Дата отзыва
}
