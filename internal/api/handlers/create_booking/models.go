package create_booking

import "time"

// Request тело запроса на создание записи
type Request struct {
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// Response созданная запись с подтверждением для клиента
type Response struct {
	ID                  string    `json:"id"`
	ServiceID           string    `json:"serviceId"`
	ServiceName         string    `json:"serviceName"`
	CustomerName        string    `json:"customerName"`
	CustomerPhone       string    `json:"customerPhone"`
	Date                string    `json:"date"`
	Time                string    `json:"time"`
	Status              string    `json:"status"`
	ConfirmationMessage string    `json:"aiConfirmationMessage"`
	CreatedAt           time.Time `json:"createdAt"`
}
