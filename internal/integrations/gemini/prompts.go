package gemini

import (
	"fmt"
	"strings"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// Fallback-тексты
// Детерминированные строки, подставляемые когда генерация недоступна или упала
const (
	fallbackConfirmTemplate = "Запись подтверждена: %s в %s."
	fallbackConfirmEmpty    = "Всё готово! Ждем вас в кресле."
	fallbackConfirmError    = "Запись подтверждена! Будем рады вас видеть."

	fallbackSummaryNoKey = "Ваше расписание ниже."
	fallbackSummaryEmpty = "Похоже, день будет насыщенный. За работу!"
	fallbackSummaryError = "Вот ваше расписание на сегодня."
)

// confirmPrompt собирает промпт подтверждения записи
func confirmPrompt(booking *domain.Booking, shopName string) string {
	return fmt.Sprintf(`Ты современный и стильный AI-ассистент барбершопа "%s".
Клиент по имени %s только что записался на "%s" на %s в %s.

Напиши короткое и энергичное подтверждение (максимум 2 предложения) на русском языке.
Используй эмодзи. Будь стильным.`,
		shopName, booking.CustomerName, booking.ServiceName, booking.Date, booking.Time)
}

// summaryPrompt собирает промпт сводки дня по сегодняшним записям
func summaryPrompt(bookings []*domain.Booking, shopName string) string {
	lines := make([]string, 0, len(bookings))
	for _, b := range bookings {
		lines = append(lines, fmt.Sprintf("%s: %s, клиент %s", b.Time, b.ServiceName, b.CustomerName))
	}

	return fmt.Sprintf(`Ты ассистент барбера в "%s". Вот расписание на сегодня:
%s

Дай мотивационную сводку в 1 предложение, чтобы барбер хорошо начал день, на русском языке.`,
		shopName, strings.Join(lines, "\n"))
}
