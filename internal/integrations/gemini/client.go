package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// FallbackRecorder интерфейс для учета использований fallback-текста
type FallbackRecorder interface {
	IncTextFallback()
}

// Client адаптер генерации текста поверх Gemini
//
// Контракт адаптера: методы ВСЕГДА возвращают пригодную для показа строку
// и никогда не отдают ошибку наружу. Без API-ключа возвращается
// детерминированный шаблонный текст; любая ошибка API превращается в
// canned fallback. Задержка ограничена внутренним таймаутом
type Client struct {
	model    *genai.GenerativeModel // nil, если ключ не сконфигурирован
	timeout  time.Duration
	log      Logger
	recorder FallbackRecorder // Опционально, может быть nil
}

// NewClient создает клиента Gemini
// Пустой apiKey не является ошибкой: клиент работает в режиме шаблонных ответов
func NewClient(ctx context.Context, apiKey, modelName string, timeout time.Duration, log Logger, recorder FallbackRecorder) (*Client, error) {
	c := &Client{
		timeout:  timeout,
		log:      log,
		recorder: recorder,
	}

	if apiKey == "" {
		log.Warn("gemini: API key is not configured, using deterministic fallback texts")
		return c, nil
	}

	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	c.model = genaiClient.GenerativeModel(modelName)

	return c, nil
}

// ConfirmBooking возвращает короткое подтверждение для новой записи
func (c *Client) ConfirmBooking(ctx context.Context, booking *domain.Booking, shopName string) string {
	if c.model == nil {
		return fmt.Sprintf(fallbackConfirmTemplate, booking.ServiceName, booking.Time)
	}

	text, err := c.generate(ctx, confirmPrompt(booking, shopName))
	if err != nil {
		c.log.Error("gemini: ConfirmBooking - generation failed for booking id=%s: %v", booking.ID, err)
		c.fallbackUsed()
		return fallbackConfirmError
	}
	if text == "" {
		c.fallbackUsed()
		return fallbackConfirmEmpty
	}

	return text
}

// SummarizeDay возвращает мотивационную сводку дня для персонала
func (c *Client) SummarizeDay(ctx context.Context, bookings []*domain.Booking, shopName string) string {
	if c.model == nil {
		return fallbackSummaryNoKey
	}

	text, err := c.generate(ctx, summaryPrompt(bookings, shopName))
	if err != nil {
		c.log.Error("gemini: SummarizeDay - generation failed: %v", err)
		c.fallbackUsed()
		return fallbackSummaryError
	}
	if text == "" {
		c.fallbackUsed()
		return fallbackSummaryEmpty
	}

	return text
}

// generate выполняет один запрос к модели с внутренним таймаутом
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

func (c *Client) fallbackUsed() {
	if c.recorder != nil {
		c.recorder.IncTextFallback()
	}
}
