package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	storageOpsTotal   *prometheus.CounterVec
	storageOpDuration *prometheus.HistogramVec

	bookingsCreatedTotal prometheus.Counter
	textFallbacksTotal   prometheus.Counter
}

// New создает и регистрирует метрики в дефолтном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		storageOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "storage_operations_total",
			Help:        "Total number of key-value storage operations",
			ConstLabels: constLabels,
		}, []string{"backend", "operation", "result"}),

		storageOpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "storage_operation_duration_seconds",
			Help:        "Key-value storage operation duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"backend", "operation"}),

		bookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}),

		textFallbacksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "text_generation_fallbacks_total",
			Help:        "Total number of times the text generation fallback was used",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStorageOp фиксирует операцию с key-value хранилищем
func (m *Metrics) ObserveStorageOp(backend, operation string, err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storageOpsTotal.WithLabelValues(backend, operation, result).Inc()
	m.storageOpDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
}

// IncBookingCreated увеличивает счетчик созданных записей
func (m *Metrics) IncBookingCreated() {
	m.bookingsCreatedTotal.Inc()
}

// IncTextFallback увеличивает счетчик использований fallback-текста
func (m *Metrics) IncTextFallback() {
	m.textFallbacksTotal.Inc()
}
