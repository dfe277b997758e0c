package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HttpRequestsTotal - Счетчик HTTP-запросов
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Количество HTTP запросов",
		},
		[]string{"handler", "status"}, // Метки: хэндлер и http-статус
	)

	// HttpRequestDuration - Гистограмма длительности HTTP-запросов
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Длительность HTTP запросов",
		},
		[]string{"handler"},
	)

	// CacheHits - Счетчик попаданий в кэш публичного трекинга
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Количество попаданий в кэш",
		},
	)

	// CacheMisses - Счетчик промахов кэша
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Количество промахов кэша",
		},
	)

	// CacheSize - Датчик (Gauge) текущего размера LRU-кэша
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size_items",
			Help: "Текущий размер кэша в элементах",
		},
	)

	// CacheEvictions - Счетчик вытеснений из кэша (LRU)
	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Количество вытесненных из кэша элементов",
		},
	)

	// KafkaMessagesProcessed - Счетчик обработанных заявок из Kafka
	KafkaMessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Количество обработанных сообщений Kafka",
		},
		[]string{"status"}, // Метки: "success", "dlq_validation", "dlq_db_error", "dlq_failed_write"
	)

	// TrackingEventsPublished - Счетчик публикаций событий трекинга
	TrackingEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_events_published_total",
			Help: "Количество опубликованных событий трекинга",
		},
		[]string{"status"}, // Метки: "success", "error"
	)

	// DBErrors - Счетчик ошибок базы данных
	DBErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Количество ошибок при работе с БД",
		},
		[]string{"operation"},
	)

	// OrdersCreated - Счетчик созданных заказов по источнику
	OrdersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Количество созданных заказов",
		},
		[]string{"source"}, // Метки: "api", "kafka", "seed"
	)

	// RateQuotes - Счетчик расчетов тарифа по уровню сервиса
	RateQuotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_quotes_total",
			Help: "Количество расчетов тарифа",
		},
		[]string{"service_type"},
	)
)

// Init используется для регистрации метрик.
// promauto регистрирует их автоматически при создании.
func Init() {
	log.Println("Prometheus метрики инициализированы.")
}
