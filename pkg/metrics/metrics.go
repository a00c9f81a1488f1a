// Пакет metrics — prometheus-метрики сервиса. Регистрация в default registry через MustRegister.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests by method, route template and status",
		},
		[]string{"method", "route", "status"},
	)
	RequestRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_rejections_total",
			Help: "Number of requests rejected by validation or lookup",
		},
		[]string{"resource", "kind"}, // kind: not_found|invalid_input
	)
	StoreRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_records",
			Help: "Number of records currently held in memory",
		},
		[]string{"resource"},
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister можно звать сколько угодно раз: регистрация произойдёт один раз.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequests, RequestRejections, StoreRecords,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		)
	})
}
