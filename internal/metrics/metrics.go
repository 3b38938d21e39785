package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Intake
	WebhooksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhooks_total",
			Help: "Webhook deliveries by intake result",
		},
		[]string{"result"}, // created|duplicate|rejected|error
	)

	// Settlement
	SettlementsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "settlements_total",
			Help: "Transactions flipped to PROCESSED",
		},
	)
	SettlementAnomalies = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_anomalies_total",
			Help: "Settlement updates that modified zero records",
		},
	)
	SettlementsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "settlements_failed_total",
			Help: "Settlement updates that errored",
		},
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// handler for the /metrics endpoint
var Handler = promhttp.Handler

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(WebhooksTotal)
		prometheus.MustRegister(SettlementsTotal)
		prometheus.MustRegister(SettlementAnomalies)
		prometheus.MustRegister(SettlementsFailed)
		prometheus.MustRegister(WorkerQueueDepth)
	})
}
