package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Conversion metrics
	Conversions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "konvert_conversions_total",
			Help: "Total number of completed conversions",
		},
		[]string{"mode", "status"}, // status: success|error
	)

	// Deposit calculator metrics
	DepositCalculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "konvert_deposit_calculations_total",
			Help: "Total number of deposit calculations",
		},
		[]string{"plan", "currency"},
	)

	// Quote provider metrics
	QuoteFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "konvert_quote_fetches_total",
			Help: "Total number of quote provider requests",
		},
		[]string{"status"}, // status: success|error
	)

	QuoteFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "konvert_quote_fetch_duration_seconds",
			Help:    "Quote provider request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)

	// Dialogue metrics
	MessagesHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "konvert_messages_handled_total",
			Help: "Total number of handled chat messages",
		},
		[]string{"state"},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "konvert_active_sessions",
			Help: "Current number of live dialogue sessions",
		},
	)
)

// Init registers all metrics with Prometheus
func Init() {
	prometheus.MustRegister(Conversions)
	prometheus.MustRegister(DepositCalculations)
	prometheus.MustRegister(QuoteFetches)
	prometheus.MustRegister(QuoteFetchDuration)
	prometheus.MustRegister(MessagesHandled)
	prometheus.MustRegister(ActiveSessions)
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordConversion records a completed conversion attempt
func RecordConversion(mode string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	Conversions.WithLabelValues(mode, status).Inc()
}

// RecordQuoteFetch records a quote provider round trip
func RecordQuoteFetch(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	QuoteFetches.WithLabelValues(status).Inc()
	QuoteFetchDuration.Observe(duration.Seconds())
}
