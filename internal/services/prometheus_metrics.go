package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded *prometheus.CounterVec
	accountsCreated      *prometheus.CounterVec
	dashboardRequests    prometheus.Counter
	dashboardDuration    prometheus.Histogram
	creditAlertsEmitted  *prometheus.CounterVec
	netWorthGauge        prometheus.Gauge
	requestErrors        *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		accountsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_created_total",
				Help: "Total number of accounts created",
			},
			[]string{"account_type"},
		),
		dashboardRequests: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_requests_total",
				Help: "Total number of dashboard summary requests",
			},
		),
		dashboardDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_build_duration_milliseconds",
				Help:    "Dashboard summary build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		creditAlertsEmitted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credit_alerts_emitted_total",
				Help: "Total number of credit alerts returned to clients",
			},
			[]string{"alert_type"},
		),
		netWorthGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "last_computed_net_worth",
				Help: "Net worth of the most recently computed dashboard",
			},
		),
		requestErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "request_errors_total",
				Help: "Total number of request errors by error code",
			},
			[]string{"code"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction_recorded":
		if txType := tags["type"]; txType != "" {
			m.transactionsRecorded.WithLabelValues(txType).Inc()
		}
	case "account_created":
		if accountType := tags["account_type"]; accountType != "" {
			m.accountsCreated.WithLabelValues(accountType).Inc()
		}
	case "dashboard_request":
		m.dashboardRequests.Inc()
	case "credit_alert_emitted":
		if alertType := tags["alert_type"]; alertType != "" {
			m.creditAlertsEmitted.WithLabelValues(alertType).Inc()
		}
	case "request_error":
		if code := tags["code"]; code != "" {
			m.requestErrors.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_build":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "net_worth":
		m.netWorthGauge.Set(value)
	}
}
