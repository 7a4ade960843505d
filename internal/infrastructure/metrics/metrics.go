package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Interest metrics
	CalculationsTotal   prometheus.Counter
	CalculationDuration prometheus.Histogram
	CalculationErrors   *prometheus.CounterVec
	InterestReceivable  prometheus.Gauge
	OutstandingBalance  prometheus.Gauge
	UnappliedCredits    prometheus.Gauge
	SnapshotRuns        *prometheus.CounterVec

	// Voucher metrics
	VouchersCreated prometheus.Counter
	VouchersUpdated prometheus.Counter
	VouchersDeleted prometheus.Counter

	// Export metrics
	ExportsGenerated *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates and registers all Prometheus metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates all Prometheus metrics and registers them with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Interest metrics
		CalculationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "interestledger_calculations_total",
			Help: "Total number of interest calculations run",
		}),
		CalculationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "interestledger_calculation_duration_seconds",
			Help:    "Duration of interest calculations",
			Buckets: prometheus.DefBuckets,
		}),
		CalculationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interestledger_calculation_errors_total",
				Help: "Total number of failed interest calculations by kind",
			},
			[]string{"kind"},
		),
		InterestReceivable: factory.NewGauge(prometheus.GaugeOpts{
			Name: "interestledger_interest_receivable",
			Help: "Interest receivable as of the last calculation",
		}),
		OutstandingBalance: factory.NewGauge(prometheus.GaugeOpts{
			Name: "interestledger_outstanding_balance",
			Help: "Unpaid invoice principal as of the last calculation",
		}),
		UnappliedCredits: factory.NewGauge(prometheus.GaugeOpts{
			Name: "interestledger_unapplied_credits",
			Help: "Payment amounts not applied to any invoice as of the last calculation",
		}),
		SnapshotRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interestledger_snapshot_runs_total",
				Help: "Total scheduled receivable snapshots by status",
			},
			[]string{"status"},
		),

		// Voucher metrics
		VouchersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "interestledger_vouchers_created_total",
			Help: "Total number of vouchers created",
		}),
		VouchersUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "interestledger_vouchers_updated_total",
			Help: "Total number of vouchers updated",
		}),
		VouchersDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "interestledger_vouchers_deleted_total",
			Help: "Total number of vouchers deleted",
		}),

		// Export metrics
		ExportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interestledger_exports_total",
				Help: "Total statement exports by format",
			},
			[]string{"format"},
		),

		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interestledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "interestledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Redis metrics
		RedisOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interestledger_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interestledger_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "interestledger_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
		),
	}
}
