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
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// Settlement
	TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transaction_transitions_total",
			Help: "Transaction status transitions",
		},
		[]string{"from", "to", "actor"},
	)
	PayoutCentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payout_cents_total",
			Help: "Minor units credited to professionals on completion",
		},
	)
	PlatformFeeCentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "platform_fee_cents_total",
			Help: "Minor units retained as platform fee",
		},
	)
	PaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Payments by resulting status",
		},
		[]string{"status"}, // COMPLETED|FAILED|REFUNDED
	)
	WithdrawalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "withdrawals_total",
			Help: "Processed withdrawals by resulting status",
		},
		[]string{"status"},
	)
	PromoRedemptionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "promo_redemptions_total",
			Help: "Promo codes applied to transactions",
		},
	)

	TxRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "db_tx_retries_total",
			Help: "Serializable transactions rerun after a serialization failure or deadlock",
		},
	)

	// Outbox
	OutboxDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_deliveries_total",
			Help: "Outbox event handling attempts",
		},
		[]string{"topic", "result"}, // done|retry|dead
	)
	GatewayBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "payment_gateway_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open",
		},
		[]string{"gateway"},
	)
)

// Handler serves /metrics.
var Handler = promhttp.Handler

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			TransitionsTotal,
			PayoutCentsTotal,
			PlatformFeeCentsTotal,
			PaymentsTotal,
			WithdrawalsTotal,
			PromoRedemptionsTotal,
			TxRetriesTotal,
			OutboxDeliveriesTotal,
			GatewayBreakerState,
		)
	})
}
