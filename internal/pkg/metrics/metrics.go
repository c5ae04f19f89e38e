package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so several app instances (e2e tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal         *prometheus.CounterVec
	ReservationsTotal     *prometheus.CounterVec
	ReservationTxDuration prometheus.Histogram
	IdempotentReplays     prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "highway_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "code"},
		),
		ReservationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "highway_reservations_total",
				Help: "Reservation attempts by outcome",
			},
			[]string{"outcome"},
		),
		ReservationTxDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "highway_reservation_tx_seconds",
				Help:    "Duration of the reservation transaction including retries",
				Buckets: prometheus.DefBuckets,
			},
		),
		IdempotentReplays: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "highway_idempotent_replays_total",
				Help: "Booking responses served from the idempotency cache",
			},
		),
	}
}

func (m *Metrics) ObserveReservation(outcome string, elapsed time.Duration) {
	m.ReservationsTotal.WithLabelValues(outcome).Inc()
	m.ReservationTxDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
