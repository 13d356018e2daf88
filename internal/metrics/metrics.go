package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salon/backend/internal/domain"
)

// Booking results recorded on salon_booking_attempts_total.
const (
	ResultBooked          = "booked"
	ResultSlotUnavailable = "slot_unavailable"
	ResultRejected        = "rejected"
	ResultError           = "error"
)

type Collector struct {
	BookingAttempts *prometheus.CounterVec
	StatusChanges   *prometheus.CounterVec
	RPCDuration     *prometheus.HistogramVec
	CacheLookups    *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	f := promauto.With(reg)
	return &Collector{
		BookingAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "attempts_total",
			Help:      "Appointment booking attempts by result.",
		}, []string{"result"}),

		StatusChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "status_changes_total",
			Help:      "Appointment status transitions by previous and new status.",
		}, []string{"from", "to"}),

		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "request_duration_seconds",
			Help:      "gRPC request latency by method and status code.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "code"}),

		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Service cache lookups by outcome.",
		}, []string{"outcome"}),
	}
}

func (c *Collector) BookingAttempt(result string) {
	c.BookingAttempts.WithLabelValues(result).Inc()
}

func (c *Collector) StatusChanged(from, to domain.AppointmentStatus) {
	c.StatusChanges.WithLabelValues(string(from), string(to)).Inc()
}

func (c *Collector) ObserveRPC(method, code string, elapsed time.Duration) {
	c.RPCDuration.WithLabelValues(method, code).Observe(elapsed.Seconds())
}

func (c *Collector) CacheLookup(outcome string) {
	c.CacheLookups.WithLabelValues(outcome).Inc()
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
