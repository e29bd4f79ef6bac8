package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		},
		[]string{"route", "status"},
	)

	appointmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "appointments_created_total",
			Help:      "Appointments successfully booked.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "booking_conflicts_total",
			Help:      "Bookings rejected due to a time conflict.",
		},
	)
)

// Register registra as métricas no registry default. Idempotente.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, appointmentsCreated, bookingConflicts)
	})
}

func IncHTTP(route, status string) {
	httpRequests.WithLabelValues(route, status).Inc()
}

func IncAppointmentCreated() {
	appointmentsCreated.Inc()
}

func IncBookingConflict() {
	bookingConflicts.Inc()
}
