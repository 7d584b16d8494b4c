package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mesaya",
			Name:      "reservation_created_total",
			Help:      "Count of reservations created.",
		},
	)

	reservationTransition = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mesaya",
			Name:      "reservation_transition_total",
			Help:      "Count of reservation status transitions by target status.",
		},
		[]string{"status"},
	)

	restaurantCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mesaya",
			Name:      "restaurant_created_total",
			Help:      "Count of restaurants created.",
		},
	)

	wsClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mesaya",
			Name:      "websocket_clients",
			Help:      "Number of connected websocket clients.",
		},
	)
)

// Register registers metrics with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationCreated, reservationTransition, restaurantCreated, wsClients)
	})
}

func IncReservationCreated() {
	reservationCreated.Inc()
}

func IncReservationTransition(status string) {
	reservationTransition.WithLabelValues(status).Inc()
}

func IncRestaurantCreated() {
	restaurantCreated.Inc()
}

func WSClientConnected() {
	wsClients.Inc()
}

func WSClientDisconnected() {
	wsClients.Dec()
}
