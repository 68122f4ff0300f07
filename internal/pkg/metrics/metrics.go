package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rental outcome counters, labelled by operation and result so dashboards
// can separate business rejections from storage failures.
var (
	RentalOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rental_operations_total",
			Help: "Rental engine operations by operation and result.",
		},
		[]string{"operation", "result"},
	)

	RentalConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rental_booking_conflicts_total",
			Help: "Create attempts rejected because the car was already booked.",
		},
	)
)

func ObserveOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	RentalOperations.WithLabelValues(operation, result).Inc()
}
