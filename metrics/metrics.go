package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	confirmationRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "booking_webapp",
			Name:      "confirmation_rendered_total",
			Help:      "Count of confirmation dialogs rendered by outcome.",
		},
		[]string{"outcome"},
	)

	degradedField = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "booking_webapp",
			Name:      "confirmation_degraded_field_total",
			Help:      "Count of confirmation fields rendered from missing or malformed query parameters.",
		},
		[]string{"field", "reason"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(confirmationRendered, degradedField)
	})
}

func IncConfirmationRendered(outcome string) {
	confirmationRendered.WithLabelValues(outcome).Inc()
}

func IncDegradedField(field, reason string) {
	degradedField.WithLabelValues(field, reason).Inc()
}
