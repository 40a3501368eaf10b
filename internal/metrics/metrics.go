// Package metrics holds the Prometheus collectors for the meeting service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// meetingMutationsTotal counts store mutations.
	// Labels:
	//   - op: "create", "update" or "delete"
	//   - result: "ok", "not_found", "invalid" or "error"
	meetingMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_mutations_total",
			Help: "Total number of meeting create/update/delete operations",
		},
		[]string{"op", "result"},
	)

	// loginAttemptsTotal counts login attempts by result ("ok", "rejected", "limited").
	loginAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)

	validationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_validation_failures_total",
			Help: "Total number of draft validation failures per field",
		},
		[]string{"field"},
	)

	meetingsStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "meetings_stored",
			Help: "Number of meetings currently in the collection",
		},
	)

	// httpRequestDuration records REST request latency.
	// Buckets: 5ms up to 2.5s
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meeting_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route", "code"},
	)
)

func init() {
	prometheus.MustRegister(meetingMutationsTotal)
	prometheus.MustRegister(loginAttemptsTotal)
	prometheus.MustRegister(validationFailuresTotal)
	prometheus.MustRegister(meetingsStored)
	prometheus.MustRegister(httpRequestDuration)
}

func RecordMutation(op, result string) {
	meetingMutationsTotal.WithLabelValues(op, result).Inc()
}

func RecordLogin(result string) {
	loginAttemptsTotal.WithLabelValues(result).Inc()
}

// RecordValidationFailures increments the counter once per failing field.
func RecordValidationFailures[F ~string](fields map[F]string) {
	for f := range fields {
		validationFailuresTotal.WithLabelValues(string(f)).Inc()
	}
}

func SetMeetingCount(n int) {
	meetingsStored.Set(float64(n))
}

func ObserveHTTPRequest(method, route, code string, seconds float64) {
	httpRequestDuration.WithLabelValues(method, route, code).Observe(seconds)
}
