package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of login attempts.",
		},
		[]string{"result"},
	)

	SessionValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_session_validations_total",
			Help: "Total number of session validations.",
		},
		[]string{"result"},
	)

	WorkoutAppendsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workout_appends_total",
			Help: "Total number of gym session appends.",
		},
		[]string{"result"},
	)
)

// MustRegister stamps every metric with the service label and registers it.
// Called once at startup; the vecs themselves are usable either way, which
// keeps tests free of registry state.
func MustRegister(serviceName string) {
	prometheus.WrapRegistererWith(
		prometheus.Labels{"service": serviceName},
		prometheus.DefaultRegisterer,
	).MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		LoginsTotal,
		SessionValidationsTotal,
		WorkoutAppendsTotal,
	)
}
