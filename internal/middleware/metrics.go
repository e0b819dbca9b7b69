package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paws_http_requests_total",
			Help: "Total de requests HTTP a la API",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "paws_http_request_duration_seconds",
			Help:    "Duración de los requests HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Metrics cuenta requests y mide duración por endpoint.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			path := normalizePath(r.URL.Path)

			wrapped := newResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(wrapped.statusCode)

			httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
		})
	}
}

// normalizePath colapsa el id numérico a {id} para que la
// cardinalidad de los labels no crezca con cada perro.
func normalizePath(path string) string {
	const prefix = "/dogs/"
	if rest, ok := strings.CutPrefix(path, prefix); ok && rest != "" {
		if _, err := strconv.ParseInt(rest, 10, 64); err == nil {
			return prefix + "{id}"
		}
	}
	return path
}
