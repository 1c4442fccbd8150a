package controller

import (
	"fmt"
	"net/http"
	"popdash/pkg/metrics"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording the duration of every request
// in the popdash.http.server.duration histogram. Requests are labeled with
// the ServeMux pattern that matched them. The middleware must wrap the mux
// directly since the mux sets the pattern on the request it receives.
func WithMetrics(meter metric.Meter) (func(http.Handler) http.Handler, error) {
	duration, err := meter.Float64Histogram("popdash.http.server.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of HTTP requests."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "other"
			}
			duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
				attribute.String("http.route", route),
				attribute.String("http.request.method", r.Method),
				attribute.String("http.response.status_code", strconv.Itoa(rec.status)),
			))
		})
	}, nil
}
