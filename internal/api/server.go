// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware of the population dashboard.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"popdash/internal/api/handler/v1handler"
	"popdash/internal/api/specs/v1specs"
	"popdash/internal/config"
	"popdash/pkg/controller"
	"popdash/pkg/logger"
	"time"

	"github.com/go-faster/jx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// SecHandlerOptions configures bearer token verification of the v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is applied to every request via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions maps the HTTP section of the application config to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators of the server.
type Deps struct {
	v1handler.Deps

	// MeterProvider records HTTP metrics. A nil MeterProvider records nothing.
	MeterProvider metric.MeterProvider
	// Database is checked by /readyz when set.
	Database Pinger
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.Obj(func(e *jx.Encoder) {
		e.Field("status", func(e *jx.Encoder) { e.Str(status) })
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(e.Bytes())
}

func readyz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				logger.Warn(r.Context(), "readiness check failed", zap.Error(err))
				writeStatus(w, http.StatusServiceUnavailable, "unavailable")

				return
			}
		}
		writeStatus(w, http.StatusOK, "ok")
	}
}

// NewServer wires up and returns a configured *http.Server. It serves:
//   - the dashboard page and the v1 API
//   - Prometheus metrics on MetricsPath
//   - the embedded OpenAPI spec and Swagger UI
//   - pprof endpoints
//   - /healthz and /readyz
//
// Requests go through the access log, CORS and metrics middlewares and are
// bounded by RequestTimeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	if opts.MetricsPath != "" {
		mux.Handle("GET "+opts.MetricsPath, promhttp.Handler())
	}

	// liveness and readiness
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusOK, "ok")
	})
	mux.Handle("GET /readyz", readyz(deps.Database))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Population Dashboard",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	mp := deps.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}

	// dashboard and v1 api
	h := v1handler.New(deps.Deps)
	mux.HandleFunc("GET /{$}", h.Dashboard)

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create security handler: %w", err)
	}
	v1Srv, err := v1specs.NewServer(h,
		secHandler,
		v1specs.WithMeterProvider(mp),
		v1specs.WithPathPrefix("/v1"),
		v1specs.WithErrorHandler(h.ErrorHandler))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 server: %w", err)
	}
	mux.Handle("/v1/", v1Srv)

	// pprof
	mux.Handle(controller.PprofPath, controller.PprofMux())

	withMetrics, err := controller.WithMetrics(mp.Meter("popdash"))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	handler := withMetrics(mux)
	handler = controller.WithCORS(handler)
	handler = controller.WithLogger(handler)
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
