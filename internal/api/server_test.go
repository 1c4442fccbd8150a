package api_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"popdash/internal/api"
	"popdash/internal/api/handler/v1handler"
	"popdash/internal/app"
	"popdash/internal/dashboard"
	"popdash/internal/population"
	"popdash/pkg/domain"
	"popdash/pkg/logger"
	"popdash/pkg/metrics"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newTestServer(t *testing.T, db api.Pinger, mp metric.MeterProvider) *httptest.Server {
	t.Helper()

	state, err := app.Build(context.Background(), &domain.Snapshot{
		SourceURL: population.DefaultURL,
		FetchedAt: time.Now(),
		Records:   []domain.CountryRecord{{Country: "A", Population: 1, WorldShare: 1, UrbanPopPct: 0.5}},
	}, nil, app.Options{Views: population.DefaultViewOptions(), Title: "t", DefaultTheme: dashboard.ThemeDark})
	require.NoError(t, err)

	srv, err := api.NewServer(api.Deps{
		Deps:          v1handler.Deps{State: state},
		Database:      db,
		MeterProvider: mp,
	}, api.Options{
		RequestTimeout: time.Second,
		MetricsPath:    "/metrics",
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func TestNewServer_Routes(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	cases := map[string]int{
		"/":                   http.StatusOK,
		"/?theme=light":       http.StatusOK,
		"/v1/snapshot":        http.StatusOK,
		"/v1/views/migration": http.StatusOK,
		"/v1/summary":         http.StatusOK,
		"/specs/v1.yaml":      http.StatusOK,
		"/v1/docs/":           http.StatusOK,
		"/metrics":            http.StatusOK,
		"/debug/pprof/":       http.StatusOK,
		"/v1/archive/latest":  http.StatusServiceUnavailable,
		"/v1/charts":          http.StatusOK,
		"/v1/missing":         http.StatusNotFound,
		"/healthz":            http.StatusOK,
		"/readyz":             http.StatusOK,
		"/missing":            http.StatusNotFound,
	}

	for path, status := range cases {
		t.Run(path, func(t *testing.T) {
			res, err := http.Get(ts.URL + path) //nolint: noctx
			require.NoError(t, err)
			defer func() { _ = res.Body.Close() }()

			require.Equal(t, status, res.StatusCode)
			require.NotEmpty(t, res.Header.Get("X-Request-Id"))
			require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNewServer_Readyz(t *testing.T) {
	tests := []struct {
		name   string
		ping   error
		status int
		body   string
	}{
		{name: "database up", status: http.StatusOK, body: `{"status":"ok"}`},
		{name: "database down", ping: errors.New("connection refused"), status: http.StatusServiceUnavailable, body: `{"status":"unavailable"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t, pingFunc(func(context.Context) error { return tc.ping }), nil)

			res, err := http.Get(ts.URL + "/readyz") //nolint: noctx
			require.NoError(t, err)
			defer func() { _ = res.Body.Close() }()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			require.Equal(t, tc.status, res.StatusCode)
			require.JSONEq(t, tc.body, string(body))
		})
	}
}

func TestNewServer_RecordsOperationMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	ts := newTestServer(t, nil, mp)

	res, err := http.Get(ts.URL + "/v1/charts?theme=dark") //nolint: noctx
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())
	require.Equal(t, http.StatusOK, res.StatusCode)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if !strings.HasPrefix(f.GetName(), "ogen_server_request_count") {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetValue() == "getCharts" {
					found = true
				}
			}
		}
	}
	require.True(t, found, "no request count recorded for getCharts")
}
