package worldbank_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"popdash/pkg/serrors"
	"popdash/pkg/stats/worldbank"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func series(id, name, date string, value string) string {
	return fmt.Sprintf(`[{"page":1,"pages":1,"per_page":50,"total":1,"sourceid":"2"},`+
		`[{"indicator":{"id":%q,"value":%q},"country":{"id":"1W","value":"World"},`+
		`"countryiso3code":"WLD","date":%q,"value":%s,"unit":"","obs_status":"","decimal":0}]]`,
		id, name, date, value)
}

func TestClient_Metrics(t *testing.T) {
	values := map[string]string{
		"SP.POP.TOTL":       "8061876001",
		"SP.POP.GROW":       "0.917",
		"SP.URB.TOTL.IN.ZS": "57.3",
		"SP.DYN.CBRT.IN":    "16.8",
		"SP.DYN.CDRT.IN":    "7.6",
		"EN.POP.DNST":       "61.9",
	}
	ids := append(worldbank.DefaultIndicatorIDs(), "EN.POP.DNST", " ")

	c := worldbank.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "api.worldbank.org", r.URL.Host)
		require.Equal(t, "json", r.URL.Query().Get("format"))
		require.Equal(t, "1", r.URL.Query().Get("mrnev"))

		parts := strings.Split(r.URL.Path, "/")
		require.Equal(t, "WLD", parts[3])
		id := parts[len(parts)-1]

		return respond(http.StatusOK, series(id, "Series "+id, "2023", values[id])), nil
	})}, "", worldbank.Indicators(ids))

	metrics, err := c.Metrics(context.Background())
	require.NoError(t, err)
	require.Len(t, metrics, 6)

	require.Equal(t, "World population (2023)", metrics[0].Label)
	require.Equal(t, "8,061,876,001", metrics[0].Value)
	require.Equal(t, "0.92%", metrics[1].Value)
	require.Equal(t, "57.30%", metrics[2].Value)
	require.Equal(t, "16.8 per 1,000 people", metrics[3].Value)
	require.Equal(t, "Death rate (2023)", metrics[4].Label)
	// unknown series fall back to the API name
	require.Equal(t, "Series EN.POP.DNST (2023)", metrics[5].Label)
	require.Equal(t, "61.90", metrics[5].Value)
}

func TestClient_Latest_SkipsNullValues(t *testing.T) {
	body := `[{"page":1},[` +
		`{"indicator":{"id":"SP.POP.TOTL","value":"Population, total"},"date":"2024","value":null},` +
		`{"indicator":{"id":"SP.POP.TOTL","value":"Population, total"},"date":"2023","value":8061876001}]]`
	c := worldbank.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, body), nil
	})}, "https://example.test/v2/", nil)

	obs, err := c.Latest(context.Background(), worldbank.WorldCode, "SP.POP.TOTL")
	require.NoError(t, err)
	require.Equal(t, "2023", obs.Date)
	require.Equal(t, "Population, total", obs.Name)
	require.InDelta(t, 8061876001.0, obs.Value, 0.5)
}

func TestClient_Latest_Errors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   error
	}{
		{name: "no data", status: http.StatusOK, body: `[{"page":1,"total":0},null]`, kind: serrors.ErrNotFound},
		{name: "api message", status: http.StatusOK,
			body: `[{"message":[{"id":"120","key":"Invalid value","value":"The provided parameter value is not valid"}]}]`,
			kind: serrors.ErrFetch},
		{name: "not json array", status: http.StatusOK, body: `{"oops":true}`, kind: serrors.ErrParse},
		{name: "broken json", status: http.StatusOK, body: `[{"page":1},[{"value":`, kind: serrors.ErrParse},
		{name: "server error", status: http.StatusBadGateway, body: `bad gateway`, kind: serrors.ErrFetch},
		{name: "rate limited", status: http.StatusTooManyRequests, body: ``, kind: serrors.ErrRateLimited},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := worldbank.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
				return respond(tc.status, tc.body), nil
			})}, "", nil)

			_, err := c.Latest(context.Background(), worldbank.WorldCode, "SP.POP.TOTL")
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.kind), "expected %v, got %v", tc.kind, err)
		})
	}
}

func TestClient_Metrics_TransportError(t *testing.T) {
	c := worldbank.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("boom")
	})}, "", worldbank.Indicators(worldbank.DefaultIndicatorIDs()))

	_, err := c.Metrics(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrFetch))
}
