package httpsource_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"popdash/pkg/serrors"
	"popdash/pkg/source/httpsource"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const pageURL = "https://www.worldometers.info/world-population/population-by-country/"

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *httpsource.Client {
	return httpsource.New(&http.Client{Transport: fn}, "test-agent")
}

func TestClient_Fetch_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "www.worldometers.info", r.URL.Host)
		require.Equal(t, "/world-population/population-by-country/", r.URL.Path)
		require.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<html><table id=\"example2\"></table></html>")),
		}, nil
	})

	b, err := c.Fetch(context.Background(), pageURL)
	require.NoError(t, err)
	require.Contains(t, string(b), "example2")
}

func TestClient_Fetch_defaultUserAgent(t *testing.T) {
	c := httpsource.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, httpsource.DefaultUserAgent, r.Header.Get("User-Agent"))

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("ok"))}, nil
	})}, "")

	_, err := c.Fetch(context.Background(), pageURL)
	require.NoError(t, err)
}

func TestClient_Fetch_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream bad")),
		}, nil
	})

	b, err := c.Fetch(context.Background(), pageURL)
	require.Nil(t, b)
	require.ErrorIs(t, err, serrors.ErrFetch)
	require.Contains(t, err.Error(), "502")
	require.Contains(t, err.Error(), "upstream bad")
}

func TestClient_Fetch_rateLimited(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	_, err := c.Fetch(context.Background(), pageURL)
	require.ErrorIs(t, err, serrors.ErrFetch)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Fetch_transportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, cause
	})

	_, err := c.Fetch(context.Background(), pageURL)
	require.ErrorIs(t, err, serrors.ErrFetch)
	require.ErrorIs(t, err, cause)
}

func TestClient_Fetch_badURL(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		t.Fatal("request should not be sent")

		return nil, nil
	})

	_, err := c.Fetch(context.Background(), "http://exa mple.com")
	require.ErrorIs(t, err, serrors.ErrFetch)
}
