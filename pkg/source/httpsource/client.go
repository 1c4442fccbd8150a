// Package httpsource provides a source.Fetcher backed by net/http.
package httpsource

import (
	"context"
	"io"
	"net/http"
	"popdash/pkg/serrors"
	"popdash/pkg/source"
	"strings"
)

// DefaultUserAgent is sent when no user agent is configured. Some statistics
// sites reject Go's default agent.
const DefaultUserAgent = "Mozilla/5.0 (compatible; popdash/1.0)"

// maxErrorBody caps how much of a failed response body ends up in the error.
const maxErrorBody = 256

// Client fetches documents over HTTP. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Ensure Client conforms to the source.Fetcher interface at compile time.
var _ source.Fetcher = (*Client)(nil)

// Fetch performs a GET request for url and returns the body of a 2xx response.
// Any other outcome is reported with the serrors.ErrFetch kind; a 429 also
// matches serrors.ErrRateLimited.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrFetch, err, "could not create request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrFetch, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrFetch, err, "could not read response body")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.Wrap(serrors.ErrFetch,
			serrors.KindOnly(serrors.ErrRateLimited),
			"fetch %s rate limited", url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrFetch, "fetch %s failed with status %d: %s",
			url, resp.StatusCode, snippet(b))
	}

	return b, nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}

	return s
}

// New constructs a Client using the provided http.Client. An empty userAgent
// falls back to DefaultUserAgent.
func New(httpClient *http.Client, userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

