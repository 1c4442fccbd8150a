// Package worldbank provides a stats.Provider backed by the World Bank
// indicators API (https://api.worldbank.org/v2).
package worldbank

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"popdash/pkg/domain"
	"popdash/pkg/serrors"
	"popdash/pkg/stats"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultBaseURL is the public World Bank API root.
const DefaultBaseURL = "https://api.worldbank.org/v2"

// WorldCode is the aggregate "country" code for the whole world.
const WorldCode = "WLD"

// Format controls how an indicator value is rendered.
type Format int

const (
	// FormatDecimal renders the value with two decimals.
	FormatDecimal Format = iota
	// FormatCount renders the value as a grouped integer.
	FormatCount
	// FormatPercent renders a value already expressed in percent.
	FormatPercent
	// FormatPerThousand renders a crude rate per 1,000 people.
	FormatPerThousand
)

// Indicator is a World Bank series shown as one summary row.
type Indicator struct {
	// ID is the series code, e.g. SP.POP.TOTL.
	ID string
	// Label is the row label. Empty labels use the series name returned by
	// the API.
	Label  string
	Format Format
}

var known = map[string]Indicator{ //nolint: gochecknoglobals
	"SP.POP.TOTL":       {ID: "SP.POP.TOTL", Label: "World population", Format: FormatCount},
	"SP.POP.GROW":       {ID: "SP.POP.GROW", Label: "Population growth", Format: FormatPercent},
	"SP.URB.TOTL.IN.ZS": {ID: "SP.URB.TOTL.IN.ZS", Label: "Urban population", Format: FormatPercent},
	"SP.DYN.CBRT.IN":    {ID: "SP.DYN.CBRT.IN", Label: "Birth rate", Format: FormatPerThousand},
	"SP.DYN.CDRT.IN":    {ID: "SP.DYN.CDRT.IN", Label: "Death rate", Format: FormatPerThousand},
}

// DefaultIndicatorIDs lists the series shown when none are configured.
func DefaultIndicatorIDs() []string {
	return []string{"SP.POP.TOTL", "SP.POP.GROW", "SP.URB.TOTL.IN.ZS", "SP.DYN.CBRT.IN", "SP.DYN.CDRT.IN"}
}

// Indicators resolves series codes to indicators. Codes without a built-in
// label and format are rendered as decimals under their API name.
func Indicators(ids []string) []Indicator {
	out := make([]Indicator, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		ind, ok := known[id]
		if !ok {
			ind = Indicator{ID: id, Format: FormatDecimal}
		}
		out = append(out, ind)
	}

	return out
}

// Observation is the most recent non-empty value of a series.
type Observation struct {
	IndicatorID string
	Name        string
	Date        string
	Value       float64
}

// Client talks to the World Bank API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	indicators []Indicator
}

// Ensure Client conforms to the stats.Provider interface at compile time.
var _ stats.Provider = (*Client)(nil)

// Metrics fetches every configured indicator concurrently and renders them in
// configuration order. Any failing indicator fails the whole call.
func (c *Client) Metrics(ctx context.Context) ([]domain.Metric, error) {
	observations := make([]Observation, len(c.indicators))

	g, ctx := errgroup.WithContext(ctx)
	for i, ind := range c.indicators {
		g.Go(func() error {
			obs, err := c.Latest(ctx, WorldCode, ind.ID)
			if err != nil {
				return fmt.Errorf("could not get indicator %s: %w", ind.ID, err)
			}
			observations[i] = obs

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := message.NewPrinter(language.English)
	out := make([]domain.Metric, len(observations))
	for i, obs := range observations {
		out[i] = render(p, c.indicators[i], obs)
	}

	return out, nil
}

// Latest returns the most recent non-empty observation of indicator for the
// given country or aggregate code.
func (c *Client) Latest(ctx context.Context, country, indicator string) (Observation, error) {
	// https://datahelpdesk.worldbank.org/knowledgebase/articles/898581
	endpoint := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&mrnev=1",
		strings.TrimRight(c.baseURL, "/"), url.PathEscape(country), url.PathEscape(indicator))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Observation{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Observation{}, serrors.Wrap(serrors.ErrFetch, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Observation{}, serrors.Wrap(serrors.ErrFetch, err, "could not read response body")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return Observation{}, serrors.Wrap(serrors.ErrFetch, serrors.KindOnly(serrors.ErrRateLimited), "rate limited")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Observation{}, serrors.With(serrors.ErrFetch, "indicator request failed with status %d", resp.StatusCode)
	}

	obs, found, err := decodeLatest(b)
	if err != nil {
		return Observation{}, err
	}
	if !found {
		return Observation{}, serrors.With(serrors.ErrNotFound, "no observation for %s in %s", indicator, country)
	}

	return obs, nil
}

// decodeLatest reads a `[metadata, [entries...]]` response and returns the
// first entry with a value. API errors come back as `[{"message": [...]}]`.
func decodeLatest(b []byte) (Observation, bool, error) {
	var (
		obs    Observation
		found  bool
		apiErr string
		part   int
	)

	d := jx.DecodeBytes(b)
	if d.Next() != jx.Array {
		return obs, false, serrors.With(serrors.ErrParse, "unexpected indicator response")
	}
	err := d.Arr(func(d *jx.Decoder) error {
		i := part
		part++

		switch i {
		case 0:
			return d.Obj(func(d *jx.Decoder, key string) error {
				if key != "message" {
					return d.Skip()
				}

				return d.Arr(func(d *jx.Decoder) error {
					return d.Obj(func(d *jx.Decoder, key string) error {
						if key != "value" {
							return d.Skip()
						}
						s, err := d.Str()
						apiErr = s

						return err
					})
				})
			})
		case 1:
			if d.Next() == jx.Null {
				return d.Null()
			}

			return d.Arr(func(d *jx.Decoder) error {
				if found {
					return d.Skip()
				}
				entry, ok, err := decodeEntry(d)
				if err != nil {
					return err
				}
				if ok {
					obs, found = entry, true
				}

				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return obs, false, serrors.Wrap(serrors.ErrParse, errors.Wrap(err, "decode"), "could not decode indicator response")
	}
	if apiErr != "" {
		return obs, false, serrors.With(serrors.ErrFetch, "indicator API error: %s", apiErr)
	}

	return obs, found, nil
}

func decodeEntry(d *jx.Decoder) (Observation, bool, error) {
	var (
		obs Observation
		ok  bool
	)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "indicator":
			return d.Obj(func(d *jx.Decoder, key string) error {
				var err error
				switch key {
				case "id":
					obs.IndicatorID, err = d.Str()
				case "value":
					obs.Name, err = d.Str()
				default:
					err = d.Skip()
				}

				return err
			})
		case "date":
			s, err := d.Str()
			obs.Date = s

			return err
		case "value":
			if d.Next() == jx.Null {
				return d.Null()
			}
			f, err := d.Float64()
			obs.Value, ok = f, err == nil

			return err
		default:
			return d.Skip()
		}
	})

	return obs, ok, err
}

func render(p *message.Printer, ind Indicator, obs Observation) domain.Metric {
	label := ind.Label
	if label == "" {
		label = obs.Name
	}
	if obs.Date != "" {
		label = fmt.Sprintf("%s (%s)", label, obs.Date)
	}

	var value string
	switch ind.Format {
	case FormatCount:
		value = p.Sprintf("%d", int64(obs.Value))
	case FormatPercent:
		value = p.Sprintf("%.2f%%", obs.Value)
	case FormatPerThousand:
		value = p.Sprintf("%.1f per 1,000 people", obs.Value)
	default:
		value = p.Sprintf("%.2f", obs.Value)
	}

	return domain.Metric{Label: label, Value: value}
}

// New constructs a Client fetching the given indicators from baseURL. An
// empty baseURL uses DefaultBaseURL.
func New(httpClient *http.Client, baseURL string, indicators []Indicator) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		indicators: indicators,
	}
}
