package population_test

import (
	"context"
	"errors"
	"popdash/internal/population"
	"popdash/pkg/serrors"
	mocksource "popdash/pkg/source/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"
)

func newTestBuilder(t *testing.T) (*mocksource.MockFetcher, *population.Builder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	fetcher := mocksource.NewMockFetcher(ctrl)
	b, err := population.NewBuilder(fetcher, population.DefaultOptions(), noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	return fetcher, b
}

func TestBuilder_Snapshot(t *testing.T) {
	fetcher, b := newTestBuilder(t)
	fetcher.EXPECT().Fetch(gomock.Any(), population.DefaultURL).Return(fixture(t), nil)

	snap, err := b.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, population.DefaultURL, snap.SourceURL)
	require.False(t, snap.FetchedAt.IsZero())
	require.Equal(t, 5, snap.Len())
	require.Equal(t, "China", snap.Records[0].Country)
}

func TestBuilder_FetchError(t *testing.T) {
	fetcher, b := newTestBuilder(t)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrFetch, "fetch failed with status 503"))

	snap, err := b.Snapshot(context.Background())
	require.Nil(t, snap)
	require.True(t, errors.Is(err, serrors.ErrFetch))
	require.False(t, errors.Is(err, serrors.ErrParse))
}

func TestBuilder_ParseError(t *testing.T) {
	fetcher, b := newTestBuilder(t)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte("<html><body>maintenance</body></html>"), nil)

	_, err := b.Snapshot(context.Background())
	require.True(t, errors.Is(err, serrors.ErrParse))
}

func TestBuilder_NoUsableRows(t *testing.T) {
	fetcher, b := newTestBuilder(t)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte(`<table id="example2">
<tr><th>Country (or dependency)</th><th>Population (2020)</th><th>Migrants (net)</th><th>World Share</th><th>Urban Pop %</th></tr>
<tr><td></td><td>10</td><td>0</td><td>1 %</td><td>1 %</td></tr>
</table>`), nil)

	_, err := b.Snapshot(context.Background())
	require.True(t, errors.Is(err, serrors.ErrParse))
	require.Contains(t, err.Error(), "no usable rows")
}
