package population

import (
	"context"
	"fmt"
	"popdash/pkg/domain"
	"popdash/pkg/logger"
	"popdash/pkg/metrics"
	"popdash/pkg/serrors"
	"popdash/pkg/source"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "popdash/internal/population"

// DefaultURL is the page listing countries by population.
const DefaultURL = "https://www.worldometers.info/world-population/population-by-country/"

// DefaultTableID is the id of the statistics table on DefaultURL.
const DefaultTableID = "example2"

// Options tell the builder where the statistics table lives.
type Options struct {
	// URL is the page to fetch.
	URL string
	// TableID is the id attribute of the table holding the statistics.
	TableID string
	// Columns are the header labels of the required columns.
	Columns Columns
}

// DefaultOptions returns the options for the worldometers population page.
func DefaultOptions() Options {
	return Options{
		URL:     DefaultURL,
		TableID: DefaultTableID,
		Columns: DefaultColumns(),
	}
}

type instruments struct {
	duration  metric.Float64Histogram
	rows      metric.Int64Counter
	dropped   metric.Int64Counter
	defaulted metric.Int64Counter
}

func newInstruments(meter metric.Meter) (instruments, error) {
	var (
		ins instruments
		err error
	)
	if ins.duration, err = meter.Float64Histogram("popdash.snapshot.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Time spent fetching and normalizing the population table."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...)); err != nil {
		return ins, fmt.Errorf("could not create duration histogram: %w", err)
	}
	if ins.rows, err = meter.Int64Counter("popdash.snapshot.rows",
		metric.WithDescription("Country records produced by normalization.")); err != nil {
		return ins, fmt.Errorf("could not create rows counter: %w", err)
	}
	if ins.dropped, err = meter.Int64Counter("popdash.snapshot.rows_dropped",
		metric.WithDescription("Raw rows rejected during normalization.")); err != nil {
		return ins, fmt.Errorf("could not create dropped counter: %w", err)
	}
	if ins.defaulted, err = meter.Int64Counter("popdash.snapshot.cells_defaulted",
		metric.WithDescription("Numeric cells recorded as 0 because they could not be parsed.")); err != nil {
		return ins, fmt.Errorf("could not create defaulted counter: %w", err)
	}

	return ins, nil
}

// Builder runs the fetch, extract and normalize steps that produce a
// snapshot. It holds no mutable state and is safe for concurrent use.
type Builder struct {
	fetcher     source.Fetcher
	options     Options
	tracer      trace.Tracer
	instruments instruments
	now         func() time.Time
}

// Ensure Builder implements SnapshotBuilder.
var _ SnapshotBuilder = (*Builder)(nil)

// NewBuilder creates a Builder reading from fetcher. Instruments are created
// on meter; pass a noop meter when metrics are not wanted.
func NewBuilder(fetcher source.Fetcher, options Options, meter metric.Meter) (*Builder, error) {
	ins, err := newInstruments(meter)
	if err != nil {
		return nil, err
	}

	return &Builder{
		fetcher:     fetcher,
		options:     options,
		tracer:      otel.Tracer(instrumentationName),
		instruments: ins,
		now:         time.Now,
	}, nil
}

// Snapshot fetches the page once and turns its table into a Snapshot.
//
// Errors carry the serrors.ErrFetch kind when the page could not be
// retrieved and serrors.ErrParse when the table is missing, lacks a required
// column or yields no usable rows.
func (b *Builder) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	ctx, span := b.tracer.Start(ctx, "population.Snapshot",
		trace.WithAttributes(attribute.String("source.url", b.options.URL)))
	defer span.End()

	ctx = logger.WithFields(ctx, zap.String("url", b.options.URL), zap.String("tableID", b.options.TableID))
	start := b.now()

	snap, report, err := b.build(ctx)

	outcome := "ok"
	if err != nil {
		outcome = outcomeOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	b.instruments.duration.Record(ctx, b.now().Sub(start).Seconds(),
		metric.WithAttributes(attribute.String("outcome", outcome)))
	if err != nil {
		return nil, err
	}

	b.instruments.rows.Add(ctx, int64(snap.Len()))
	b.instruments.dropped.Add(ctx, int64(report.Dropped))
	b.instruments.defaulted.Add(ctx, int64(report.Defaulted))

	logger.Info(ctx, "snapshot built",
		zap.Int("rows", report.Rows),
		zap.Int("records", snap.Len()),
		zap.Int("dropped", report.Dropped),
		zap.Int("defaulted", report.Defaulted))

	return snap, nil
}

func (b *Builder) build(ctx context.Context) (*domain.Snapshot, Report, error) {
	fetchedAt := b.now().UTC()

	markup, err := b.fetcher.Fetch(ctx, b.options.URL)
	if err != nil {
		return nil, Report{}, fmt.Errorf("could not fetch population page: %w", err)
	}
	logger.Debug(ctx, "population page fetched", zap.Int("bytes", len(markup)))

	table, err := Extract(markup, b.options.TableID, b.options.Columns)
	if err != nil {
		return nil, Report{}, fmt.Errorf("could not extract population table: %w", err)
	}

	records, report := Normalize(table)
	if len(records) == 0 {
		return nil, report, serrors.With(serrors.ErrParse,
			"table %q yielded no usable rows out of %d", b.options.TableID, report.Rows)
	}

	return &domain.Snapshot{
		SourceURL: b.options.URL,
		FetchedAt: fetchedAt,
		Records:   records,
	}, report, nil
}

func outcomeOf(err error) string {
	if k := serrors.KindOf(err); k != nil {
		return k.Error()
	}

	return serrors.ErrInternal.Error()
}
