// Package wire encodes the domain types as the JSON served by the API and
// printed by the snapshot command.
package wire

import (
	"popdash/internal/population"
	"popdash/pkg/domain"
	"time"

	"github.com/go-faster/jx"
)

func recordFields(e *jx.Encoder, r domain.CountryRecord) {
	e.Field("country", func(e *jx.Encoder) { e.Str(r.Country) })
	e.Field("population", func(e *jx.Encoder) { e.Int64(r.Population) })
	e.Field("migrantsNet", func(e *jx.Encoder) { e.Int64(r.MigrantsNet) })
	e.Field("worldShare", func(e *jx.Encoder) { e.Float64(r.WorldShare) })
	e.Field("urbanPopPct", func(e *jx.Encoder) { e.Float64(r.UrbanPopPct) })
}

// Records writes records as an array in the given order.
func Records(e *jx.Encoder, records []domain.CountryRecord) {
	e.Arr(func(e *jx.Encoder) {
		for _, r := range records {
			e.Obj(func(e *jx.Encoder) { recordFields(e, r) })
		}
	})
}

// Migration writes migration points with their flow.
func Migration(e *jx.Encoder, points []domain.MigrationPoint) {
	e.Arr(func(e *jx.Encoder) {
		for _, p := range points {
			e.Obj(func(e *jx.Encoder) {
				recordFields(e, p.CountryRecord)
				e.Field("flow", func(e *jx.Encoder) { e.Str(string(p.Flow)) })
			})
		}
	})
}

// Snapshot writes a snapshot with its records. The id is omitted for
// snapshots that were never archived.
func Snapshot(e *jx.Encoder, snap *domain.Snapshot) {
	e.Obj(func(e *jx.Encoder) {
		if snap.ID != (domain.SnapshotID{}) {
			e.Field("id", func(e *jx.Encoder) { e.Str(snap.ID.String()) })
		}
		e.Field("sourceUrl", func(e *jx.Encoder) { e.Str(snap.SourceURL) })
		e.Field("fetchedAt", func(e *jx.Encoder) { e.Str(snap.FetchedAt.UTC().Format(time.RFC3339)) })
		e.Field("rowCount", func(e *jx.Encoder) { e.Int(snap.Len()) })
		e.Field("records", func(e *jx.Encoder) { Records(e, snap.Records) })
	})
}

// SnapshotInfo writes an archive listing entry.
func SnapshotInfo(e *jx.Encoder, info domain.SnapshotInfo) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(info.ID.String()) })
		e.Field("sourceUrl", func(e *jx.Encoder) { e.Str(info.SourceURL) })
		e.Field("fetchedAt", func(e *jx.Encoder) { e.Str(info.FetchedAt.UTC().Format(time.RFC3339)) })
		e.Field("rowCount", func(e *jx.Encoder) { e.Int(info.RowCount) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(info.CreatedAt.UTC().Format(time.RFC3339Nano)) })
	})
}

// Metrics writes summary rows.
func Metrics(e *jx.Encoder, metrics []domain.Metric) {
	e.Arr(func(e *jx.Encoder) {
		for _, m := range metrics {
			e.Obj(func(e *jx.Encoder) {
				e.Field("label", func(e *jx.Encoder) { e.Str(m.Label) })
				e.Field("value", func(e *jx.Encoder) { e.Str(m.Value) })
			})
		}
	})
}

// Views writes every view of views as one object.
func Views(e *jx.Encoder, views population.Views) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("topByPopulation", func(e *jx.Encoder) { Records(e, views.TopByPopulation) })
		e.Field("migration", func(e *jx.Encoder) { Migration(e, views.Migration) })
		e.Field("topByWorldShare", func(e *jx.Encoder) { Records(e, views.TopByWorldShare) })
		e.Field("topByUrbanPct", func(e *jx.Encoder) { Records(e, views.TopByUrbanPct) })
	})
}
