package v1handler

import (
	"popdash/internal/api/specs/v1specs"
	"popdash/internal/dashboard"
	"popdash/pkg/domain"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

func domainRecordToV1Specs(r domain.CountryRecord) v1specs.CountryRecord {
	return v1specs.CountryRecord{
		Country:     r.Country,
		Population:  r.Population,
		MigrantsNet: r.MigrantsNet,
		WorldShare:  r.WorldShare,
		UrbanPopPct: r.UrbanPopPct,
	}
}

func domainViewRecordToV1Specs(r domain.CountryRecord) v1specs.ViewRecord {
	return v1specs.ViewRecord{
		Country:     r.Country,
		Population:  r.Population,
		MigrantsNet: r.MigrantsNet,
		WorldShare:  r.WorldShare,
		UrbanPopPct: r.UrbanPopPct,
	}
}

// DomainSnapshotToV1Specs converts a snapshot. The id is left unset for
// snapshots that were never archived.
func DomainSnapshotToV1Specs(in *domain.Snapshot) *v1specs.Snapshot {
	out := &v1specs.Snapshot{
		SourceURL: in.SourceURL,
		FetchedAt: in.FetchedAt.UTC(),
		RowCount:  in.Len(),
		Records:   make([]v1specs.CountryRecord, 0, len(in.Records)),
	}
	if in.ID != (domain.SnapshotID{}) {
		out.ID = v1specs.NewOptUUID(uuid.UUID(in.ID))
	}
	for _, r := range in.Records {
		out.Records = append(out.Records, domainRecordToV1Specs(r))
	}

	return out
}

func DomainSnapshotInfoToV1Specs(in domain.SnapshotInfo) v1specs.SnapshotInfo {
	return v1specs.SnapshotInfo{
		ID:        uuid.UUID(in.ID),
		SourceURL: in.SourceURL,
		FetchedAt: in.FetchedAt.UTC(),
		RowCount:  in.RowCount,
		CreatedAt: in.CreatedAt.UTC(),
	}
}

// DomainRecordsToV1Specs keeps the order of records.
func DomainRecordsToV1Specs(records []domain.CountryRecord) v1specs.View {
	out := make(v1specs.View, 0, len(records))
	for _, r := range records {
		out = append(out, domainViewRecordToV1Specs(r))
	}

	return out
}

func DomainMigrationToV1Specs(points []domain.MigrationPoint) v1specs.View {
	out := make(v1specs.View, 0, len(points))
	for _, p := range points {
		rec := domainViewRecordToV1Specs(p.CountryRecord)
		rec.Flow = v1specs.NewOptFlow(v1specs.Flow(p.Flow))
		out = append(out, rec)
	}

	return out
}

func DomainMetricsToV1Specs(metrics []domain.Metric) v1specs.Summary {
	out := make(v1specs.Summary, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, v1specs.Metric{Label: m.Label, Value: m.Value})
	}

	return out
}

// DashboardModelToV1Specs converts the render model of one theme. The chart
// options are passed through as rendered.
func DashboardModelToV1Specs(m dashboard.Model) *v1specs.Charts {
	return &v1specs.Charts{
		Theme:      v1specs.Theme(m.Theme),
		Title:      m.Title,
		ChartTheme: m.ChartTheme,
		Style: v1specs.Style{
			Color:           m.Style.Color,
			BackgroundColor: m.Style.Background,
		},
		Summary: DomainMetricsToV1Specs(m.Summary),
		Bar:     jx.Raw(m.Bar),
		Scatter: jx.Raw(m.Scatter),
		Pie:     jx.Raw(m.Pie),
	}
}
