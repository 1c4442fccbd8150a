package postgres

import (
	"popdash/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgSnapshot is a row of the snapshots table.
type PgSnapshot struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	SourceURL string    `db:"source_url"`
	FetchedAt time.Time `db:"fetched_at"`
	RowCount  int       `db:"row_count"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

// PgCountry is a row of the snapshot_countries table. Position keeps the page
// order of the records.
type PgCountry struct {
	SnapshotID  uuid.UUID `db:"snapshot_id"`
	Position    int       `db:"position"`
	Country     string    `db:"country"`
	Population  int64     `db:"population"`
	MigrantsNet int64     `db:"migrants_net"`
	WorldShare  float64   `db:"world_share"`
	UrbanPopPct float64   `db:"urban_pop_pct"`
}

func (p *PgSnapshot) ToInfo() domain.SnapshotInfo {
	return domain.SnapshotInfo{
		ID:        domain.SnapshotID(p.ID),
		SourceURL: p.SourceURL,
		FetchedAt: p.FetchedAt.UTC(),
		RowCount:  p.RowCount,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func (p *PgSnapshot) ToDomain(countries []PgCountry) *domain.Snapshot {
	records := make([]domain.CountryRecord, len(countries))
	for i, c := range countries {
		records[i] = c.ToDomain()
	}

	return &domain.Snapshot{
		ID:        domain.SnapshotID(p.ID),
		SourceURL: p.SourceURL,
		FetchedAt: p.FetchedAt.UTC(),
		Records:   records,
	}
}

func (c *PgCountry) ToDomain() domain.CountryRecord {
	return domain.CountryRecord{
		Country:     c.Country,
		Population:  c.Population,
		MigrantsNet: c.MigrantsNet,
		WorldShare:  c.WorldShare,
		UrbanPopPct: c.UrbanPopPct,
	}
}

func domainRecordsToPg(id uuid.UUID, records []domain.CountryRecord) []PgCountry {
	out := make([]PgCountry, len(records))
	for i, r := range records {
		out[i] = PgCountry{
			SnapshotID:  id,
			Position:    i,
			Country:     r.Country,
			Population:  r.Population,
			MigrantsNet: r.MigrantsNet,
			WorldShare:  r.WorldShare,
			UrbanPopPct: r.UrbanPopPct,
		}
	}

	return out
}
