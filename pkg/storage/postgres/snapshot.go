package postgres

import (
	"context"
	"fmt"
	"popdash/pkg/domain"
	"popdash/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	snapshotsTable = "snapshots"
	countriesTable = "snapshot_countries"
)

// StoreSnapshot inserts the snapshot row and its country rows in one
// transaction, joining the surrounding one on a transactional handle.
func (p *PgSQL) StoreSnapshot(ctx context.Context, snap domain.Snapshot) (*domain.SnapshotInfo, error) {
	var info *domain.SnapshotInfo
	err := p.WithTx(ctx, func(s storage.AllStorage) error {
		var err error
		info, err = s.(*PgSQL).storeSnapshot(ctx, snap) //nolint: forcetypeassert

		return err
	})

	return info, err
}

func (p *PgSQL) storeSnapshot(ctx context.Context, snap domain.Snapshot) (*domain.SnapshotInfo, error) {
	var row PgSnapshot
	if _, err := p.Builder.Insert(snapshotsTable).
		Rows(PgSnapshot{
			SourceURL: snap.SourceURL,
			FetchedAt: snap.FetchedAt,
			RowCount:  len(snap.Records),
		}).
		Returning(&PgSnapshot{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store snapshot into pg: %w", err)
	}

	if len(snap.Records) > 0 {
		if _, err := p.Builder.Insert(countriesTable).
			Rows(domainRecordsToPg(row.ID, snap.Records)).
			Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not store snapshot countries into pg: %w", err)
		}
	}

	info := row.ToInfo()

	return &info, nil
}

// Snapshots returns a page of snapshot summaries ordered by created_at DESC,
// id DESC. The cursor compares on the same (created_at, id) pair.
func (p *PgSQL) Snapshots(ctx context.Context,
	cursor *storage.SnapshotCursor,
	limit uint) (storage.SnapshotPage, error) {
	var w []goqu.Expression
	if cursor != nil {
		w = append(w, goqu.Or(
			goqu.I("created_at").Lt(cursor.CreatedAt),
			goqu.And(
				goqu.I("created_at").Eq(cursor.CreatedAt),
				goqu.I("id").Lt(uuid.UUID(cursor.ID)),
			),
		))
	}

	// fetch one extra to determine if there is a next page
	var rows []PgSnapshot
	if err := p.Builder.From(snapshotsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.SnapshotPage{}, fmt.Errorf("could not fetch snapshots from pg: %w", err)
	}

	var nextCursor *storage.SnapshotCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if len(rows) > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.SnapshotCursor{CreatedAt: last.CreatedAt, ID: domain.SnapshotID(last.ID)}
		}
	}

	infos := make([]domain.SnapshotInfo, len(rows))
	for i := range rows {
		infos[i] = rows[i].ToInfo()
	}

	return storage.SnapshotPage{Snapshots: infos, NextCursor: nextCursor}, nil
}

// SnapshotByID returns the snapshot with the given ID including its records.
func (p *PgSQL) SnapshotByID(ctx context.Context, id domain.SnapshotID) (*domain.Snapshot, error) {
	return p.snapshotWhere(ctx, p.Builder.From(snapshotsTable).Where(goqu.I("id").Eq(uuid.UUID(id))))
}

// LatestSnapshot returns the snapshot with the most recent fetched_at.
func (p *PgSQL) LatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	return p.snapshotWhere(ctx, p.Builder.From(snapshotsTable).
		Order(goqu.I("fetched_at").Desc(), goqu.I("created_at").Desc()).
		Limit(1))
}

func (p *PgSQL) snapshotWhere(ctx context.Context, ds *goqu.SelectDataset) (*domain.Snapshot, error) {
	var row PgSnapshot
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch snapshot from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	var countries []PgCountry
	if err := p.Builder.From(countriesTable).
		Where(goqu.I("snapshot_id").Eq(row.ID)).
		Order(goqu.I("position").Asc()).
		Executor().ScanStructsContext(ctx, &countries); err != nil {
		return nil, fmt.Errorf("could not fetch snapshot countries from pg: %w", err)
	}

	return row.ToDomain(countries), nil
}
