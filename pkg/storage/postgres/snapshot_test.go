package postgres_test

import (
	"context"
	"errors"
	"popdash/pkg/domain"
	"popdash/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testSnapshot(fetchedAt time.Time) domain.Snapshot {
	return domain.Snapshot{
		SourceURL: "https://example.com/population",
		FetchedAt: fetchedAt,
		Records: []domain.CountryRecord{
			{Country: "China", Population: 1439323776, MigrantsNet: -348399, WorldShare: 0.1847, UrbanPopPct: 0.61},
			{Country: "India", Population: 1380004385, MigrantsNet: -532687, WorldShare: 0.177, UrbanPopPct: 0.35},
			{Country: "Monaco", Population: 39242},
		},
	}
}

func TestPgSQL_StoreSnapshot_RoundTrip(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	fetchedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	snap := testSnapshot(fetchedAt)

	info, err := pg.StoreSnapshot(ctx, snap)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(info.ID))
	require.Equal(t, 3, info.RowCount)
	require.Equal(t, snap.SourceURL, info.SourceURL)
	require.True(t, fetchedAt.Equal(info.FetchedAt))
	require.False(t, info.CreatedAt.IsZero())

	stored, err := pg.SnapshotByID(ctx, info.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, info.ID, stored.ID)
	// records come back in page order
	require.Equal(t, snap.Records, stored.Records)
}

func TestPgSQL_SnapshotByID_Missing(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	stored, err := pg.SnapshotByID(context.Background(), domain.SnapshotID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestPgSQL_LatestSnapshot(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	latest, err := pg.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.Nil(t, latest)

	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	newInfo, err := pg.StoreSnapshot(ctx, testSnapshot(newer))
	require.NoError(t, err)
	// stored later but fetched earlier
	_, err = pg.StoreSnapshot(ctx, testSnapshot(older))
	require.NoError(t, err)

	latest, err = pg.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, newInfo.ID, latest.ID)
	require.Len(t, latest.Records, 3)
}

func TestPgSQL_Snapshots_Pagination(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	var ids []domain.SnapshotID
	for i := range 5 {
		info, err := pg.StoreSnapshot(ctx, testSnapshot(time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, err)
		ids = append(ids, info.ID)
	}

	page, err := pg.Snapshots(ctx, nil, 2)
	require.NoError(t, err)
	require.Len(t, page.Snapshots, 2)
	require.NotNil(t, page.NextCursor)
	require.Equal(t, ids[4], page.Snapshots[0].ID)
	require.Equal(t, ids[3], page.Snapshots[1].ID)

	var seen []domain.SnapshotID
	for _, s := range page.Snapshots {
		seen = append(seen, s.ID)
	}
	for page.NextCursor != nil {
		page, err = pg.Snapshots(ctx, page.NextCursor, 2)
		require.NoError(t, err)
		for _, s := range page.Snapshots {
			seen = append(seen, s.ID)
		}
	}

	require.Equal(t, []domain.SnapshotID{ids[4], ids[3], ids[2], ids[1], ids[0]}, seen)
}

func TestPgSQL_Snapshots_PaginationWithTies(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// now() is fixed for a transaction, so every row shares created_at
	stored := make(map[domain.SnapshotID]bool)
	require.NoError(t, pg.WithTx(ctx, func(s storage.AllStorage) error {
		for i := range 5 {
			info, err := s.StoreSnapshot(ctx, testSnapshot(time.Date(2024, 2, i+1, 0, 0, 0, 0, time.UTC)))
			if err != nil {
				return err
			}
			stored[info.ID] = true
		}

		return nil
	}))

	var (
		seen   []domain.SnapshotID
		cursor *storage.SnapshotCursor
	)
	for {
		page, err := pg.Snapshots(ctx, cursor, 2)
		require.NoError(t, err)
		for _, s := range page.Snapshots {
			require.True(t, s.CreatedAt.Equal(page.Snapshots[0].CreatedAt))
			seen = append(seen, s.ID)
		}
		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	require.Len(t, seen, 5)
	for _, id := range seen {
		require.True(t, stored[id], "unexpected snapshot %s", id)
		delete(stored, id)
	}
	require.Empty(t, stored)
}

func TestPgSQL_StoreSnapshot_RolledBackWithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.StoreSnapshot(ctx, testSnapshot(time.Now()))
		require.NoError(t, err)

		return errors.New("boom")
	})
	require.Error(t, err)

	latest, err := pg.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.Nil(t, latest)
}

func TestPgSQL_StoreSnapshot_DuplicateCountryFails(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	snap := testSnapshot(time.Now())
	snap.Records = append(snap.Records, snap.Records[0])

	_, err := pg.StoreSnapshot(ctx, snap)
	require.Error(t, err)

	// nothing from the failed snapshot is kept
	page, err := pg.Snapshots(ctx, nil, 10)
	require.NoError(t, err)
	require.Empty(t, page.Snapshots)
}
