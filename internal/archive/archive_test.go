package archive_test

import (
	"context"
	"encoding/base64"
	"errors"
	"popdash/internal/archive"
	"popdash/internal/population"
	"popdash/pkg/domain"
	"popdash/pkg/serrors"
	"popdash/pkg/storage"
	"testing"
	"time"

	mockstorage "popdash/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const url = "https://example.com/population"

func newTestArchive(t *testing.T) (*mockstorage.MockStorage, archive.Archive) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	a := archive.New(st, archive.Options{URL: url, MaxAttempts: 3, UniquePeriod: time.Hour})

	return st, a
}

func TestArchive_Enqueue(t *testing.T) {
	st, a := newTestArchive(t)

	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			archiveArgs, ok := args.(population.ArchiveArgs)
			require.True(t, ok)
			require.Equal(t, url, archiveArgs.URL)
			require.Equal(t, 3, archiveArgs.InsertOpts().MaxAttempts)
			require.Equal(t, time.Hour, archiveArgs.InsertOpts().UniqueOpts.ByPeriod)

			return true, nil
		},
	)

	added, err := a.Enqueue(context.Background())
	require.NoError(t, err)
	require.True(t, added)
}

func TestArchive_Enqueue_Duplicate(t *testing.T) {
	st, a := newTestArchive(t)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)

	added, err := a.Enqueue(context.Background())
	require.NoError(t, err)
	require.False(t, added)
}

func TestArchive_Enqueue_StorageError(t *testing.T) {
	st, a := newTestArchive(t)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("db down"))

	_, err := a.Enqueue(context.Background())
	require.Error(t, err)
}

func TestArchive_Snapshots(t *testing.T) {
	st, a := newTestArchive(t)

	cursor := storage.SnapshotCursor{
		CreatedAt: time.Date(2024, 5, 1, 10, 30, 0, 123456000, time.UTC),
		ID:        domain.SnapshotID(uuid.New()),
	}
	next := storage.SnapshotCursor{
		CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		ID:        domain.SnapshotID(uuid.New()),
	}
	infos := []domain.SnapshotInfo{{ID: domain.SnapshotID(uuid.New()), RowCount: 235}}

	st.EXPECT().Snapshots(gomock.Any(), &cursor, uint(5)).
		Return(storage.SnapshotPage{Snapshots: infos, NextCursor: &next}, nil)

	got, nextCursor, err := a.Snapshots(context.Background(), archive.EncodeCursor(cursor), 5)
	require.NoError(t, err)
	require.Equal(t, infos, got)
	require.Equal(t, archive.EncodeCursor(next), nextCursor)
}

func TestCursor_RoundTrip(t *testing.T) {
	// snapshots stored in one transaction share created_at; the id tells them apart
	createdAt := time.Date(2024, 5, 1, 10, 30, 0, 123456000, time.FixedZone("CEST", 2*60*60))
	first := storage.SnapshotCursor{CreatedAt: createdAt, ID: domain.SnapshotID(uuid.New())}
	second := storage.SnapshotCursor{CreatedAt: createdAt, ID: domain.SnapshotID(uuid.New())}

	require.NotEqual(t, archive.EncodeCursor(first), archive.EncodeCursor(second))
	require.NotContains(t, archive.EncodeCursor(first), "+")

	got, err := archive.DecodeCursor(archive.EncodeCursor(first))
	require.NoError(t, err)
	require.True(t, createdAt.Equal(got.CreatedAt))
	require.Equal(t, first.ID, got.ID)
}

func TestArchive_Snapshots_DefaultsAndLastPage(t *testing.T) {
	st, a := newTestArchive(t)

	st.EXPECT().Snapshots(gomock.Any(), gomock.Nil(), archive.DefaultLimit).Return(storage.SnapshotPage{}, nil)

	got, next, err := a.Snapshots(context.Background(), "", 0)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Empty(t, next)
}

func TestArchive_Snapshots_BadInput(t *testing.T) {
	_, a := newTestArchive(t)

	for _, cursor := range []string{
		"yesterday!",
		base64.RawURLEncoding.EncodeToString([]byte("2024-05-01T10:30:00Z")),
		base64.RawURLEncoding.EncodeToString([]byte("2024-05-01|" + uuid.NewString())),
		base64.RawURLEncoding.EncodeToString([]byte("2024-05-01T10:30:00Z|not-a-uuid")),
	} {
		_, _, err := a.Snapshots(context.Background(), cursor, 10)
		require.ErrorIs(t, err, serrors.ErrBadRequest, "cursor %q", cursor)
	}

	_, _, err := a.Snapshots(context.Background(), "", archive.MaxLimit+1)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestArchive_Snapshot(t *testing.T) {
	st, a := newTestArchive(t)

	id := domain.SnapshotID(uuid.New())
	snap := &domain.Snapshot{ID: id, Records: []domain.CountryRecord{{Country: "China"}}}

	st.EXPECT().SnapshotByID(gomock.Any(), id).Return(snap, nil)
	got, err := a.Snapshot(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, snap, got)

	st.EXPECT().SnapshotByID(gomock.Any(), id).Return(nil, nil)
	_, err = a.Snapshot(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().SnapshotByID(gomock.Any(), id).Return(nil, errors.New("db down"))
	_, err = a.Snapshot(context.Background(), id)
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
}

func TestArchive_Latest(t *testing.T) {
	st, a := newTestArchive(t)

	st.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, nil)
	_, err := a.Latest(context.Background())
	require.ErrorIs(t, err, serrors.ErrNotFound)

	snap := &domain.Snapshot{SourceURL: url}
	st.EXPECT().LatestSnapshot(gomock.Any()).Return(snap, nil)
	got, err := a.Latest(context.Background())
	require.NoError(t, err)
	require.Equal(t, snap, got)
}
