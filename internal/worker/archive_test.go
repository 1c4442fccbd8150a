package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"popdash/internal/population"
	mockpopulation "popdash/internal/population/mock"
	"popdash/internal/worker"
	"popdash/pkg/domain"
	"popdash/pkg/logger"
	"popdash/pkg/serrors"
	mockstorage "popdash/pkg/storage/mock"
)

const url = "https://example.com/population"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64) *river.Job[population.ArchiveArgs] {
	return &river.Job[population.ArchiveArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   population.NewArchiveArgs(url, 3, time.Hour),
	}
}

func newWorker(t *testing.T) (*mockpopulation.MockSnapshotBuilder, *mockstorage.MockAllStorage, *worker.ArchiveWorker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	builder := mockpopulation.NewMockSnapshotBuilder(ctrl)
	st := mockstorage.NewMockAllStorage(ctrl)

	return builder, st, worker.NewArchiveWorker(builder, st)
}

func TestArchiveWorker_Work_Success(t *testing.T) {
	builder, st, w := newWorker(t)

	snap := &domain.Snapshot{
		SourceURL: url,
		FetchedAt: time.Now(),
		Records:   []domain.CountryRecord{{Country: "China", Population: 1}},
	}
	builder.EXPECT().Snapshot(gomock.Any()).Return(snap, nil)
	st.EXPECT().StoreSnapshot(gomock.Any(), *snap).
		Return(&domain.SnapshotInfo{ID: domain.SnapshotID(uuid.New()), RowCount: 1}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1)))
}

func TestArchiveWorker_Work_ParseErrorCancels(t *testing.T) {
	builder, _, w := newWorker(t)

	builder.EXPECT().Snapshot(gomock.Any()).Return(nil, serrors.With(serrors.ErrParse, "table missing"))

	err := w.Work(context.Background(), makeJob(2))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestArchiveWorker_Work_RateLimitedSnoozes(t *testing.T) {
	builder, _, w := newWorker(t)

	builder.EXPECT().Snapshot(gomock.Any()).Return(nil,
		serrors.Wrap(serrors.ErrFetch, serrors.KindOnly(serrors.ErrRateLimited), "rate limited"))

	err := w.Work(context.Background(), makeJob(3))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, worker.RateLimitBackoff, snoozeErr.Duration)
}

func TestArchiveWorker_Work_FetchErrorRetries(t *testing.T) {
	builder, _, w := newWorker(t)

	builder.EXPECT().Snapshot(gomock.Any()).Return(nil, serrors.With(serrors.ErrFetch, "status 503"))

	err := w.Work(context.Background(), makeJob(4))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrFetch)

	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr)
}

func TestArchiveWorker_Work_StoreErrorRetries(t *testing.T) {
	builder, st, w := newWorker(t)

	snap := &domain.Snapshot{SourceURL: url}
	builder.EXPECT().Snapshot(gomock.Any()).Return(snap, nil)
	st.EXPECT().StoreSnapshot(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	require.Error(t, w.Work(context.Background(), makeJob(5)))
}
