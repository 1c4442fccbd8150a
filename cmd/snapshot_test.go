package main

import (
	"bytes"
	"errors"
	"popdash/internal/app"
	"popdash/internal/population"
	"popdash/pkg/domain"
	mockstorage "popdash/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testState() *app.State {
	records := []domain.CountryRecord{{Country: "Tuvalu", Population: 11792, WorldShare: 0.0001}}

	return &app.State{
		Snapshot: &domain.Snapshot{
			SourceURL: "https://example.com/population",
			FetchedAt: time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC),
			Records:   records,
		},
		Views:   population.Views{TopByPopulation: records},
		Summary: []domain.Metric{{Label: "Population", Value: "11,792"}},
	}
}

func TestArchiveSnapshot_LeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	state := testState()
	id := domain.SnapshotID(uuid.New())

	st.EXPECT().StoreSnapshot(gomock.Any(), *state.Snapshot).Return(&domain.SnapshotInfo{ID: id}, nil)

	snap, err := archiveSnapshot(t.Context(), st, *state.Snapshot)
	require.NoError(t, err)
	require.Equal(t, id, snap.ID)
	require.Zero(t, state.Snapshot.ID)

	var out bytes.Buffer
	require.NoError(t, writeSnapshot(&out, snap, state, true))
	require.Contains(t, out.String(), `{"snapshot":{"id":"`+id.String()+`"`)
	require.Contains(t, out.String(), `"summary":[{"label":"Population","value":"11,792"}]`)
}

func TestArchiveSnapshot_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	boom := errors.New("boom")

	st.EXPECT().StoreSnapshot(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := archiveSnapshot(t.Context(), st, *testState().Snapshot)
	require.ErrorIs(t, err, boom)
}

func TestWriteSnapshot_Unarchived(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeSnapshot(&out, *testState().Snapshot, testState(), false))

	require.NotContains(t, out.String(), `"id"`)
	require.Contains(t, out.String(), "\n  \"views\"")
}
