//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/infra"
	"coshare-scheduler/internal/usecase/queries"
	"coshare-scheduler/tests/common/builder"
	queriesmock "coshare-scheduler/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("attaches the modification history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockReservationViewRepo(ctrl)
		view := &queries.ReservationView{ID: id, Status: string(reservation.StatusConfirmed)}
		mods := []queries.ModificationView{{ID: uuid.New(), Kind: string(modification.KindReschedule)}}

		gomock.InOrder(
			repo.EXPECT().FindByID(gomock.Any(), id).Return(view, nil),
			repo.EXPECT().ListModifications(gomock.Any(), id).Return(mods, nil),
		)

		got, err := queries.NewReservationQueries(repo).GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, mods, got.Modifications)
	})

	t.Run("not found skips the history lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockReservationViewRepo(ctrl)
		notFound := infra.NewRepoErr(infra.KindNotFound, "reservation not found")
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound)

		_, err := queries.NewReservationQueries(repo).GetByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestToModificationView(t *testing.T) {
	prev := reservation.MustTimeWindow(builder.BaseTime, builder.BaseTime.Add(2*time.Hour))
	next := reservation.MustTimeWindow(builder.BaseTime.Add(3*time.Hour), builder.BaseTime.Add(5*time.Hour))
	conflictID := uuid.New()
	rec := &modification.Record{
		ID:             uuid.New(),
		ReservationID:  uuid.New(),
		Kind:           modification.KindReschedule,
		ActorID:        uuid.New(),
		PreviousWindow: prev,
		ProposedWindow: &next,
		Reason:         "dentist appointment moved",
		Status:         modification.StatusPendingApproval,
		Impact: modification.Impact{
			HasConflicts:     true,
			ConflictCount:    1,
			TimeDeltaHours:   3,
			RequiresApproval: true,
		},
		ConflictID: &conflictID,
		CreatedAt:  builder.BaseTime,
	}

	want := queries.ModificationView{
		ID:               rec.ID,
		Kind:             string(modification.KindReschedule),
		ActorID:          rec.ActorID,
		PreviousWindow:   queries.WindowView{Start: prev.Start(), End: prev.End()},
		ProposedWindow:   &queries.WindowView{Start: next.Start(), End: next.End()},
		Reason:           "dentist appointment moved",
		Status:           string(modification.StatusPendingApproval),
		HasConflicts:     true,
		ConflictCount:    1,
		TimeDeltaHours:   3,
		RequiresApproval: true,
		ConflictID:       &conflictID,
		CreatedAt:        builder.BaseTime,
	}
	if diff := cmp.Diff(want, queries.ToModificationView(rec)); diff != "" {
		t.Errorf("ToModificationView() mismatch (-want +got):\n%s", diff)
	}
}
