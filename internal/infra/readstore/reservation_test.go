//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/infra"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/pgconv"
	"coshare-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetReservationViewByIDRow), args.Error(1)
}

func (m *MockReservationViewQueries) ListModificationRecordsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ModificationRecord, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).([]sqlc.ModificationRecord), args.Error(1)
}

func TestReservationReadStore_FindByID(t *testing.T) {
	id := uuid.New()
	approver := uuid.New()
	start := builder.BaseTime.Add(24 * time.Hour)

	t.Run("success - nullable columns become pointers", func(t *testing.T) {
		m := new(MockReservationViewQueries)
		m.On("GetReservationViewByID", mock.Anything, mock.Anything, id).Return(sqlc.GetReservationViewByIDRow{
			ID:             id,
			ResourceID:     uuid.New(),
			ResourceName:   "Shared van",
			RequesterID:    uuid.New(),
			StartAt:        pgconv.TimeToPgtype(start),
			EndAt:          pgconv.TimeToPgtype(start.Add(3 * time.Hour)),
			Priority:       string(reservation.PriorityMedium),
			Status:         string(reservation.StatusConfirmed),
			TotalCostCents: pgtype.Int8{Int64: 4500, Valid: true},
			ApproverID:     pgconv.UUIDToPgtype(approver),
			Version:        2,
			CreatedAt:      pgconv.TimeToPgtype(builder.BaseTime),
			UpdatedAt:      pgconv.TimeToPgtype(builder.BaseTime),
		}, nil)

		got, err := NewReservationReadStore(m, nil).FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Shared van", got.ResourceName)
		assert.True(t, start.Equal(got.Window.Start))
		require.NotNil(t, got.TotalCostCents)
		assert.Equal(t, int64(4500), *got.TotalCostCents)
		require.NotNil(t, got.ApproverID)
		assert.Equal(t, approver, *got.ApproverID)
		assert.NotNil(t, got.Modifications)
	})

	t.Run("not found", func(t *testing.T) {
		m := new(MockReservationViewQueries)
		m.On("GetReservationViewByID", mock.Anything, mock.Anything, id).Return(sqlc.GetReservationViewByIDRow{}, pgx.ErrNoRows)

		_, err := NewReservationReadStore(m, nil).FindByID(context.Background(), id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationReadStore_ListModifications(t *testing.T) {
	reservationID := uuid.New()
	start := builder.BaseTime.Add(24 * time.Hour)

	row := sqlc.ModificationRecord{
		ID:              uuid.New(),
		ReservationID:   reservationID,
		ActorID:         uuid.New(),
		Kind:            string(modification.KindReschedule),
		PreviousStartAt: pgconv.TimeToPgtype(start),
		PreviousEndAt:   pgconv.TimeToPgtype(start.Add(2 * time.Hour)),
		ProposedStartAt: pgconv.TimeToPgtype(start.Add(4 * time.Hour)),
		ProposedEndAt:   pgconv.TimeToPgtype(start.Add(6 * time.Hour)),
		Reason:          "ferry moved",
		TimeDeltaHours:  4,
		Status:          string(modification.StatusSuccess),
		CreatedAt:       pgconv.TimeToPgtype(builder.BaseTime),
	}

	t.Run("rows become views", func(t *testing.T) {
		m := new(MockReservationViewQueries)
		m.On("ListModificationRecordsByReservation", mock.Anything, mock.Anything, reservationID).
			Return([]sqlc.ModificationRecord{row}, nil)

		got, err := NewReservationReadStore(m, nil).ListModifications(context.Background(), reservationID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, row.ID, got[0].ID)
		assert.Equal(t, string(modification.StatusSuccess), got[0].Status)
		require.NotNil(t, got[0].ProposedWindow)
		assert.True(t, start.Add(4*time.Hour).Equal(got[0].ProposedWindow.Start))
		assert.InDelta(t, 4.0, got[0].TimeDeltaHours, 1e-9)
	})

	t.Run("corrupt window is a db failure", func(t *testing.T) {
		bad := row
		bad.PreviousEndAt = bad.PreviousStartAt
		m := new(MockReservationViewQueries)
		m.On("ListModificationRecordsByReservation", mock.Anything, mock.Anything, reservationID).
			Return([]sqlc.ModificationRecord{bad}, nil)

		_, err := NewReservationReadStore(m, nil).ListModifications(context.Background(), reservationID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("query failure", func(t *testing.T) {
		m := new(MockReservationViewQueries)
		m.On("ListModificationRecordsByReservation", mock.Anything, mock.Anything, reservationID).
			Return([]sqlc.ModificationRecord(nil), errors.New("boom"))

		_, err := NewReservationReadStore(m, nil).ListModifications(context.Background(), reservationID)
		require.Error(t, err)
	})
}
