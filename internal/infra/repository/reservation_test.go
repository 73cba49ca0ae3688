//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/infra"
	"coshare-scheduler/internal/infra/repository"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/tests/common/builder"
	repositorymock "coshare-scheduler/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindByID
// =============================================================================

func TestReservationRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewReservationBuilder()

	testCases := []struct {
		name       string
		row        sqlc.Reservation
		rowErr     error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row decoded",
			row:  b.BuildInfra(),
		},
		{
			name:       "error: no rows",
			rowErr:     pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database failure",
			rowErr:     errors.New("connection refused"),
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: unknown stored status",
			row: func() sqlc.Reservation {
				r := b.BuildInfra()
				r.Status = "archived"
				return r
			}(),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			mockQueries.EXPECT().GetReservationByID(ctx, mockDB, b.ID).Return(tc.row, tc.rowErr)

			res, err := repo.FindByID(ctx, b.ID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID, res.ID())
			assert.Equal(t, reservation.StatusConfirmed, res.Status())
			assert.True(t, b.Start.Equal(res.Window().Start()))
			assert.Equal(t, int64(4500), res.TotalCost().Cents())
		})
	}
}

func TestReservationRepository_FindByID_NotFoundIsMarked(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().GetReservationByID(ctx, mockDB, gomock.Any()).Return(sqlc.Reservation{}, pgx.ErrNoRows)

	_, err := repository.NewReservationRepository(mockQueries, mockDB).FindByID(ctx, builder.NewReservationBuilder().ID)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

// =============================================================================
// FindByResourceWindow
// =============================================================================

func TestReservationRepository_FindByResourceWindow(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	first := builder.NewReservationBuilder()
	second := builder.NewReservationBuilder().Window(first.End, 2*time.Hour)
	w := reservation.MustTimeWindow(first.Start, second.End)

	mockQueries.EXPECT().
		ListReservationsOverlapping(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListReservationsOverlappingParams) ([]sqlc.Reservation, error) {
			assert.True(t, w.Start().Equal(arg.WindowStart.Time))
			assert.True(t, w.End().Equal(arg.WindowEnd.Time))
			return []sqlc.Reservation{first.BuildInfra(), second.BuildInfra()}, nil
		})

	got, err := repo.FindByResourceWindow(ctx, first.ResourceID, w)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID())
	assert.Equal(t, second.ID, got[1].ID())
}

// =============================================================================
// Create / Update
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: stored at version 1"},
		{
			name:       "error: overlapping confirmed booking",
			dbErr:      &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"},
			expectKind: infra.KindExclusionViolated,
		},
		{
			name:       "error: unknown resource",
			dbErr:      &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Version = 0 }).BuildDomain()
			mockQueries.EXPECT().CreateReservation(ctx, mockDB, gomock.Any()).Return(tc.dbErr)

			err := repo.Create(ctx, res)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, int32(0), res.Version())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int32(1), res.Version())
		})
	}
}

func TestReservationRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		newVersion  int32
		dbErr       error
		expectKind  infra.RepositoryErrorKind
		expectStale bool
	}{
		{name: "success: version bumped", newVersion: 2},
		{
			name:        "error: version moved underneath",
			dbErr:       pgx.ErrNoRows,
			expectKind:  infra.KindStale,
			expectStale: true,
		},
		{
			name:        "error: confirmed overlap rejected by exclusion constraint",
			dbErr:       &pgconn.PgError{Code: "23P01"},
			expectKind:  infra.KindExclusionViolated,
			expectStale: true,
		},
		{
			name:       "error: database failure",
			dbErr:      errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().BuildDomain()
			mockQueries.EXPECT().
				UpdateReservation(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReservationParams) (int32, error) {
					assert.Equal(t, res.ID(), arg.ID)
					assert.Equal(t, int32(1), arg.ExpectedVersion)
					return tc.newVersion, tc.dbErr
				})

			err := repo.Update(ctx, res)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, tc.expectStale, infra.IsRetryableWrite(err))
				assert.Equal(t, tc.expectStale, errs.Is(err, errs.ErrStaleConflict))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.newVersion, res.Version())
		})
	}
}
