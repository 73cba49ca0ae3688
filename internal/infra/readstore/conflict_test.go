//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/infra"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/pgconv"
	"coshare-scheduler/internal/usecase/queries"
	"coshare-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConflictReadQueries struct {
	mock.Mock
}

func (m *MockConflictReadQueries) GetConflictRecordByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ConflictRecord, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.ConflictRecord), args.Error(1)
}

func (m *MockConflictReadQueries) ListOpenConflicts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOpenConflictsParams) ([]sqlc.ConflictRecord, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ConflictRecord), args.Error(1)
}

func (m *MockConflictReadQueries) ListExpiredCounterOffers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredCounterOffersParams) ([]sqlc.ListExpiredCounterOffersRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListExpiredCounterOffersRow), args.Error(1)
}

func (m *MockConflictReadQueries) ListConflictIncumbents(ctx context.Context, db sqlc.DBTX, conflictIds []uuid.UUID) ([]sqlc.ConflictIncumbent, error) {
	args := m.Called(ctx, db, conflictIds)
	return args.Get(0).([]sqlc.ConflictIncumbent), args.Error(1)
}

func (m *MockConflictReadQueries) ListConflictParticipants(ctx context.Context, db sqlc.DBTX, conflictIds []uuid.UUID) ([]sqlc.ConflictParticipant, error) {
	args := m.Called(ctx, db, conflictIds)
	return args.Get(0).([]sqlc.ConflictParticipant), args.Error(1)
}

func awaitingRow() sqlc.ConflictRecord {
	return sqlc.ConflictRecord{
		ID:                    uuid.New(),
		ResourceID:            uuid.New(),
		Kind:                  string(conflict.KindCreation),
		ChallengerID:          uuid.New(),
		ChallengerRequesterID: uuid.New(),
		ResolutionType:        string(conflict.ResolutionSimpleApproval),
		State:                 string(conflict.StateAwaitingApprovals),
		Version:               1,
		CreatedAt:             pgconv.TimeToPgtype(builder.BaseTime),
		UpdatedAt:             pgconv.TimeToPgtype(builder.BaseTime),
	}
}

func TestConflictReadStore_FindByID(t *testing.T) {
	row := awaitingRow()
	incumbentID := uuid.New()
	responder := uuid.New()

	tests := []struct {
		name      string
		setup     func(m *MockConflictReadQueries)
		wantKind  *infra.RepositoryErrorKind
		wantError bool
	}{
		{
			name: "success - children attached",
			setup: func(m *MockConflictReadQueries) {
				m.On("GetConflictRecordByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)
				m.On("ListConflictIncumbents", mock.Anything, mock.Anything, []uuid.UUID{row.ID}).
					Return([]sqlc.ConflictIncumbent{{ConflictID: row.ID, ReservationID: incumbentID}}, nil)
				m.On("ListConflictParticipants", mock.Anything, mock.Anything, []uuid.UUID{row.ID}).
					Return([]sqlc.ConflictParticipant{{ConflictID: row.ID, UserID: responder, Weight: 0.6, OwnershipFraction: 0.6}}, nil)
			},
		},
		{
			name: "not found",
			setup: func(m *MockConflictReadQueries) {
				m.On("GetConflictRecordByID", mock.Anything, mock.Anything, row.ID).Return(sqlc.ConflictRecord{}, pgx.ErrNoRows)
			},
			wantKind:  kindPtr(infra.KindNotFound),
			wantError: true,
		},
		{
			name: "db failure",
			setup: func(m *MockConflictReadQueries) {
				m.On("GetConflictRecordByID", mock.Anything, mock.Anything, row.ID).Return(sqlc.ConflictRecord{}, errors.New("connection reset"))
			},
			wantKind:  kindPtr(infra.KindDBFailure),
			wantError: true,
		},
		{
			name: "child query failure",
			setup: func(m *MockConflictReadQueries) {
				m.On("GetConflictRecordByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)
				m.On("ListConflictIncumbents", mock.Anything, mock.Anything, mock.Anything).
					Return([]sqlc.ConflictIncumbent(nil), errors.New("timeout"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockConflictReadQueries)
			tt.setup(m)
			store := NewConflictReadStore(m, nil)

			got, err := store.FindByID(context.Background(), row.ID)

			if tt.wantError {
				require.Error(t, err)
				if tt.wantKind != nil {
					assert.True(t, infra.IsKind(err, *tt.wantKind))
				}
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, row.ID, got.ID())
				assert.Equal(t, []uuid.UUID{incumbentID}, got.IncumbentIDs())
				require.Len(t, got.Participants(), 1)
				assert.Equal(t, responder, got.Participants()[0].UserID)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestConflictReadStore_ListOpen(t *testing.T) {
	resourceID := uuid.New()
	viewer := uuid.New()
	after := builder.BaseTime
	afterID := uuid.New()

	t.Run("query maps onto nullable params", func(t *testing.T) {
		m := new(MockConflictReadQueries)
		want := sqlc.ListOpenConflictsParams{
			ResourceID:     pgconv.UUIDToPgtype(resourceID),
			InvolvedUserID: pgconv.UUIDToPgtype(viewer),
			AfterCreatedAt: pgconv.TimeToPgtype(after),
			AfterID:        pgconv.UUIDToPgtype(afterID),
			RowLimit:       21,
		}
		m.On("ListOpenConflicts", mock.Anything, mock.Anything, want).Return([]sqlc.ConflictRecord{}, nil)

		got, err := NewConflictReadStore(m, nil).ListOpen(context.Background(), queries.OpenConflictQuery{
			ResourceID:     &resourceID,
			InvolvedUserID: &viewer,
			AfterCreatedAt: &after,
			AfterID:        &afterID,
			Limit:          21,
		})
		require.NoError(t, err)
		assert.Empty(t, got)
		m.AssertExpectations(t)
		m.AssertNotCalled(t, "ListConflictIncumbents", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unset filters stay null", func(t *testing.T) {
		m := new(MockConflictReadQueries)
		m.On("ListOpenConflicts", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.ListOpenConflictsParams) bool {
			return !p.ResourceID.Valid && !p.InvolvedUserID.Valid && !p.AfterCreatedAt.Valid && p.RowLimit == 5
		})).Return([]sqlc.ConflictRecord{}, nil)

		_, err := NewConflictReadStore(m, nil).ListOpen(context.Background(), queries.OpenConflictQuery{Limit: 5})
		require.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("list failure", func(t *testing.T) {
		m := new(MockConflictReadQueries)
		m.On("ListOpenConflicts", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.ConflictRecord(nil), errors.New("boom"))

		_, err := NewConflictReadStore(m, nil).ListOpen(context.Background(), queries.OpenConflictQuery{Limit: 5})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestConflictReadStore_ListExpiredCounterOffers(t *testing.T) {
	params := sqlc.ListExpiredCounterOffersParams{Now: pgconv.TimeToPgtype(builder.BaseTime), RowLimit: 50}

	t.Run("rows pass through", func(t *testing.T) {
		m := new(MockConflictReadQueries)
		row := sqlc.ListExpiredCounterOffersRow{ID: uuid.New(), ResourceID: uuid.New(), State: string(conflict.StateCounterOfferMade)}
		m.On("ListExpiredCounterOffers", mock.Anything, mock.Anything, params).
			Return([]sqlc.ListExpiredCounterOffersRow{row}, nil)

		got, err := NewConflictReadStore(m, nil).ListExpiredCounterOffers(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, []sqlc.ListExpiredCounterOffersRow{row}, got)
	})

	t.Run("query failure", func(t *testing.T) {
		m := new(MockConflictReadQueries)
		m.On("ListExpiredCounterOffers", mock.Anything, mock.Anything, params).
			Return([]sqlc.ListExpiredCounterOffersRow(nil), errors.New("boom"))

		_, err := NewConflictReadStore(m, nil).ListExpiredCounterOffers(context.Background(), params)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func kindPtr(k infra.RepositoryErrorKind) *infra.RepositoryErrorKind {
	return &k
}
