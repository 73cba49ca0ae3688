//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coshare-scheduler/internal/infra"
	"coshare-scheduler/internal/infra/repository"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/pgconv"
	"coshare-scheduler/tests/common/builder"
	repositorymock "coshare-scheduler/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	key, userID := uuid.New(), uuid.New()
	expiresAt := builder.BaseTime.Add(24 * time.Hour)

	testCases := []struct {
		name     string
		affected int64
		dbErr    error
		want     bool
		wantErr  bool
	}{
		{name: "success: key claimed", affected: 1, want: true},
		{name: "success: key already held", affected: 0, want: false},
		{name: "error: database failure", dbErr: errors.New("timeout"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().
				TryInsertIdempotencyKey(ctx, mockDB, sqlc.TryInsertIdempotencyKeyParams{
					Key:         key,
					UserID:      userID,
					Endpoint:    "POST /reservations",
					RequestHash: "abc123",
					ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
				}).
				Return(tc.affected, tc.dbErr)

			got, err := repo.TryInsert(ctx, key, userID, "POST /reservations", "abc123", expiresAt)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIdempotencyRepository_Get(t *testing.T) {
	ctx := context.Background()
	key, userID, resID := uuid.New(), uuid.New(), uuid.New()

	t.Run("success: completed key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().
			GetIdempotencyKey(ctx, mockDB, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID}).
			Return(sqlc.IdempotencyKey{
				Key:                 key,
				UserID:              userID,
				Endpoint:            "POST /reservations",
				RequestHash:         "abc123",
				Status:              "completed",
				ResultReservationID: pgconv.UUIDToPgtype(resID),
				ExpiresAt:           pgconv.TimeToPgtype(builder.BaseTime),
			}, nil)

		got, err := repository.NewIdempotencyRepository(mockQueries, mockDB).Get(ctx, key, userID)
		require.NoError(t, err)
		require.NotNil(t, got.ResultReservationID)
		assert.Equal(t, resID, *got.ResultReservationID)
		assert.Nil(t, got.ResultConflictID)
		assert.Equal(t, "completed", got.Status)
	})

	t.Run("error: missing key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetIdempotencyKey(ctx, mockDB, gomock.Any()).Return(sqlc.IdempotencyKey{}, pgx.ErrNoRows)

		_, err := repository.NewIdempotencyRepository(mockQueries, mockDB).Get(ctx, key, userID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
