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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_ClaimPending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	id := uuid.New()
	mockQueries.EXPECT().
		ClaimPendingNotificationJobs(ctx, mockDB, sqlc.ClaimPendingNotificationJobsParams{
			Now:      pgconv.TimeToPgtype(builder.BaseTime),
			RowLimit: 50,
		}).
		Return([]sqlc.ClaimPendingNotificationJobsRow{{
			ID:       id,
			Kind:     "stakeholder",
			Topic:    "conflict.opened",
			Payload:  []byte(`{"user_id":"x"}`),
			RunAt:    pgconv.TimeToPgtype(builder.BaseTime),
			Attempts: 2,
		}}, nil)

	jobs, err := repo.ClaimPending(ctx, builder.BaseTime, 50)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, id, jobs[0].ID)
	assert.Equal(t, "conflict.opened", jobs[0].Topic)
	assert.Equal(t, int32(2), jobs[0].Attempts)
	assert.True(t, builder.BaseTime.Equal(jobs[0].RunAt))
}

func TestNotificationRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	retryAt := builder.BaseTime.Add(time.Minute)

	t.Run("success: passes the attempt limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().
			MarkNotificationJobFailed(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error {
				assert.Equal(t, id, arg.ID)
				assert.Equal(t, int32(repository.MaxNotificationAttempts), arg.MaxAttempts)
				assert.Equal(t, "redis down", arg.LastError.String)
				assert.True(t, retryAt.Equal(arg.RetryAt.Time))
				return nil
			})

		require.NoError(t, repository.NewNotificationRepository(mockQueries, mockDB).MarkFailed(ctx, id, "redis down", retryAt))
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().MarkNotificationJobFailed(ctx, mockDB, gomock.Any()).Return(errors.New("gone"))

		err := repository.NewNotificationRepository(mockQueries, mockDB).MarkFailed(ctx, id, "redis down", retryAt)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
