//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/infra/repository"
	"coshare-scheduler/internal/usecase/commands"
	"coshare-scheduler/internal/usecase/shared"
	"coshare-scheduler/tests/common/memstore"
	sharedmock "coshare-scheduler/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRelay(t *testing.T) {
	t.Run("delivers queued jobs and marks them sent", func(t *testing.T) {
		f := newFixture(t)
		f.confirmed(t, f.alice, 24, 3)
		queued := len(f.store.Jobs())
		require.Positive(t, queued)

		ctrl := gomock.NewController(t)
		deliverer := sharedmock.NewMockDeliverer(ctrl)
		deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(queued)

		relay := commands.NewNotificationUseCase(f.store, deliverer, f.clock)
		sent, err := relay.Relay(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, queued, sent)
		for _, j := range f.store.Jobs() {
			assert.Equal(t, memstore.JobSent, j.Status)
		}

		sent, err = relay.Relay(f.ctx)
		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("failed delivery is rescheduled with backoff", func(t *testing.T) {
		f := newFixture(t)
		f.confirmed(t, f.alice, 24, 3)
		jobs := f.store.JobsByTopic(commands.TopicReservationConfirmed)
		require.Len(t, jobs, 1)

		ctrl := gomock.NewController(t)
		deliverer := sharedmock.NewMockDeliverer(ctrl)
		deliverer.EXPECT().
			Deliver(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, job shared.NotificationJob) error {
				if job.Topic == commands.TopicReservationConfirmed {
					return errors.New("redis unavailable")
				}
				return nil
			}).
			AnyTimes()

		relay := commands.NewNotificationUseCase(f.store, deliverer, f.clock)
		_, err := relay.Relay(f.ctx)
		require.NoError(t, err)

		got := f.store.JobsByTopic(commands.TopicReservationConfirmed)[0]
		assert.Equal(t, memstore.JobQueued, got.Status)
		assert.Equal(t, int32(1), got.Attempts)
		assert.Equal(t, "redis unavailable", got.LastError)
		assert.Equal(t, f.clock.Now().Add(30*time.Second), got.RunAt)

		// not due yet
		_, err = relay.Relay(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(1), f.store.JobsByTopic(commands.TopicReservationConfirmed)[0].Attempts)

		f.clock.Add(30 * time.Second)
		_, err = relay.Relay(f.ctx)
		require.NoError(t, err)
		got = f.store.JobsByTopic(commands.TopicReservationConfirmed)[0]
		assert.Equal(t, int32(2), got.Attempts)
		assert.Equal(t, f.clock.Now().Add(60*time.Second), got.RunAt)
	})

	t.Run("job is parked after the attempt limit", func(t *testing.T) {
		f := newFixture(t)
		f.confirmed(t, f.alice, 24, 3)

		ctrl := gomock.NewController(t)
		deliverer := sharedmock.NewMockDeliverer(ctrl)
		deliverer.EXPECT().
			Deliver(gomock.Any(), gomock.Any()).
			Return(errors.New("redis unavailable")).
			Times(repository.MaxNotificationAttempts * len(f.store.Jobs()))

		relay := commands.NewNotificationUseCase(f.store, deliverer, f.clock)
		for range repository.MaxNotificationAttempts + 2 {
			sent, err := relay.Relay(f.ctx)
			require.NoError(t, err)
			assert.Zero(t, sent)
			f.clock.Add(time.Hour)
		}

		for _, j := range f.store.Jobs() {
			assert.Equal(t, memstore.JobDead, j.Status)
			assert.Equal(t, int32(repository.MaxNotificationAttempts), j.Attempts)
		}
	})

	t.Run("delivery failure leaves the reservation confirmed", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)

		ctrl := gomock.NewController(t)
		deliverer := sharedmock.NewMockDeliverer(ctrl)
		deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(errors.New("boom")).AnyTimes()

		_, err := commands.NewNotificationUseCase(f.store, deliverer, f.clock).Relay(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, f.status(res.ID()))
	})
}
