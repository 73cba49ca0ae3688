//go:build unit

package notify_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"coshare-scheduler/internal/infra/notify"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	keys       map[string]time.Duration
	published  map[string][][]byte
	publishErr error
	setErr     error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{keys: map[string]time.Duration{}, published: map[string][][]byte{}}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, _ interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}
	if _, ok := f.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	if f.publishErr != nil {
		return redis.NewIntResult(0, f.publishErr)
	}
	f.published[channel] = append(f.published[channel], message.([]byte))
	return redis.NewIntResult(1, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.keys, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func job(topic string) shared.NotificationJob {
	return shared.NotificationJob{
		ID:      uuid.New(),
		Kind:    "stakeholder",
		Topic:   topic,
		Payload: []byte(`{"state":"approved"}`),
	}
}

func TestRedisDeliverer(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes once per job", func(t *testing.T) {
		client := newFakeRedis()
		d := notify.NewRedisDeliverer(client, time.Hour)
		j := job("conflict.resolved")

		require.NoError(t, d.Deliver(ctx, j))
		require.NoError(t, d.Deliver(ctx, j))

		assert.Len(t, client.published["coshare:notifications:conflict.resolved"], 1)
		assert.Equal(t, time.Hour, client.keys["coshare:notification-sent:"+j.ID.String()])
	})

	t.Run("failed publish releases the dedupe key", func(t *testing.T) {
		client := newFakeRedis()
		client.publishErr = errors.New("connection reset")
		d := notify.NewRedisDeliverer(client, time.Hour)
		j := job("reservation.confirmed")

		require.Error(t, d.Deliver(ctx, j))
		assert.Empty(t, client.keys)

		client.publishErr = nil
		require.NoError(t, d.Deliver(ctx, j))
		assert.Len(t, client.published["coshare:notifications:reservation.confirmed"], 1)
	})

	t.Run("dedupe failure is returned", func(t *testing.T) {
		client := newFakeRedis()
		client.setErr = errors.New("READONLY")
		err := notify.NewRedisDeliverer(client, time.Hour).Deliver(ctx, job("conflict.opened"))
		require.Error(t, err)
		assert.Empty(t, client.published)
	})
}

func TestLogDeliverer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	j := job("conflict.counter_offer")

	require.NoError(t, notify.NewLogDeliverer(logger).Deliver(context.Background(), j))
	assert.Contains(t, buf.String(), `"topic":"conflict.counter_offer"`)
	assert.Contains(t, buf.String(), j.ID.String())
}
