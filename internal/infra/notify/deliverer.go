package notify

import (
	"context"
	"log/slog"
	"time"

	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
)

const (
	channelPrefix = "coshare:notifications:"
	sentKeyPrefix = "coshare:notification-sent:"
)

// RedisPublisher is the subset of *redis.Client the deliverer needs.
type RedisPublisher interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisDeliverer publishes each job on a per-topic channel. A job is published at most once per
// dedupe TTL even when the relay retries it after a lost MarkSent.
type RedisDeliverer struct {
	client RedisPublisher
	ttl    time.Duration
}

func NewRedisDeliverer(client RedisPublisher, ttl time.Duration) *RedisDeliverer {
	return &RedisDeliverer{client: client, ttl: ttl}
}

func (d *RedisDeliverer) Deliver(ctx context.Context, job shared.NotificationJob) error {
	key := sentKeyPrefix + job.ID.String()
	first, err := d.client.SetNX(ctx, key, "1", d.ttl).Result()
	if err != nil {
		return errs.Wrap(err, "failed to claim notification dedupe key")
	}
	if !first {
		slog.DebugContext(ctx, "notification already delivered", "job_id", job.ID, "topic", job.Topic)
		return nil
	}

	if err := d.client.Publish(ctx, channelPrefix+job.Topic, job.Payload).Err(); err != nil {
		// release the key so the retry can publish
		if delErr := d.client.Del(ctx, key).Err(); delErr != nil {
			slog.WarnContext(ctx, "failed to release notification dedupe key", "job_id", job.ID, "error", delErr.Error())
		}
		return errs.Wrap(err, "failed to publish notification")
	}
	return nil
}

// LogDeliverer writes notifications to the structured log. It is used when redis is not configured.
type LogDeliverer struct {
	logger *slog.Logger
}

func NewLogDeliverer(logger *slog.Logger) *LogDeliverer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDeliverer{logger: logger}
}

func (d *LogDeliverer) Deliver(ctx context.Context, job shared.NotificationJob) error {
	d.logger.InfoContext(ctx, "notification",
		"job_id", job.ID,
		"kind", job.Kind,
		"topic", job.Topic,
		"payload", string(job.Payload))
	return nil
}

var (
	_ shared.Deliverer = (*RedisDeliverer)(nil)
	_ shared.Deliverer = (*LogDeliverer)(nil)
)
