package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"turnos/queue-service/internal/constant"
	"turnos/queue-service/internal/domain"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	fieldSubmitted = "submitted"
	fieldServed    = "served"
)

// RedisStatsRepository stores cumulative counters in a hash at <prefix>:total
// with fields like "served:urgent", and per-minute served buckets that expire.
type RedisStatsRepository struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisStatsRepository(rdb *redis.Client) *RedisStatsRepository {
	return &RedisStatsRepository{
		rdb:    rdb,
		prefix: constant.RedisStatsPrefix,
		ttl:    constant.RedisStatsBucketTTL,
		now:    time.Now,
	}
}

func (r *RedisStatsRepository) RecordSubmitted(ctx context.Context, turn domain.Turn) error {
	return r.record(ctx, fieldSubmitted, turn.Priority)
}

func (r *RedisStatsRepository) RecordServed(ctx context.Context, turn domain.Turn) error {
	return r.record(ctx, fieldServed, turn.Priority)
}

func (r *RedisStatsRepository) record(ctx context.Context, kind string, priority domain.Priority) error {
	ctx, cancel := context.WithTimeout(ctx, constant.RedisStatsTimeout)
	defer cancel()

	field := kind + ":" + string(priority)

	pipe := r.rdb.Pipeline()
	pipe.HIncrBy(ctx, r.totalKey(), field, 1)

	if kind == fieldServed {
		bucketKey := fmt.Sprintf("%s:minute:%s", r.prefix, r.now().UTC().Format("200601021504"))
		pipe.HIncrBy(ctx, bucketKey, field, 1)
		pipe.Expire(ctx, bucketKey, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to record %s stats", kind)
	}
	return nil
}

func (r *RedisStatsRepository) GetStats(ctx context.Context) (domain.QueueStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.RedisStatsTimeout)
	defer cancel()

	raw, err := r.rdb.HGetAll(ctx, r.totalKey()).Result()
	if err != nil {
		return domain.QueueStats{}, errors.Wrap(err, "failed to read stats")
	}

	return parseStats(raw), nil
}

func (r *RedisStatsRepository) totalKey() string {
	return r.prefix + ":total"
}

func parseStats(raw map[string]string) domain.QueueStats {
	var stats domain.QueueStats
	get := func(field string) int64 {
		n, _ := strconv.ParseInt(raw[field], 10, 64)
		return n
	}

	stats.Submitted.Normal = get(fieldSubmitted + ":" + string(domain.PriorityNormal))
	stats.Submitted.Urgent = get(fieldSubmitted + ":" + string(domain.PriorityUrgent))
	stats.Served.Normal = get(fieldServed + ":" + string(domain.PriorityNormal))
	stats.Served.Urgent = get(fieldServed + ":" + string(domain.PriorityUrgent))
	return stats
}
