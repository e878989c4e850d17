package sortedstorage

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisSortedQueue is a capacity bounded sorted set in Redis with TTL support.
type RedisSortedQueue struct {
	client   *redis.Client
	locker   *redsync.Redsync
	capacity int64
	ttl      time.Duration
}

// NewRedisSortedQueue initializes a RedisSortedQueue keeping at most capacity
// members per key. A non-positive capacity means unbounded. A key expires
// ttlSeconds after its latest Enqueue; a non-positive ttlSeconds disables expiry.
func NewRedisSortedQueue(client *redis.Client, capacity int, ttlSeconds int) *RedisSortedQueue {
	queue := &RedisSortedQueue{
		client:   client,
		capacity: int64(capacity),
		ttl:      time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	queue.locker = redsync.New(pool)
	return queue
}

// Enqueue adds a member to the sorted queue with a given score and evicts the
// lowest scored members beyond capacity.
func (rsq *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member string) error {
	mutex := rsq.locker.NewMutex(queueKey + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if err := rsq.client.ZAdd(ctx, queueKey, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return err
	}

	// The expiry slides with every write so an active queue never lapses.
	if rsq.ttl > 0 {
		if err := rsq.client.Expire(ctx, queueKey, rsq.ttl).Err(); err != nil {
			return err
		}
	}

	if rsq.capacity <= 0 {
		return nil
	}

	size, err := rsq.client.ZCard(ctx, queueKey).Result()
	if err != nil {
		return err
	}
	if excess := size - rsq.capacity; excess > 0 {
		return rsq.client.ZPopMin(ctx, queueKey, excess).Err()
	}
	return nil
}

// Tops returns up to amount members with the highest scores, highest first.
func (rsq *RedisSortedQueue) Tops(ctx context.Context, queueKey string, amount int64) ([]string, error) {
	if amount <= 0 {
		return nil, nil
	}
	return rsq.client.ZRevRange(ctx, queueKey, 0, amount-1).Result()
}

// Count returns the number of members in the sorted queue.
func (rsq *RedisSortedQueue) Count(ctx context.Context, queueKey string) int64 {
	return rsq.client.ZCard(ctx, queueKey).Val()
}
