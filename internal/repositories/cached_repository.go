package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"marketplace/internal/models"

	"github.com/redis/go-redis/v9"
)

// CachedRepository serves GetByID read-through from Redis and drops the
// cached entry after every successful mutation. Redis failures are logged
// and fall back to the wrapped repository.
type CachedRepository[T models.Record] struct {
	next   Repository[T]
	client *redis.Client
	ttl    time.Duration
	prefix string
	name   string
}

// NewCachedRepository wraps next with a Redis cache.
func NewCachedRepository[T models.Record](next Repository[T], client *redis.Client, prefix string, ttl time.Duration) *CachedRepository[T] {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedRepository[T]{
		next:   next,
		client: client,
		ttl:    ttl,
		prefix: prefix,
		name:   resourceName[T](),
	}
}

func (r *CachedRepository[T]) key(id int) string {
	return fmt.Sprintf("%s:%s:%d", r.prefix, r.name, id)
}

func (r *CachedRepository[T]) versionKey(id int) string {
	return r.key(id) + ":version"
}

// GetAll is never cached.
func (r *CachedRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.next.GetAll(ctx)
}

// GetByID returns the cached record when present, otherwise loads and caches it.
// The fill runs under WATCH on the record's version key, so a mutation that
// commits between the load and the fill aborts the write instead of caching
// a stale copy.
func (r *CachedRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	key := r.key(id)
	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var record T
		if jsonErr := json.Unmarshal(data, &record); jsonErr == nil {
			return &record, nil
		}
		log.Printf("Discarding undecodable cache entry %s", key)
	case !errors.Is(err, redis.Nil):
		log.Printf("Cache read failed for %s: %v", key, err)
	}

	var (
		record  *T
		loadErr error
		loaded  bool
	)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		record, loadErr = r.next.GetByID(ctx, id)
		loaded = true
		if loadErr != nil {
			return nil
		}
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}, r.versionKey(id))

	switch {
	case errors.Is(err, redis.TxFailedErr):
		log.Printf("Skipped cache fill for %s: record changed during load", key)
	case err != nil:
		log.Printf("Cache write failed for %s: %v", key, err)
	}
	if !loaded {
		return r.next.GetByID(ctx, id)
	}
	if loadErr != nil {
		return nil, loadErr
	}
	return record, nil
}

// Create inserts through the wrapped repository.
func (r *CachedRepository[T]) Create(ctx context.Context, record *T) error {
	if err := r.next.Create(ctx, record); err != nil {
		return err
	}
	r.invalidate(ctx, (*record).PrimaryKey())
	return nil
}

// Replace overwrites through the wrapped repository and evicts the cached copy.
func (r *CachedRepository[T]) Replace(ctx context.Context, record *T) error {
	if err := r.next.Replace(ctx, record); err != nil {
		return err
	}
	r.invalidate(ctx, (*record).PrimaryKey())
	return nil
}

// Delete removes through the wrapped repository and evicts the cached copy.
func (r *CachedRepository[T]) Delete(ctx context.Context, id int) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// invalidate bumps the version key, aborting in-flight fills, and drops the entry.
func (r *CachedRepository[T]) invalidate(ctx context.Context, id int) {
	version := r.versionKey(id)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, version)
		pipe.Expire(ctx, version, r.ttl)
		pipe.Del(ctx, r.key(id))
		return nil
	})
	if err != nil {
		log.Printf("Cache invalidation failed for %s: %v", r.key(id), err)
	}
}
