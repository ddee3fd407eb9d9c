package cachez

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adobaai/underbar/encodingz/jsonz"
)

// Redis is a [Cache] shared through a Redis server.
//
// Keys are stored as prefix + fmt.Sprint(k) and values as JSON.
// A failed round trip is logged and reported as a miss.
type Redis[K comparable, V any] struct {
	rdb     redis.UniversalClient
	prefix  string
	ttl     time.Duration
	timeout time.Duration
	log     *slog.Logger
}

func NewRedis[K comparable, V any](rdb redis.UniversalClient, prefix string, opts ...Option) *Redis[K, V] {
	no := buildOptions(opts)
	return &Redis[K, V]{
		rdb:     rdb,
		prefix:  prefix,
		ttl:     no.ttl,
		timeout: no.timeout,
		log:     no.logger,
	}
}

func (r *Redis[K, V]) Key(k K) string {
	return r.prefix + fmt.Sprint(k)
}

func (r *Redis[K, V]) Get(k K) (v V, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	key := r.Key(k)
	bs, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return
	}
	if err != nil {
		r.log.WarnContext(ctx, "get", "key", key, "err", err)
		return
	}
	if v, err = jsonz.Decode[V](bs); err != nil {
		r.log.WarnContext(ctx, "decode", "key", key, "err", err)
		return v, false
	}
	return v, true
}

func (r *Redis[K, V]) Set(k K, v V) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	key := r.Key(k)
	bs, err := json.Marshal(v)
	if err != nil {
		r.log.WarnContext(ctx, "encode", "key", key, "err", err)
		return
	}
	if err := r.rdb.Set(ctx, key, bs, r.ttl).Err(); err != nil {
		r.log.WarnContext(ctx, "set", "key", key, "err", err)
	}
}
