package cache

import (
	"Kudos/types"
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const DefaultSummaryPrefix = "reaction:summary:"

// RedisSummaryCache 多实例共享的汇总缓存，不设过期时间，只在写入时删除
type RedisSummaryCache struct {
	redis  *redis.Client
	prefix string
}

func NewRedisSummaryCache(rds *redis.Client, prefix string) *RedisSummaryCache {
	if prefix == "" {
		prefix = DefaultSummaryPrefix
	}
	return &RedisSummaryCache{redis: rds, prefix: prefix}
}

func (r *RedisSummaryCache) name(key string) string {
	return r.prefix + key
}

func (r *RedisSummaryCache) Get(ctx context.Context, key string) ([]*types.ReactionSummary, bool, error) {
	val, err := r.redis.Get(ctx, r.name(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var summary []*types.ReactionSummary
	if err := json.Unmarshal(val, &summary); err != nil {
		return nil, false, err
	}
	return summary, true, nil
}

func (r *RedisSummaryCache) Set(ctx context.Context, key string, summary []*types.ReactionSummary) error {
	val, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, r.name(key), val, 0).Err()
}

func (r *RedisSummaryCache) Invalidate(ctx context.Context, key string) error {
	return r.redis.Del(ctx, r.name(key)).Err()
}
