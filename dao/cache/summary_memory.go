package cache

import (
	"Kudos/types"
	"context"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// MemorySummaryCache 进程内的反应汇总缓存，多实例部署时依赖广播消息失效
type MemorySummaryCache struct {
	items cmap.ConcurrentMap[string, []*types.ReactionSummary]
}

func NewMemorySummaryCache() *MemorySummaryCache {
	return &MemorySummaryCache{items: cmap.New[[]*types.ReactionSummary]()}
}

func (m *MemorySummaryCache) Get(_ context.Context, key string) ([]*types.ReactionSummary, bool, error) {
	val, ok := m.items.Get(key)
	return val, ok, nil
}

func (m *MemorySummaryCache) Set(_ context.Context, key string, summary []*types.ReactionSummary) error {
	m.items.Set(key, summary)
	return nil
}

func (m *MemorySummaryCache) Invalidate(_ context.Context, key string) error {
	m.items.Remove(key)
	return nil
}

func (m *MemorySummaryCache) Count() int {
	return m.items.Count()
}
