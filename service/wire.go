package service

import (
	"Kudos/config"
	"Kudos/dao"
	"Kudos/dao/cache"
	"Kudos/pkg/client"

	"github.com/google/wire"
	"github.com/jonboulle/clockwork"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ReactionService), "*"),
	wire.Bind(new(IReactionService), new(*ReactionService)),

	wire.Struct(new(PointService), "*"),
	wire.Bind(new(IPointService), new(*PointService)),
	wire.Bind(new(PointsLedger), new(*PointService)),

	wire.Struct(new(ParentService), "*"),
	wire.Bind(new(IParentService), new(*ParentService)),

	wire.Bind(new(ReactionStore), new(*dao.ReactionDAO)),
	wire.Bind(new(ActionLookup), new(*dao.ActionDAO)),
	wire.Bind(new(EventBus), new(*Bus)),

	NewItemScorers,
	NewEventBus,
	NewSummaryCache,
	NewCacheInvalidator,
	NewClock,
)

// NewSummaryCache 按配置选择进程内缓存或 redis 缓存，只有 redis 驱动才会连接 redis
func NewSummaryCache(conf *config.Config) SummaryCache {
	if conf.Reaction.CacheDriver == config.CacheDriverRedis {
		return cache.NewRedisSummaryCache(client.NewRedisClient(conf), conf.Reaction.CachePrefix)
	}
	return cache.NewMemorySummaryCache()
}

func NewClock() clockwork.Clock {
	return clockwork.NewRealClock()
}
