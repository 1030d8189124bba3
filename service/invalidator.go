package service

import (
	"Kudos/models"
	"Kudos/pkg/log"
	"context"
	"errors"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var ErrInvalidEvent = errors.New("invalid reaction event")

// CacheInvalidator 消费广播的反应事件，删除本进程缓存的汇总。
// 本进程发出的事件同样处理：Set 第一步删除之后、写库之前的读请求可能把旧汇总写回缓存
type CacheInvalidator struct {
	Cache SummaryCache
}

func NewCacheInvalidator(cache SummaryCache) *CacheInvalidator {
	return &CacheInvalidator{Cache: cache}
}

// Handle 处理一条消息体，格式不正确的消息直接丢弃
func (c *CacheInvalidator) Handle(ctx context.Context, body []byte) error {
	if !gjson.ValidBytes(body) {
		log.L.Warn("drop invalid reaction event", zap.ByteString("body", body))
		return nil
	}
	fields := gjson.GetManyBytes(body, "parent_type", "parent_id", "origin")
	parentType := models.ParentType(fields[0].String())
	parentID := fields[1].Int()
	if !parentType.Valid() || parentID <= 0 {
		log.L.Warn("drop reaction event", zap.Error(ErrInvalidEvent), zap.ByteString("body", body))
		return nil
	}

	key := SummaryKey(parentType, parentID)
	if err := c.Cache.Invalidate(ctx, key); err != nil {
		return err
	}
	log.L.Debug("reaction summary invalidated", zap.String("key", key), zap.String("origin", fields[2].String()))
	return nil
}
