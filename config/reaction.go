package config

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Reaction 反应模块配置
type Reaction struct {
	CacheDriver           string `json:"cache_driver" yaml:"cache_driver"`
	CachePrefix           string `json:"cache_prefix" yaml:"cache_prefix"`
	EventTopic            string `json:"event_topic" yaml:"event_topic"`
	PointsReason          string `json:"points_reason" yaml:"points_reason"`
	BroadcastInvalidation bool   `json:"broadcast_invalidation" yaml:"broadcast_invalidation"`
}

func (r *Reaction) fillDefaults() {
	if r.CacheDriver == "" {
		r.CacheDriver = CacheDriverMemory
	}
	if r.CachePrefix == "" {
		r.CachePrefix = "reaction:summary:"
	}
	if r.EventTopic == "" {
		r.EventTopic = "FORUM_REACTION_EVENTS"
	}
	if r.PointsReason == "" {
		r.PointsReason = "Reaction"
	}
}
