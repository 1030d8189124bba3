package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserPoint struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	UserID      int64     `gorm:"column:user_id;uniqueIndex"`
	Balance     int64     `gorm:"column:balance;not null"`
	TotalEarned int64     `gorm:"column:total_earned;not null"`
	TotalUsed   int64     `gorm:"column:total_used;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (UserPoint) TableName() string {
	return "user_points"
}

// 积分变动类型
const (
	TypeReactionAward  = 1 // 内容收到反应
	TypeReactionRevoke = 2 // 反应被撤销或降级
)

// 积分流水状态
const StatusPosted = 1

type PointsLog struct {
	ID         uint64            `gorm:"primaryKey;column:id"`
	UserID     int64             `gorm:"column:user_id;index:idx_point_logs_user"`
	Amount     int64             `gorm:"column:amount"`  // 变动数额（正负）
	Balance    int64             `gorm:"column:balance"` // 变动后余额
	ChangeType int8              `gorm:"column:change_type"`
	Status     int8              `gorm:"column:status"`
	SourceID   string            `gorm:"column:source_id;index:idx_source_id;size:64"`
	Remark     string            `gorm:"column:remark;size:255"`
	Meta       datatypes.JSONMap `gorm:"column:meta"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
}

func (PointsLog) TableName() string {
	return "point_logs"
}
