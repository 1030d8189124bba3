package dao

import (
	"Kudos/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Point struct {
	Repo[models.UserPoint]
}

func NewPoint(db *gorm.DB) *Point {
	return &Point{
		Repo: NewRepo[models.UserPoint](db),
	}
}

// WithTx 在事务中使用同一个 DAO
func (p *Point) WithTx(tx *gorm.DB) *Point {
	return &Point{Repo: NewRepo[models.UserPoint](tx)}
}

// Transaction 开启事务，fn 内使用传入的 DAO
func (p *Point) Transaction(ctx context.Context, fn func(tx *Point) error) error {
	return p.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(p.WithTx(tx))
	})
}

// GetAccount 获取账户信息，不存在返回 gorm.ErrRecordNotFound
func (p *Point) GetAccount(ctx context.Context, userID int64) (*models.UserPoint, error) {
	var account models.UserPoint
	err := p.Db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AddBalance 变动余额，账户不存在时自动开户
// 正数计入 total_earned，负数计入 total_used
func (p *Point) AddBalance(ctx context.Context, userID int64, amount int64) error {
	var earned, used int64
	if amount > 0 {
		earned = amount
	} else {
		used = -amount
	}
	account := &models.UserPoint{
		UserID:      userID,
		Balance:     amount,
		TotalEarned: earned,
		TotalUsed:   used,
	}
	return p.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			// gorm.Expr 保证了并发下的原子加减，避免数据覆盖
			"balance":      gorm.Expr("balance + ?", amount),
			"total_earned": gorm.Expr("total_earned + ?", earned),
			"total_used":   gorm.Expr("total_used + ?", used),
			"updated_at":   time.Now(),
		}),
	}).Create(account).Error
}

func (p *Point) CreatePointLog(ctx context.Context, log *models.PointsLog) error {
	return p.Db.WithContext(ctx).Create(log).Error
}

func filterAction(query *gorm.DB, action string) *gorm.DB {
	switch action {
	case "income":
		return query.Where("amount > ?", 0)
	case "expense":
		return query.Where("amount < ?", 0)
	}
	return query
}

// ListRecords 分页筛选查询
func (p *Point) ListRecords(ctx context.Context, userID int64, action string, cursor int64, limit int) ([]models.PointsLog, error) {
	var logs []models.PointsLog
	query := filterAction(p.Db.WithContext(ctx).Where("user_id = ?", userID), action)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
