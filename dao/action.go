package dao

import (
	"Kudos/models"
	"context"

	"gorm.io/gorm"
)

type ActionDAO struct {
	Repo[models.Action]
}

func NewActionDAO(db *gorm.DB) *ActionDAO {
	return &ActionDAO{Repo: NewRepo[models.Action](db)}
}

func (d *ActionDAO) GetAll(ctx context.Context) ([]*models.Action, error) {
	var items []*models.Action
	err := d.Db.WithContext(ctx).Order("sort ASC, action_id ASC").Find(&items).Error
	return items, err
}

// GetByID 不存在时返回 gorm.ErrRecordNotFound
func (d *ActionDAO) GetByID(ctx context.Context, actionID int64) (*models.Action, error) {
	return d.FindByWhere(ctx, "action_id = ?", actionID)
}
