package dao

import (
	"Kudos/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ReactionDAO struct {
	Repo[models.Reaction]
}

func NewReactionDAO(db *gorm.DB) *ReactionDAO {
	return &ReactionDAO{Repo: NewRepo[models.Reaction](db)}
}

// GetByUser 用户在某条内容上的反应，没有返回 nil, nil
func (d *ReactionDAO) GetByUser(ctx context.Context, parentID int64, parentType models.ParentType, userID int64) (*models.Reaction, error) {
	var item models.Reaction
	err := d.Db.WithContext(ctx).
		Where("parent_id = ? AND parent_type = ? AND insert_user_id = ?", parentID, parentType, userID).
		Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// ListByParent 某条内容上的全部反应，按 id 正序
func (d *ReactionDAO) ListByParent(ctx context.Context, parentID int64, parentType models.ParentType) ([]*models.Reaction, error) {
	var items []*models.Reaction
	err := d.Db.WithContext(ctx).
		Where("parent_id = ? AND parent_type = ?", parentID, parentType).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// CountByParentAuthor 用户的内容累计收到某种反应的次数
func (d *ReactionDAO) CountByParentAuthor(ctx context.Context, authorID int64, actionID int64) (int64, error) {
	return d.FindCount(ctx, "action_id = ? AND parent_author_id = ?", actionID, authorID)
}

func (d *ReactionDAO) Insert(ctx context.Context, item *models.Reaction) error {
	return d.Db.WithContext(ctx).Create(item).Error
}

// UpdateAction 原地修改反应类型和时间，返回影响行数
func (d *ReactionDAO) UpdateAction(ctx context.Context, parentID int64, parentType models.ParentType, userID int64, actionID int64, at time.Time) (int64, error) {
	result := d.Db.WithContext(ctx).Model(&models.Reaction{}).
		Where("parent_id = ? AND parent_type = ? AND insert_user_id = ?", parentID, parentType, userID).
		Updates(map[string]interface{}{
			"action_id":     actionID,
			"date_inserted": at,
		})
	return result.RowsAffected, result.Error
}

// Delete 删除用户在内容上的指定反应
func (d *ReactionDAO) Delete(ctx context.Context, parentID int64, parentType models.ParentType, userID int64, actionID int64) (int64, error) {
	result := d.Db.WithContext(ctx).
		Where("parent_id = ? AND parent_type = ? AND insert_user_id = ? AND action_id = ?", parentID, parentType, userID, actionID).
		Delete(&models.Reaction{})
	return result.RowsAffected, result.Error
}
