package dao

import (
	"Kudos/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Discussion struct {
	Repo[models.Discussion]
}

func NewDiscussion(db *gorm.DB) *Discussion {
	return &Discussion{Repo: NewRepo[models.Discussion](db)}
}

func (d *Discussion) GetByID(ctx context.Context, discussionID int64) (*models.Discussion, error) {
	return d.FindByWhere(ctx, "discussion_id = ?", discussionID)
}

// SetUserScore 记录用户对讨论的打分，并把总分写回 discussions.score
func (d *Discussion) SetUserScore(ctx context.Context, discussionID int64, userID int64, score int) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := &models.UserDiscussion{DiscussionID: discussionID, UserID: userID, Score: score}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "discussion_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score"}),
		}).Create(row).Error
		if err != nil {
			return err
		}

		var total int64
		err = tx.Model(&models.UserDiscussion{}).
			Select("COALESCE(SUM(score), 0)").
			Where("discussion_id = ?", discussionID).
			Row().Scan(&total)
		if err != nil {
			return err
		}

		return tx.Model(&models.Discussion{}).
			Where("discussion_id = ?", discussionID).
			Update("score", total).Error
	})
}
