package dao

import (
	"Kudos/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// GetByID 根据ID获取评论
func (d *Comment) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// SetUserScore 同讨论，总分写回 comments.score
func (d *Comment) SetUserScore(ctx context.Context, commentID int64, userID int64, score int) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "comment_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score"}),
		}).Create(&models.UserComment{CommentID: commentID, UserID: userID, Score: score}).Error
		if err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&models.UserComment{}).
			Select("COALESCE(SUM(score), 0)").
			Where("comment_id = ?", commentID).
			Row().Scan(&total); err != nil {
			return err
		}

		return tx.Model(&models.Comment{}).
			Where("comment_id = ?", commentID).
			Update("score", total).Error
	})
}
