package service

import (
	"Kudos/dao"
	"Kudos/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrParentNotFound = errors.New("content not found")
	ErrSelfReaction   = errors.New("cannot react to your own content")
)

// ParentService 查询被反应内容的作者
type ParentService struct {
	DiscussionDAO *dao.Discussion
	CommentDAO    *dao.Comment
	ActivityDAO   *dao.Activity
}

var _ IParentService = (*ParentService)(nil)

type IParentService interface {
	AuthorOf(ctx context.Context, parentType models.ParentType, parentID int64) (int64, error)
}

// AuthorOf 动态的作者是 activity_user_id
func (s *ParentService) AuthorOf(ctx context.Context, parentType models.ParentType, parentID int64) (int64, error) {
	var (
		author int64
		err    error
	)
	switch parentType {
	case models.ParentDiscussion:
		var item *models.Discussion
		if item, err = s.DiscussionDAO.GetByID(ctx, parentID); err == nil {
			author = item.InsertUserID
		}
	case models.ParentComment:
		var item *models.Comment
		if item, err = s.CommentDAO.GetByID(ctx, parentID); err == nil {
			author = item.InsertUserID
		}
	case models.ParentActivity:
		var item *models.Activity
		if item, err = s.ActivityDAO.GetByID(ctx, parentID); err == nil {
			author = item.ActivityUserID
		}
	default:
		return 0, ErrParentNotFound
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrParentNotFound
	}
	return author, err
}
