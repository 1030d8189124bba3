package service

import (
	"Kudos/dao"
	"Kudos/models"
	"context"
)

// ItemScorer 记录用户对内容的打分
type ItemScorer interface {
	SetUserScore(ctx context.Context, itemID int64, userID int64, score int) error
}

// ItemScorers 只有讨论和评论参与打分
type ItemScorers struct {
	Discussion ItemScorer
	Comment    ItemScorer
}

func NewItemScorers(discussion *dao.Discussion, comment *dao.Comment) *ItemScorers {
	return &ItemScorers{Discussion: discussion, Comment: comment}
}

// For 返回内容类型对应的打分器，不支持时返回 nil
func (s *ItemScorers) For(parentType models.ParentType) ItemScorer {
	if s == nil {
		return nil
	}
	switch parentType {
	case models.ParentDiscussion:
		return s.Discussion
	case models.ParentComment:
		return s.Comment
	}
	return nil
}
