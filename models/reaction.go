package models

import "time"

type ParentType string

const (
	ParentDiscussion ParentType = "discussion"
	ParentComment    ParentType = "comment"
	ParentActivity   ParentType = "activity"
)

// Valid 只有讨论、评论、动态可以被 react
func (t ParentType) Valid() bool {
	switch t {
	case ParentDiscussion, ParentComment, ParentActivity:
		return true
	}
	return false
}

// Reaction 用户对内容的反应记录
// 对应表 reactions
// 唯一键: parent_id + parent_type + insert_user_id
type Reaction struct {
	ID             uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ActionID       int64      `gorm:"column:action_id;not null;index:idx_parent_author_action,priority:2" json:"action_id"`
	ParentID       int64      `gorm:"column:parent_id;not null;uniqueIndex:uk_parent_user,priority:1" json:"parent_id"`
	ParentType     ParentType `gorm:"column:parent_type;size:20;not null;uniqueIndex:uk_parent_user,priority:2" json:"parent_type"`
	ParentAuthorID int64      `gorm:"column:parent_author_id;not null;index:idx_parent_author_action,priority:1" json:"parent_author_id"`
	InsertUserID   int64      `gorm:"column:insert_user_id;not null;uniqueIndex:uk_parent_user,priority:3" json:"insert_user_id"`
	DateInserted   time.Time  `gorm:"column:date_inserted;not null" json:"date_inserted"`
}

func (Reaction) TableName() string { return "reactions" }
