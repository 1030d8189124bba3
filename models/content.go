package models

// Discussion 讨论，score 为所有用户打分之和
type Discussion struct {
	DiscussionID int64 `gorm:"column:discussion_id;primaryKey;autoIncrement" json:"discussion_id"`
	InsertUserID int64 `gorm:"column:insert_user_id;not null;index:idx_discussions_insert_user" json:"insert_user_id"`
	Score        int   `gorm:"column:score;not null" json:"score"`
}

func (Discussion) TableName() string { return "discussions" }

// Comment 评论
type Comment struct {
	CommentID    int64 `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	DiscussionID int64 `gorm:"column:discussion_id;not null;index:idx_comments_discussion" json:"discussion_id"`
	InsertUserID int64 `gorm:"column:insert_user_id;not null;index:idx_comments_insert_user" json:"insert_user_id"`
	Score        int   `gorm:"column:score;not null" json:"score"`
}

func (Comment) TableName() string { return "comments" }

// Activity 动态，activity_user_id 是动态归属的用户
type Activity struct {
	ActivityID     int64 `gorm:"column:activity_id;primaryKey;autoIncrement" json:"activity_id"`
	ActivityUserID int64 `gorm:"column:activity_user_id;not null" json:"activity_user_id"`
	InsertUserID   int64 `gorm:"column:insert_user_id;not null" json:"insert_user_id"`
}

func (Activity) TableName() string { return "activities" }

// UserDiscussion 单个用户对讨论的打分
type UserDiscussion struct {
	DiscussionID int64 `gorm:"column:discussion_id;primaryKey;autoIncrement:false" json:"discussion_id"`
	UserID       int64 `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	Score        int   `gorm:"column:score;not null" json:"score"`
}

func (UserDiscussion) TableName() string { return "user_discussions" }

// UserComment 单个用户对评论的打分
type UserComment struct {
	CommentID int64 `gorm:"column:comment_id;primaryKey;autoIncrement:false" json:"comment_id"`
	UserID    int64 `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	Score     int   `gorm:"column:score;not null" json:"score"`
}

func (UserComment) TableName() string { return "user_comments" }
