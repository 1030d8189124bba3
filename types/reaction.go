package types

import (
	"Kudos/models"
	"time"
)

// ReactionSummary 某条内容上单个 action 的汇总，UserIDs 与 Dates 一一对应
type ReactionSummary struct {
	ActionID    int64       `json:"action_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Tooltip     string      `json:"tooltip"`
	CssClass    string      `json:"css_class"`
	AwardValue  int         `json:"award_value"`
	Permission  string      `json:"permission"`
	UserIDs     []int64     `json:"user_ids"`
	Dates       []time.Time `json:"dates"`
}

// ReactionEvent AfterReactionSave 事件参数
type ReactionEvent struct {
	EventID      int64             `json:"event_id,string"`
	ParentID     int64             `json:"parent_id"`
	ParentType   models.ParentType `json:"parent_type"`
	ParentUserID int64             `json:"parent_user_id"`
	InsertUserID int64             `json:"insert_user_id"`
	ActionID     int64             `json:"action_id"`
	Exists       bool              `json:"exists"`
	Origin       string            `json:"origin,omitempty"`
}

type ReactionOp string

const (
	OpInserted ReactionOp = "insert"
	OpUpdated  ReactionOp = "update"
	OpDeleted  ReactionOp = "delete"
)

// SetResult Set 对 reactions 表做的修改；删除时 Reaction 为删除前的记录
type SetResult struct {
	Op           ReactionOp       `json:"op"`
	RowsAffected int64            `json:"rows_affected"`
	Reaction     *models.Reaction `json:"reaction"`
	Exists       bool             `json:"exists"`
	Score        int              `json:"score"`
	Points       int              `json:"points"`
}

// SetReactionRequest 对内容做出反应
type SetReactionRequest struct {
	ParentType models.ParentType `json:"parent_type" binding:"required,oneof=discussion comment activity"`
	ParentID   int64             `json:"parent_id" binding:"required,gt=0"`
	ActionID   int64             `json:"action_id" binding:"required,gt=0"`
}

type SetReactionResponse struct {
	Op       ReactionOp `json:"op"`
	Exists   bool       `json:"exists"`
	ActionID int64      `json:"action_id"`
}

type SummaryItem struct {
	ParentType models.ParentType `json:"parent_type" binding:"required,oneof=discussion comment activity"`
	ParentID   int64             `json:"parent_id" binding:"required,gt=0"`
}

// BatchSummaryRequest 一次获取多条内容的汇总，渲染讨论页时使用
type BatchSummaryRequest struct {
	Items []SummaryItem `json:"items" binding:"required,min=1,max=50,dive"`
}

type ItemSummary struct {
	ParentType models.ParentType  `json:"parent_type"`
	ParentID   int64              `json:"parent_id"`
	Reactions  []*ReactionSummary `json:"reactions"`
}

type ReactionCountResponse struct {
	UserID   int64 `json:"user_id"`
	ActionID int64 `json:"action_id"`
	Count    int64 `json:"count"`
}
