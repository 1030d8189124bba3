package models

// Action 反应类型（如 Like），award_value 为内容作者获得的积分
type Action struct {
	ActionID    int64  `gorm:"column:action_id;primaryKey;autoIncrement" json:"action_id"`
	Name        string `gorm:"column:name;size:64;not null" json:"name"`
	Description string `gorm:"column:description;size:255" json:"description"`
	Tooltip     string `gorm:"column:tooltip;size:255" json:"tooltip"`
	CssClass    string `gorm:"column:css_class;size:64" json:"css_class"`
	AwardValue  int    `gorm:"column:award_value;not null" json:"award_value"`
	Permission  string `gorm:"column:permission;size:255" json:"permission"`
	Sort        int    `gorm:"column:sort;not null" json:"sort"`
}

func (Action) TableName() string { return "actions" }

// DefaultActions migrate 时写入的初始数据
func DefaultActions() []*Action {
	return []*Action{
		{Name: "Promote", Description: "This post deserves to be featured on the best of page!", Tooltip: "Promote", CssClass: "Promote", AwardValue: 5, Permission: "Reactions.Promote", Sort: 1},
		{Name: "Insightful", Description: "This post brings new meaning to the discussion.", Tooltip: "Insightful", CssClass: "Insightful", AwardValue: 1, Permission: "Reactions.Add", Sort: 2},
		{Name: "Awesome", Description: "This post is made of pure win.", Tooltip: "Awesome", CssClass: "Awesome", AwardValue: 1, Permission: "Reactions.Add", Sort: 3},
		{Name: "LOL", Description: "This post is funny.", Tooltip: "LOL", CssClass: "LOL", AwardValue: 0, Permission: "Reactions.Add", Sort: 4},
		{Name: "Spam", Description: "This post is spam.", Tooltip: "Spam", CssClass: "Spam", AwardValue: -5, Permission: "Reactions.Flag", Sort: 5},
	}
}
