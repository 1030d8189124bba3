package types

// PointRecord 每一条流水的细节
type PointRecord struct {
	ID          int    `json:"id"`          // 流水唯一ID
	Amount      int    `json:"amount"`      // 变动数值（如 +5, -3）
	Description string `json:"description"` // 备注，反应产生的流水为 Reaction
	OrderType   string `json:"order_type"`  // INCOME(收入), EXPENSE(支出)
	SourceID    string `json:"source_id"`
	Status      int    `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ListPointsRecord 流水列表包装
type ListPointsRecord struct {
	Records    []PointRecord `json:"records"`
	NextCursor int64         `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}

// PointsAccount 账户概览统计
type PointsAccount struct {
	Balance     int `json:"balance"`
	TotalEarned int `json:"total_earned"`
	TotalUsed   int `json:"total_used"`
}

type ListPointRecordsReq struct {
	Action string `form:"action" binding:"omitempty,oneof=all income expense"`
	Cursor int64  `form:"cursor"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
