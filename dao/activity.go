package dao

import (
	"Kudos/models"
	"context"

	"gorm.io/gorm"
)

type Activity struct {
	Repo[models.Activity]
}

func NewActivity(db *gorm.DB) *Activity {
	return &Activity{Repo: NewRepo[models.Activity](db)}
}

func (d *Activity) GetByID(ctx context.Context, activityID int64) (*models.Activity, error) {
	return d.FindByWhere(ctx, "activity_id = ?", activityID)
}
