package dao

import (
	"Kudos/pkg/database/dbtest"
	"testing"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	return dbtest.New(t)
}
