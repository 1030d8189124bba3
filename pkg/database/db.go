package database

import (
	"Kudos/config"
	"Kudos/models"
	"Kudos/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if conf.Debug() {
		gormLogger = logger.Default.LogMode(logger.Info)
	}
	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}

// Migrate 建表并写入默认的 action
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Action{},
		&models.Reaction{},
		&models.Discussion{},
		&models.Comment{},
		&models.Activity{},
		&models.UserDiscussion{},
		&models.UserComment{},
		&models.UserPoint{},
		&models.PointsLog{},
	)
	if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Action{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	log.L.Info("seeding default actions")
	return db.Create(models.DefaultActions()).Error
}
