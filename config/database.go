package config

import (
	"MindMirrorGo/models"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB 根据 DB_DRIVER 打开数据库连接
func OpenDB(config Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	dsn := config.GetDBConnString()
	switch config.DBDriver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("无法创建数据库目录: %w", err)
			}
		}
		dialector = gormlite.Open(dsn)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", config.DBDriver)
	}

	logLevel := logger.Info
	if config.Environment == "production" {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if config.DBAutoMigrate {
		if err := MigrateDB(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// MigrateDB 进行数据库表结构迁移
func MigrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.JournalEntry{},
		&models.MoodHistory{},
		&models.DailyTip{},
	)
	if err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	return nil
}
