package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/share_registry/configs"
	"github.com/share_registry/internal/models"
	"github.com/share_registry/pkg/logging"
)

var gormDB *gorm.DB

// InitDB 初始化 GORM 数据库连接并自动迁移表结构
// 驱动由 DB_DRIVER 决定：sqlite 使用 SQLITE_DB_PATH，postgres 使用 DATABASE_URL
func InitDB(cfg configs.Configuration) error {
	var dsn string
	switch cfg.DBDriver {
	case "postgres":
		dsn = cfg.DatabaseURL
	default:
		dsn = cfg.SQLitePath
		// 确保数据库文件所在的目录存在
		dbDir := filepath.Dir(dsn)
		if _, err := os.Stat(dbDir); os.IsNotExist(err) {
			logging.L().Info("Database directory does not exist, creating it", zap.String("dir", dbDir))
			if mkErr := os.MkdirAll(dbDir, 0755); mkErr != nil {
				return fmt.Errorf("failed to create database directory %s: %w", dbDir, mkErr)
			}
		}
	}

	conn, err := Open(cfg.DBDriver, dsn, logger.Warn)
	if err != nil {
		return err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	// 设置数据库连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logging.L().Info("Successfully connected to database using GORM", zap.String("driver", cfg.DBDriver))

	if err := Migrate(conn); err != nil {
		return fmt.Errorf("failed to auto migrate database tables: %w", err)
	}
	logging.L().Info("Database tables migrated successfully.")

	gormDB = conn
	return nil
}

// Open 打开一个 GORM 连接，SQL 日志写入 zap
func Open(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	newLogger := logger.New(
		logging.StdLog(),
		logger.Config{
			SlowThreshold:             time.Second, // 慢 SQL 阈值
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true, // 忽略ErrRecordNotFound（记录未找到）错误
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}
	return conn, nil
}

// Migrate 自动迁移所有模型
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.RegistrarMaster{},
		&models.RegistrarMasterBranch{},
		&models.CompanyMaster{},
		&models.NameChangeMaster{},
		&models.Project{},
		&models.ShareCertificate{},
		&models.ShareHolderDetail{},
		&models.LegalHeirDetail{},
		&models.Nomination{},
		&models.Folio{},
		&models.Certificate{},
		&models.Case{},
	)
}

// GetDB 返回 GORM 数据库实例
func GetDB() *gorm.DB {
	if gormDB == nil {
		logging.L().Fatal("Database not initialized. Call InitDB first.")
	}
	return gormDB
}

// CloseDB 关闭 GORM 数据库连接 (通常在应用退出时调用)
func CloseDB() {
	if gormDB != nil {
		sqlDB, err := gormDB.DB()
		if err != nil {
			logging.L().Error("Error getting underlying sql.DB for closing", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			logging.L().Error("Error closing database", zap.Error(err))
		}
		logging.L().Info("Database connection closed.")
	}
}
