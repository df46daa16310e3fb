package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DriverSQLite 使用本地 sqlite 文件。
	DriverSQLite = "sqlite"
	// DriverMySQL 使用 DATABASE_DSN 指定的 MySQL 实例。
	DriverMySQL = "mysql"
	// DriverMemory 不落盘，数据保存在进程内存中。
	DriverMemory = "memory"
)

// ErrUnsupportedDriver 表示配置了未知的数据库驱动。
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Open 根据驱动名称打开数据库连接并执行自动迁移。
// sqlite 的 dsn 为文件路径，为空时回退到 portfolio.db。
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSQLite:
		path := strings.TrimSpace(dsn)
		if path == "" {
			path = "portfolio.db"
		}
		if err := ensureParentDir(path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(path)
	case DriverMySQL:
		if strings.TrimSpace(dsn) == "" {
			return nil, errors.New("mysql driver requires DATABASE_DSN")
		}
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate 为全部模型创建或更新表结构。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&User{},
		&PortfolioContent{},
		&Skill{},
		&Experience{},
		&Project{},
		&ContactMessage{},
	)
}

// Close 关闭底层连接，忽略已关闭的情况。
func Close(gdb *gorm.DB) {
	if gdb == nil {
		return
	}
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
