package store

import (
	"strings"

	"github.com/devfolio/internal/db"
)

// Open 按驱动选择存储实现：memory 使用进程内存，其余交给 gorm。
// 返回的 close 函数总是非 nil。
func Open(driver, dsn string) (Store, func(), error) {
	if strings.EqualFold(strings.TrimSpace(driver), db.DriverMemory) {
		return NewMemoryStore(), func() {}, nil
	}

	gdb, err := db.Open(driver, dsn)
	if err != nil {
		return nil, func() {}, err
	}
	return NewGormStore(gdb), func() { db.Close(gdb) }, nil
}
