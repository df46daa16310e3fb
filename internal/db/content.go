package db

import (
	"time"

	"gorm.io/datatypes"
)

// PortfolioContent 保存单个页面分区（hero/about/contact）的完整 JSON 文档。
// 每个 Section 只有一行，编辑时整体替换。
type PortfolioContent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Section     string         `gorm:"size:64;uniqueIndex;not null" json:"section"`
	Content     datatypes.JSON `gorm:"not null" json:"content"`
	LastUpdated time.Time      `gorm:"not null" json:"lastUpdated"`
}

// TableName 与历史表名保持一致。
func (PortfolioContent) TableName() string {
	return "portfolio_content"
}
