package db

// Experience 定义工作经历
// EndDate 为空表示当前在职
// Order 越小越靠前，仅用于展示排序，允许重复
type Experience struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Position    string  `gorm:"size:200;not null" json:"position"`
	Company     string  `gorm:"size:200;not null" json:"company"`
	Description string  `gorm:"type:text;not null" json:"description"`
	StartDate   string  `gorm:"size:32;not null" json:"startDate"`
	EndDate     *string `gorm:"size:32" json:"endDate"`
	IsVisible   bool    `gorm:"not null" json:"isVisible"`
	Order       int     `gorm:"column:sort_order;not null;default:0" json:"order"`
}
