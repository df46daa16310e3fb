package db

// Skill 定义技能条目，Category 为自由文本分组键
type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Category    string `gorm:"size:100;index;not null" json:"category"`
	Proficiency int    `gorm:"not null" json:"proficiency"`
	IsVisible   bool   `gorm:"not null" json:"isVisible"`
}
