package db

// Project 定义项目展示条目，Tags 以 JSON 数组形式存储并保持顺序
type Project struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"size:200;not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Tags        []string `gorm:"serializer:json;type:text" json:"tags"`
	RepoURL     *string  `gorm:"size:255" json:"repoUrl"`
	DemoURL     *string  `gorm:"size:255" json:"demoUrl"`
	IsVisible   bool     `gorm:"not null" json:"isVisible"`
	IsFeatured  bool     `gorm:"not null" json:"isFeatured"`
}
