package db

import "time"

// ContactMessage 记录访客通过联系表单提交的留言。
// 只能由公开表单创建，后台只能标记已读或删除。
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Subject   string    `gorm:"size:200;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	IsRead    bool      `gorm:"not null" json:"isRead"`
}

// TableName 返回自定义表名。
func (ContactMessage) TableName() string {
	return "contact_messages"
}
