package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// User 定义了后台用户模型，Password 保存 bcrypt 哈希
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	IsAdmin  bool   `gorm:"not null" json:"isAdmin"`
}

// ErrEmptyCredentials 在用户名或密码为空时返回。
var ErrEmptyCredentials = errors.New("username and password are required")

// NewAdminUser 以 bcrypt 哈希密码构造一个管理员用户，不做持久化。
func NewAdminUser(username, password string) (*User, error) {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil, ErrEmptyCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{Username: trimmedUser, Password: string(hashed), IsAdmin: true}, nil
}

// CheckPassword 校验明文密码是否与存储的哈希一致。
func (u *User) CheckPassword(password string) bool {
	if u == nil || u.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
