package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

// AuthUser 是身份认证的来源，只负责“你是谁”，权限由 Admin 决定
type AuthUser struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email     string    `gorm:"column:email;uniqueIndex"` // 登录邮箱，统一小写存储
	Password  string    `gorm:"column:password"`          // 密码，使用 argon2id 储存
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (AuthUser) TableName() string {
	return "auth_users"
}

func (u *AuthUser) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
