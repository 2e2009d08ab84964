package models

import (
	"github.com/google/uuid"
	"time"
)

// Admin 以认证身份的 ID 作为主键，没有对应记录的身份不允许管理文章
type Admin struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"column:email" json:"email"`
	Role      string    `gorm:"column:role" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}
