package db

import "time"

// User 定义了管理用户模型
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Username  string    `gorm:"uniqueIndex" json:"username"`
	Password  string    `json:"-"`
	RoleID    *uint     `json:"-"`
	Role      *Role     `json:"role,omitempty"`
}
