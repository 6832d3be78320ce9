package db

import "time"

// 内置角色类型
const (
	RolePublic        = "public"
	RoleAuthenticated = "authenticated"
)

// Role 定义了访问角色模型
type Role struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name"`
	Type      string    `gorm:"uniqueIndex" json:"type"`

	Permissions []Permission `gorm:"foreignKey:RoleID" json:"permissions,omitempty"`
}

// Permission 将一个动作标识绑定到角色上，如 "article.find"。
type Permission struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Action    string    `gorm:"index:idx_permissions_role_action,unique" json:"action"`
	RoleID    uint      `gorm:"index:idx_permissions_role_action,unique" json:"-"`
}
