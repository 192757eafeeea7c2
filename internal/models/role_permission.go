package models

import "time"

// RolePermission links a role to a permission. The composite unique index
// keeps the set free of duplicates; rows are removed together with either
// parent.
type RolePermission struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	RoleID       int64      `gorm:"not null;uniqueIndex:idx_role_permission" json:"role_id"`
	PermissionID int64      `gorm:"not null;uniqueIndex:idx_role_permission" json:"permission_id"`
	Role         Role       `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
	Permission   Permission `gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
