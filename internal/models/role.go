package models

import "time"

// Well-known role IDs, pinned by the seed data. Everything above RoleManager
// is a staff role; RoleUser is the single regular-user role.
const (
	RoleMasterAdmin     int64 = 1
	RoleAdmin           int64 = 2
	RoleSubAdmin        int64 = 3
	RoleCustomerSupport int64 = 4
	RoleTechSupport     int64 = 5
	RoleManager         int64 = 6
	RoleUser            int64 = 7
	RoleModerator       int64 = 8
)

// AdminRoleIDs returns the role-id set that counts as "admin-like" for the
// admin listing and aggregate-count endpoints.
func AdminRoleIDs() []int64 {
	return []int64{
		RoleMasterAdmin,
		RoleAdmin,
		RoleSubAdmin,
		RoleCustomerSupport,
		RoleTechSupport,
		RoleManager,
	}
}

type Role struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}
