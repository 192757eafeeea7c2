package database

import (
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/models"
)

var seedRoles = []models.Role{
	{ID: models.RoleMasterAdmin, Name: "master_admin", Description: "Master administrator with unrestricted access"},
	{ID: models.RoleAdmin, Name: "admin", Description: "Administrator with full access"},
	{ID: models.RoleSubAdmin, Name: "subadmin", Description: "Administrator with a reduced scope"},
	{ID: models.RoleCustomerSupport, Name: "customer_support", Description: "Customer support staff"},
	{ID: models.RoleTechSupport, Name: "tech_support", Description: "Technical support staff"},
	{ID: models.RoleManager, Name: "manager", Description: "Manager with elevated access"},
	{ID: models.RoleUser, Name: "user", Description: "Regular user with limited access"},
	{ID: models.RoleModerator, Name: "moderator", Description: "Moderator with elevated access"},
}

var seedPermissions = []models.Permission{
	{Name: "admin", Description: "Administrator with full access"},
	{Name: "user", Description: "Regular user with limited access"},
	{Name: "moderator", Description: "Moderator with elevated access"},
}

// Seed inserts the well-known roles and base permissions, skipping rows
// that already exist so boot stays idempotent.
func Seed(db *gorm.DB) error {
	roles := append([]models.Role(nil), seedRoles...)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
		return err
	}
	permissions := append([]models.Permission(nil), seedPermissions...)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&permissions).Error; err != nil {
		return err
	}
	slog.Info("seed data applied", "roles", len(seedRoles), "permissions", len(seedPermissions))
	return nil
}
