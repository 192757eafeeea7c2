package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/database"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/models"
)

// newTestDB opens an isolated in-memory store with the application tables
// and seed data. A single connection keeps the sqlite memory database
// alive for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.RolePermission{},
		&models.Purchase{},
		&models.UserDevice{},
	))
	require.NoError(t, database.Seed(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, roleID int64, status int, lastLogin *time.Time) *models.User {
	t.Helper()
	user := models.User{
		UUID:        uuid.New(),
		RoleID:      roleID,
		Email:       email,
		Password:    "$2a$10$secret-hash",
		FirstName:   "Test",
		LastName:    "User",
		Status:      status,
		LastLoginAt: lastLogin,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createPurchase(t *testing.T, db *gorm.DB, userID int64, amount float64) *models.Purchase {
	t.Helper()
	purchase := models.Purchase{
		UserID:      userID,
		AmountTotal: amount,
		Currency:    "USD",
	}
	require.NoError(t, db.Create(&purchase).Error)
	return &purchase
}

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
