package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/services"
)

func TestPermissionListReturnsSeeded(t *testing.T) {
	svc := services.NewPermissionService(newTestDB(t))

	permissions, err := svc.List()
	require.NoError(t, err)
	require.Len(t, permissions, 3)
	assert.Equal(t, "admin", permissions[0].Name)
}

func TestPermissionCreateAndConflict(t *testing.T) {
	svc := services.NewPermissionService(newTestDB(t))

	permission, err := svc.Create(&dto.CreatePermissionRequest{Name: "billing", Description: "Billing console"})
	require.NoError(t, err)
	assert.NotZero(t, permission.ID)

	_, err = svc.Create(&dto.CreatePermissionRequest{Name: "billing"})
	var conflict *services.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "permission", conflict.Resource)
}

func TestPermissionUpdateNotFound(t *testing.T) {
	svc := services.NewPermissionService(newTestDB(t))

	_, err := svc.Update(999, &dto.UpdatePermissionRequest{Name: strPtr("ghost")})
	var notFound *services.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "permission", notFound.Resource)
}

func TestPermissionUpdate(t *testing.T) {
	svc := services.NewPermissionService(newTestDB(t))
	permission, err := svc.Create(&dto.CreatePermissionRequest{Name: "billing"})
	require.NoError(t, err)

	updated, err := svc.Update(permission.ID, &dto.UpdatePermissionRequest{
		Description: strPtr("Billing and invoices"),
	})
	require.NoError(t, err)
	assert.Equal(t, "billing", updated.Name)
	assert.Equal(t, "Billing and invoices", updated.Description)
}

func TestPermissionDeleteCleansRoleLinks(t *testing.T) {
	db := newTestDB(t)
	permissionSvc := services.NewPermissionService(db)
	roleSvc := services.NewRoleService(db)

	permission, err := permissionSvc.Create(&dto.CreatePermissionRequest{Name: "billing"})
	require.NoError(t, err)
	role, err := roleSvc.Create(&dto.CreateRoleRequest{Name: "auditor"})
	require.NoError(t, err)
	_, err = roleSvc.AttachPermissions(role.ID, []int64{1, permission.ID})
	require.NoError(t, err)

	require.NoError(t, permissionSvc.Delete(permission.ID))

	var links int64
	db.Model(&models.RolePermission{}).Where("permission_id = ?", permission.ID).Count(&links)
	assert.Zero(t, links)

	// The role keeps its other permissions.
	attached, err := roleSvc.PermissionIDs(role.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, attached)

	err = permissionSvc.Delete(permission.ID)
	var notFound *services.NotFoundError
	require.True(t, errors.As(err, &notFound))
}
