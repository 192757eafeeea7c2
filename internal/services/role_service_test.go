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

func TestRoleListReturnsSeededRoles(t *testing.T) {
	svc := services.NewRoleService(newTestDB(t))

	roles, err := svc.List()
	require.NoError(t, err)
	require.Len(t, roles, 8)
	assert.Equal(t, int64(models.RoleMasterAdmin), roles[0].ID)
	assert.Equal(t, "master_admin", roles[0].Name)
}

func TestRoleCreateAndConflict(t *testing.T) {
	svc := services.NewRoleService(newTestDB(t))

	role, err := svc.Create(&dto.CreateRoleRequest{Name: "auditor", Description: "Read-only reviewer"})
	require.NoError(t, err)
	assert.NotZero(t, role.ID)
	assert.Equal(t, "auditor", role.Name)

	_, err = svc.Create(&dto.CreateRoleRequest{Name: "auditor"})
	var conflict *services.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "role", conflict.Resource)
	assert.Equal(t, "name", conflict.Field)
	assert.Equal(t, "auditor", conflict.Value)
}

func TestRoleUpdate(t *testing.T) {
	svc := services.NewRoleService(newTestDB(t))
	role, err := svc.Create(&dto.CreateRoleRequest{Name: "auditor"})
	require.NoError(t, err)

	updated, err := svc.Update(role.ID, &dto.UpdateRoleRequest{Description: strPtr("Compliance reviewer")})
	require.NoError(t, err)
	assert.Equal(t, "auditor", updated.Name)
	assert.Equal(t, "Compliance reviewer", updated.Description)

	// Nothing to change: the pre-update row comes back untouched.
	same, err := svc.Update(role.ID, &dto.UpdateRoleRequest{})
	require.NoError(t, err)
	assert.Equal(t, updated.Name, same.Name)
	assert.Equal(t, updated.Description, same.Description)
}

func TestRoleUpdateNotFound(t *testing.T) {
	svc := services.NewRoleService(newTestDB(t))

	_, err := svc.Update(999, &dto.UpdateRoleRequest{Name: strPtr("ghost")})
	var notFound *services.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "role", notFound.Resource)
}

func TestRoleDeleteRemovesPermissionLinks(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewRoleService(db)
	role, err := svc.Create(&dto.CreateRoleRequest{Name: "auditor"})
	require.NoError(t, err)

	_, err = svc.AttachPermissions(role.ID, []int64{1, 2})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(role.ID))

	var links int64
	db.Model(&models.RolePermission{}).Where("role_id = ?", role.ID).Count(&links)
	assert.Zero(t, links, "deleting a role leaves no orphaned links")

	err = svc.Delete(role.ID)
	var notFound *services.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestAttachPermissionsReplacesSet(t *testing.T) {
	svc := services.NewRoleService(newTestDB(t))
	role, err := svc.Create(&dto.CreateRoleRequest{Name: "auditor"})
	require.NoError(t, err)

	attached, err := svc.AttachPermissions(role.ID, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, attached)

	// Second attach replaces, never appends.
	attached, err = svc.AttachPermissions(role.ID, []int64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, attached)
}

func TestAttachPermissionsUnknownPermission(t *testing.T) {
	svc := services.NewRoleService(newTestDB(t))
	role, err := svc.Create(&dto.CreateRoleRequest{Name: "auditor"})
	require.NoError(t, err)

	_, err = svc.AttachPermissions(role.ID, []int64{1, 2})
	require.NoError(t, err)

	_, err = svc.AttachPermissions(role.ID, []int64{1, 999})
	var notFound *services.NotFoundError
	require.True(t, errors.As(err, &notFound))

	// The failed replace left the previous set intact.
	attached, err := svc.PermissionIDs(role.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, attached)
}

func TestAttachPermissionsRoleNotFound(t *testing.T) {
	svc := services.NewRoleService(newTestDB(t))

	_, err := svc.AttachPermissions(999, []int64{1})
	var notFound *services.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "role", notFound.Resource)
}
