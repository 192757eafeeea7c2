package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/models"
)

type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

func (s *RoleService) List() ([]models.Role, error) {
	roles := []models.Role{}
	if err := s.db.Order("id").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *RoleService) Create(req *dto.CreateRoleRequest) (*models.Role, error) {
	var existing models.Role
	if err := s.db.Select("id").Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, &ConflictError{Resource: "role", Field: "name", Value: req.Name}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := models.Role{Name: req.Name, Description: req.Description}
	if err := s.db.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// Update applies the provided fields and returns the post-update row. A
// no-op update (nothing to change, or the write touched zero rows) returns
// the pre-update row unchanged.
func (s *RoleService) Update(id int64, req *dto.UpdateRoleRequest) (*models.Role, error) {
	var existing models.Role
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "role", ID: id}
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if len(fields) == 0 {
		return &existing, nil
	}
	fields["updated_at"] = time.Now().UTC()

	result := s.db.Model(&models.Role{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return &existing, nil
	}

	var updated models.Role
	if err := s.db.First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the role and its permission links together.
func (s *RoleService) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Role{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &NotFoundError{Resource: "role", ID: id}
		}
		return tx.Where("role_id = ?", id).Delete(&models.RolePermission{}).Error
	})
}

// AttachPermissions replaces the role's entire permission set. The role
// and every supplied permission id must exist. Delete and insert run in
// one transaction: a partial replace is never observable.
func (s *RoleService) AttachPermissions(roleID int64, permissionIDs []int64) ([]int64, error) {
	var role models.Role
	if err := s.db.Select("id").First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "role", ID: roleID}
		}
		return nil, err
	}

	var found int64
	if err := s.db.Model(&models.Permission{}).Where("id IN ?", permissionIDs).Count(&found).Error; err != nil {
		return nil, err
	}
	if found != int64(len(permissionIDs)) {
		return nil, &NotFoundError{Resource: "one or more permissions"}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		links := make([]models.RolePermission, len(permissionIDs))
		for i, pid := range permissionIDs {
			links[i] = models.RolePermission{RoleID: roleID, PermissionID: pid}
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return nil, err
	}

	return s.PermissionIDs(roleID)
}

// PermissionIDs returns the role's current permission-id set.
func (s *RoleService) PermissionIDs(roleID int64) ([]int64, error) {
	attached := []int64{}
	err := s.db.Model(&models.RolePermission{}).
		Where("role_id = ?", roleID).
		Order("permission_id").
		Pluck("permission_id", &attached).Error
	if err != nil {
		return nil, err
	}
	return attached, nil
}
