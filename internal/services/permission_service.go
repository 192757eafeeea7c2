package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/models"
)

type PermissionService struct {
	db *gorm.DB
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

func (s *PermissionService) List() ([]models.Permission, error) {
	permissions := []models.Permission{}
	if err := s.db.Order("id").Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (s *PermissionService) Create(req *dto.CreatePermissionRequest) (*models.Permission, error) {
	var existing models.Permission
	if err := s.db.Select("id").Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, &ConflictError{Resource: "permission", Field: "name", Value: req.Name}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	permission := models.Permission{Name: req.Name, Description: req.Description}
	if err := s.db.Create(&permission).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

// Update mirrors RoleService.Update: existence first, no-op updates return
// the pre-update row.
func (s *PermissionService) Update(id int64, req *dto.UpdatePermissionRequest) (*models.Permission, error) {
	var existing models.Permission
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "permission", ID: id}
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

	result := s.db.Model(&models.Permission{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return &existing, nil
	}

	var updated models.Permission
	if err := s.db.First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PermissionService) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Permission{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &NotFoundError{Resource: "permission", ID: id}
		}
		return tx.Where("permission_id = ?", id).Delete(&models.RolePermission{}).Error
	})
}
