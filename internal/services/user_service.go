package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/pagination"
)

// UserService owns user rows plus the user-scoped purchase and device
// reads. Listing goes through the pagination engine; every projection is
// driven by models.UserSchema, so the password column can never leak.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns one page of users. A non-empty roleIDs set restricts the
// collection before pagination; the admin listing passes the staff set,
// the user listing passes the single regular role.
func (s *UserService) List(params pagination.Params, roleIDs []int64) (*pagination.Page[models.User], error) {
	base := s.db.Model(&models.User{})
	if len(roleIDs) > 0 {
		base = base.Where("role_id IN ?", roleIDs)
	}
	return pagination.Paginate[models.User](base, models.UserSchema, params)
}

func (s *UserService) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := s.db.Select(models.UserSchema.ProjectedColumns()).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateByID applies a partial update and returns the post-update row.
// The row must exist up front; a row that vanishes between the check and
// the write surfaces as NotFound from the write's affected-row count.
func (s *UserService) UpdateByID(id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Email != nil {
		var other models.User
		err := s.db.Select("id").Where("email = ? AND id <> ?", *req.Email, id).First(&other).Error
		if err == nil {
			return nil, &ConflictError{Resource: "user", Field: "email", Value: *req.Email}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		fields["email"] = *req.Email
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		return existing, nil
	}
	fields["updated_at"] = time.Now().UTC()

	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, &NotFoundError{Resource: "user", ID: id}
	}
	return s.GetByID(id)
}

// DeleteByID hard-deletes the user together with their purchases and
// devices. Zero affected rows is NotFound, never silent success.
func (s *UserService) DeleteByID(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("user_id = ?", id).Delete(&models.Purchase{})
		tx.Where("user_id = ?", id).Delete(&models.UserDevice{})
		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &NotFoundError{Resource: "user", ID: id}
		}
		return nil
	})
}

// ListPurchases paginates one user's purchases. The user must exist; an
// existing user with no purchases (or a cursor past the last row) gets an
// empty page, not an error.
func (s *UserService) ListPurchases(userID int64, params pagination.Params) (*pagination.Page[models.Purchase], error) {
	if err := s.ensureExists(userID); err != nil {
		return nil, err
	}
	base := s.db.Model(&models.Purchase{}).Where("user_id = ?", userID)
	return pagination.Paginate[models.Purchase](base, models.PurchaseSchema, params)
}

func (s *UserService) ListDevices(userID int64) ([]models.UserDevice, error) {
	if err := s.ensureExists(userID); err != nil {
		return nil, err
	}
	devices := []models.UserDevice{}
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// AdminCounts holds the aggregate counters for the staff role set.
type AdminCounts struct {
	Total          int64 `json:"total"`
	Active         int64 `json:"active"`
	RecentlyActive int64 `json:"recentlyActive"`
}

// CountAdmins runs three independent counts over the role-id set: all
// rows, active rows, and rows whose last login falls within the trailing
// seven days. The counts are read-only and run concurrently.
func (s *UserService) CountAdmins(roleIDs []int64) (*AdminCounts, error) {
	since := time.Now().UTC().AddDate(0, 0, -7)

	var counts AdminCounts
	errs := make([]error, 3)
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		errs[0] = s.db.Model(&models.User{}).
			Where("role_id IN ?", roleIDs).
			Count(&counts.Total).Error
	}()
	go func() {
		defer wg.Done()
		errs[1] = s.db.Model(&models.User{}).
			Where("role_id IN ? AND status = ?", roleIDs, models.StatusActive).
			Count(&counts.Active).Error
	}()
	go func() {
		defer wg.Done()
		errs[2] = s.db.Model(&models.User{}).
			Where("role_id IN ? AND last_login_at >= ?", roleIDs, since).
			Count(&counts.RecentlyActive).Error
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &counts, nil
}

// CreateAdmin creates a staff user with a generated one-time password.
// The caller receives the row without the hash; the password itself is
// delivered out of band by the identity service.
func (s *UserService) CreateAdmin(req *dto.CreateAdminRequest) (*models.User, error) {
	var existing models.User
	if err := s.db.Select("id").Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, &ConflictError{Resource: "user", Field: "email", Value: req.Email}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := generateTempPasswordHash()
	if err != nil {
		return nil, err
	}

	roleID := models.RoleAdmin
	if req.RoleID != nil {
		roleID = *req.RoleID
	}

	user := models.User{
		UUID:      uuid.New(),
		RoleID:    roleID,
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Country:   req.Country,
		State:     req.State,
		Zip:       req.Zip,
		Timezone:  req.Timezone,
		Status:    models.StatusActive,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	user.Password = ""
	return &user, nil
}

func (s *UserService) ensureExists(id int64) error {
	var user models.User
	err := s.db.Select("id").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: "user", ID: id}
	}
	return err
}

func generateTempPasswordHash() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(base64.URLEncoding.EncodeToString(raw)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
