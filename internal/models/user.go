package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/pagination"
)

// User statuses. The zero value is deliberate: freshly created accounts
// start inactive until activation completes.
const (
	StatusInactive = 0
	StatusActive   = 1
	StatusBanned   = 2
)

type User struct {
	ID                 int64      `gorm:"primaryKey" json:"id"`
	UUID               uuid.UUID  `gorm:"type:uuid" json:"uuid"`
	RoleID             int64      `gorm:"index" json:"role_id"`
	Email              string     `gorm:"size:255;uniqueIndex" json:"email"`
	Password           string     `gorm:"size:255" json:"-"`
	FirstName          string     `gorm:"size:50" json:"first_name"`
	LastName           string     `gorm:"size:50" json:"last_name"`
	Phone              string     `gorm:"size:50" json:"phone"`
	Address            string     `gorm:"size:255" json:"address"`
	Country            string     `gorm:"size:100" json:"country"`
	State              string     `gorm:"size:100" json:"state"`
	Zip                string     `gorm:"size:20" json:"zip"`
	Timezone           string     `gorm:"size:100" json:"timezone"`
	Status             int        `gorm:"default:0;index" json:"status"`
	IdentityStatus     string     `gorm:"size:50" json:"identity_status"`
	IdentityVerifiedAt *time.Time `json:"identity_verified_at"`
	AffiliateTerms     int        `gorm:"default:0" json:"affiliate_terms"`
	RefByUserID        int64      `gorm:"default:0" json:"ref_by_user_id"`
	RefLinkCount       int        `gorm:"default:0" json:"ref_link_count"`
	LastLoginAt        *time.Time `json:"last_login_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) CursorID() int64 {
	return u.ID
}

// UserSchema is the single source of truth for which user columns may be
// sorted on and which are projected by list and single-fetch paths. The
// password column is absent on purpose: it must never leave the store.
// "name" is a sort alias over first_name + last_name and has no column of
// its own.
var UserSchema = &pagination.Schema{
	Table: "users",
	Columns: map[string]pagination.Column{
		"id":                   {Sortable: true, Projectable: true},
		"uuid":                 {Sortable: true, Projectable: true},
		"role_id":              {Sortable: true, Projectable: true},
		"email":                {Sortable: true, Projectable: true},
		"first_name":           {Sortable: true, Projectable: true},
		"last_name":            {Sortable: true, Projectable: true},
		"name":                 {Sortable: true, SortExpr: []string{"first_name", "last_name"}},
		"phone":                {Sortable: true, Projectable: true},
		"address":              {Projectable: true},
		"country":              {Projectable: true},
		"state":                {Projectable: true},
		"zip":                  {Projectable: true},
		"timezone":             {Projectable: true},
		"status":               {Sortable: true, Projectable: true},
		"identity_status":      {Sortable: true, Projectable: true},
		"identity_verified_at": {Projectable: true},
		"affiliate_terms":      {Sortable: true, Projectable: true},
		"ref_by_user_id":       {Projectable: true},
		"ref_link_count":       {Projectable: true},
		"last_login_at":        {Sortable: true, Projectable: true},
		"created_at":           {Sortable: true, Projectable: true},
		"updated_at":           {Sortable: true, Projectable: true},
	},
}
