package models

import "time"

// UserDevice records a device seen at login time. Written by the auth
// flow of the identity service; this API only reads them.
type UserDevice struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	UserID       int64     `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Browser      string    `gorm:"size:255" json:"browser"`
	OS           string    `gorm:"size:255" json:"os"`
	Device       string    `gorm:"size:255" json:"device"`
	IP           string    `gorm:"size:255" json:"ip"`
	LocationInfo string    `gorm:"size:255;not null" json:"location_info"`
	CreatedAt    time.Time `json:"created_at"`
}

func (UserDevice) TableName() string {
	return "user_devices"
}
