package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/pagination"
)

// Purchase payment statuses.
const (
	PaymentPending  = 0
	PaymentPaid     = 1
	PaymentFailed   = 2
	PaymentRefunded = 3
)

type Purchase struct {
	ID                   int64          `gorm:"primaryKey" json:"id"`
	UserID               int64          `gorm:"not null;index" json:"user_id"`
	User                 User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AmountTotal          float64        `gorm:"type:decimal(8,2);not null" json:"amount_total"`
	Currency             string         `gorm:"size:10;not null;default:'USD'" json:"currency"`
	PaymentMethod        string         `gorm:"size:50" json:"payment_method"`
	PaymentStatus        int            `gorm:"type:smallint;not null;default:0;index" json:"payment_status"`
	PaymentTransactionID string         `gorm:"type:text" json:"payment_transaction_id"`
	PaymentResponse      datatypes.JSON `json:"payment_response"`
	CreatedAt            time.Time      `json:"created_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}

func (p Purchase) CursorID() int64 {
	return p.ID
}

var PurchaseSchema = &pagination.Schema{
	Table: "purchases",
	Columns: map[string]pagination.Column{
		"id":                     {Sortable: true, Projectable: true},
		"user_id":                {Sortable: true, Projectable: true},
		"amount_total":           {Sortable: true, Projectable: true},
		"currency":               {Sortable: true, Projectable: true},
		"payment_method":         {Projectable: true},
		"payment_status":         {Sortable: true, Projectable: true},
		"payment_transaction_id": {Projectable: true},
		"payment_response":       {Projectable: true},
		"created_at":             {Sortable: true, Projectable: true},
	},
}
