package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpiryStatus classifies how close a product is to its expiry date.
type ExpiryStatus string

const (
	ExpiryStatusExpired ExpiryStatus = "expired"
	ExpiryStatusWarning ExpiryStatus = "warning"
	ExpiryStatusFresh   ExpiryStatus = "fresh"
)

// Product represents a tracked food item in a user's inventory.
// Consumed and deleted products stay in the table; listing filters them out.
type Product struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID  `json:"user_id" gorm:"type:char(36);not null;index"`
	Name         string     `json:"name" gorm:"size:255;not null;index"`
	Brand        string     `json:"brand,omitempty" gorm:"size:255"`
	Quantity     string     `json:"quantity" gorm:"size:100;not null"`
	Barcode      string     `json:"barcode,omitempty" gorm:"size:64"`
	ExpiryDate   time.Time  `json:"expiry_date" gorm:"not null;index"`
	PurchaseDate time.Time  `json:"purchase_date" gorm:"not null"`
	OpenedDate   *time.Time `json:"opened_date,omitempty"`
	ConsumedAt   *time.Time `json:"consumed_at,omitempty"`
	IsDeleted    bool       `json:"-" gorm:"default:false;index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
