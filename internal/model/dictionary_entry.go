package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DictionaryEntry maps a product name (plus optional brand) to its usual quantity,
// feeding input autocomplete. Entries are shared across users.
type DictionaryEntry struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_dictionary_name_brand"`
	Brand      string    `json:"brand" gorm:"size:255;not null;default:'';uniqueIndex:idx_dictionary_name_brand"`
	DefaultQty string    `json:"default_qty" gorm:"size:100;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (d *DictionaryEntry) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
