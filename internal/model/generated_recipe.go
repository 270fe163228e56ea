package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeneratedRecipe is an append-only cache entry for a model-generated recipe.
// The unique index on IngredientsHash guarantees at most one row per distinct
// normalized ingredient set; a losing concurrent insert fails instead of
// duplicating the entry.
type GeneratedRecipe struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	IngredientsHash string    `json:"ingredients_hash" gorm:"size:64;not null;uniqueIndex"`
	Ingredients     string    `json:"ingredients" gorm:"type:text;not null"` // canonical normalized list, newline-joined
	Content         string    `json:"content" gorm:"type:text;not null"`
	UserID          uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	CreatedAt       time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *GeneratedRecipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
