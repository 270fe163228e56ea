package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SithHades/fridgemaster/internal/model"
)

// DictionaryRepository defines autocomplete dictionary persistence operations.
type DictionaryRepository interface {
	Upsert(ctx context.Context, entry *model.DictionaryEntry) error
	Update(ctx context.Context, entry *model.DictionaryEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DictionaryEntry, error)
	Search(ctx context.Context, query string, limit int) ([]model.DictionaryEntry, error)
	List(ctx context.Context) ([]model.DictionaryEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type dictionaryRepository struct {
	db *gorm.DB
}

// NewDictionaryRepository creates a new dictionary repository.
func NewDictionaryRepository(db *gorm.DB) DictionaryRepository {
	return &dictionaryRepository{db: db}
}

// Upsert inserts the entry or refreshes default_qty for an existing name+brand pair.
func (r *dictionaryRepository) Upsert(ctx context.Context, entry *model.DictionaryEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "brand"}},
		DoUpdates: clause.AssignmentColumns([]string{"default_qty", "updated_at"}),
	}).Create(entry).Error
}

func (r *dictionaryRepository) Update(ctx context.Context, entry *model.DictionaryEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *dictionaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DictionaryEntry, error) {
	var entry model.DictionaryEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Search matches name or brand case-insensitively, capped at limit rows.
func (r *dictionaryRepository) Search(ctx context.Context, query string, limit int) ([]model.DictionaryEntry, error) {
	var entries []model.DictionaryEntry
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("name LIKE ? OR brand LIKE ?", pattern, pattern).
		Order("name asc").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *dictionaryRepository) List(ctx context.Context) ([]model.DictionaryEntry, error) {
	var entries []model.DictionaryEntry
	if err := r.db.WithContext(ctx).Order("name asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *dictionaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.DictionaryEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
