package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/SithHades/fridgemaster/internal/errors"
	"github.com/SithHades/fridgemaster/internal/model"
	"github.com/SithHades/fridgemaster/internal/repository"
)

// searchLimit caps autocomplete results.
const searchLimit = 5

// DictionaryService handles autocomplete dictionary operations.
type DictionaryService interface {
	Search(ctx context.Context, query string) ([]model.DictionaryEntry, error)
	List(ctx context.Context) ([]model.DictionaryEntry, error)
	Update(ctx context.Context, id uuid.UUID, name, brand, defaultQty string) (*model.DictionaryEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type dictionaryService struct {
	dictRepo repository.DictionaryRepository
}

// NewDictionaryService creates a new dictionary service.
func NewDictionaryService(dictRepo repository.DictionaryRepository) DictionaryService {
	return &dictionaryService{dictRepo: dictRepo}
}

// Search returns up to five entries matching the query by name or brand.
// An empty query returns no results rather than the whole table.
func (s *dictionaryService) Search(ctx context.Context, query string) ([]model.DictionaryEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.DictionaryEntry{}, nil
	}
	entries, err := s.dictRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search dictionary: %w", err)
	}
	return entries, nil
}

// List returns all entries sorted by name.
func (s *dictionaryService) List(ctx context.Context) ([]model.DictionaryEntry, error) {
	entries, err := s.dictRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dictionary: %w", err)
	}
	return entries, nil
}

// Update edits an existing entry.
func (s *dictionaryService) Update(ctx context.Context, id uuid.UUID, name, brand, defaultQty string) (*model.DictionaryEntry, error) {
	entry, err := s.dictRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDictionaryEntryNotFound
		}
		return nil, fmt.Errorf("find dictionary entry: %w", err)
	}

	entry.Name = name
	entry.Brand = brand
	entry.DefaultQty = defaultQty
	if err := s.dictRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update dictionary entry: %w", err)
	}
	return entry, nil
}

// Delete removes an entry.
func (s *dictionaryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.dictRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDictionaryEntryNotFound
		}
		return fmt.Errorf("delete dictionary entry: %w", err)
	}
	return nil
}
