package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/SithHades/fridgemaster/internal/errors"
	"github.com/SithHades/fridgemaster/internal/model"
)

func TestDictionaryService_SearchEmptyQuery(t *testing.T) {
	dictRepo := new(MockDictionaryRepository)

	service := NewDictionaryService(dictRepo)
	entries, err := service.Search(context.Background(), "   ")

	assert.NoError(t, err)
	assert.Empty(t, entries)
	dictRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestDictionaryService_SearchCapsResults(t *testing.T) {
	dictRepo := new(MockDictionaryRepository)
	dictRepo.On("Search", mock.Anything, "mil", 5).Return([]model.DictionaryEntry{
		{Name: "Milk", DefaultQty: "1L"},
	}, nil)

	service := NewDictionaryService(dictRepo)
	entries, err := service.Search(context.Background(), " mil ")

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	dictRepo.AssertExpectations(t)
}

func TestDictionaryService_UpdateMissingEntry(t *testing.T) {
	id := uuid.New()
	dictRepo := new(MockDictionaryRepository)
	dictRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewDictionaryService(dictRepo)
	_, err := service.Update(context.Background(), id, "Milk", "", "1L")

	assert.ErrorIs(t, err, apperrors.ErrDictionaryEntryNotFound)
}

func TestDictionaryService_DeleteMissingEntry(t *testing.T) {
	id := uuid.New()
	dictRepo := new(MockDictionaryRepository)
	dictRepo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	service := NewDictionaryService(dictRepo)
	err := service.Delete(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrDictionaryEntryNotFound)
}
