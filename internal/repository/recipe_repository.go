package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SithHades/fridgemaster/internal/model"
)

// RecipeRepository defines generated-recipe persistence operations. The table is
// append-only; entries are never updated or removed.
type RecipeRepository interface {
	// Create inserts a cache entry. A concurrent insert for the same hash loses
	// with gorm.ErrDuplicatedKey, which callers must treat as "already cached".
	Create(ctx context.Context, recipe *model.GeneratedRecipe) error
	FindByHash(ctx context.Context, ingredientsHash string) (*model.GeneratedRecipe, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.GeneratedRecipe, error)
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new generated-recipe repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.GeneratedRecipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) FindByHash(ctx context.Context, ingredientsHash string) (*model.GeneratedRecipe, error) {
	var recipe model.GeneratedRecipe
	if err := r.db.WithContext(ctx).Where("ingredients_hash = ?", ingredientsHash).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.GeneratedRecipe, error) {
	var recipes []model.GeneratedRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
