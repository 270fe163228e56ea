package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SithHades/fridgemaster/internal/cache"
	apperrors "github.com/SithHades/fridgemaster/internal/errors"
	"github.com/SithHades/fridgemaster/internal/llm"
	"github.com/SithHades/fridgemaster/internal/model"
	"github.com/SithHades/fridgemaster/internal/repository"
)

const recipeCacheTTL = 24 * time.Hour

// GenerationResult is the outcome of a recipe generation request.
type GenerationResult struct {
	Recipe  string
	Cached  bool
	Credits int
}

// RecipeService orchestrates recipe generation. The pipeline order is fixed:
// auth lookup, input validation, fingerprinting, cache consultation, credit
// gating, the external model call, persistence, ledger decrement.
type RecipeService interface {
	Generate(ctx context.Context, userID uuid.UUID, expiringItems, otherItems []string) (*GenerationResult, error)
	ListRecipes(ctx context.Context, userID uuid.UUID) ([]model.GeneratedRecipe, error)
}

type recipeService struct {
	userRepo   repository.UserRepository
	recipeRepo repository.RecipeRepository
	llmClient  llm.Client
	cache      *cache.Client
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(
	userRepo repository.UserRepository,
	recipeRepo repository.RecipeRepository,
	llmClient llm.Client,
	cacheClient *cache.Client,
) RecipeService {
	return &recipeService{
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		llmClient:  llmClient,
		cache:      cacheClient,
	}
}

func recipeCacheKey(hash string) string {
	return "recipe:" + hash
}

// Generate runs the generation pipeline for one request.
//
// Side effects are strictly ordered: the model call happens before any
// persistence and persistence happens before the credit decrement, so a crash
// mid-pipeline can store a result without charging but never charge without a
// stored result. Cache hits short-circuit everything, including the credit
// check; hits are always free.
func (s *recipeService) Generate(ctx context.Context, userID uuid.UUID, expiringItems, otherItems []string) (*GenerationResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !hasIngredient(expiringItems) && !hasIngredient(otherItems) {
		return nil, apperrors.ErrNoIngredients
	}

	hash, normalized := Fingerprint(expiringItems, otherItems)

	// Look-aside redis in front of the generated_recipes table. A redis outage
	// degrades to a miss and the unique index below keeps correctness.
	if data, _ := s.cache.Get(ctx, recipeCacheKey(hash)); data != nil {
		return &GenerationResult{Recipe: string(data), Cached: true, Credits: user.Credits}, nil
	}

	cached, err := s.recipeRepo.FindByHash(ctx, hash)
	if err == nil {
		_ = s.cache.Set(ctx, recipeCacheKey(hash), []byte(cached.Content), recipeCacheTTL)
		return &GenerationResult{Recipe: cached.Content, Cached: true, Credits: user.Credits}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cache lookup: %w", err)
	}

	if user.Credits <= 0 {
		return nil, apperrors.ErrInsufficientCredits
	}

	content, err := s.llmClient.Generate(ctx, buildPrompt(expiringItems, otherItems))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGenerationFailed, llm.ErrEmptyCompletion)
	}

	recipe := &model.GeneratedRecipe{
		IngredientsHash: hash,
		Ingredients:     strings.Join(normalized, "\n"),
		Content:         content,
		UserID:          userID,
	}
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent request won the insert race; its entry is the
			// canonical one. Serve it as a hit and leave the ledger alone.
			winner, err := s.recipeRepo.FindByHash(ctx, hash)
			if err != nil {
				return nil, fmt.Errorf("re-read after conflict: %w", err)
			}
			_ = s.cache.Set(ctx, recipeCacheKey(hash), []byte(winner.Content), recipeCacheTTL)
			return &GenerationResult{Recipe: winner.Content, Cached: true, Credits: user.Credits}, nil
		}
		return nil, fmt.Errorf("store recipe: %w", err)
	}

	balance, err := s.userRepo.DecrementCredits(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoCredits) {
			// The balance raced to zero after the credit check. The result is
			// already stored; under-charging is the accepted bias.
			balance = 0
		} else {
			return nil, fmt.Errorf("decrement credits: %w", err)
		}
	}

	_ = s.cache.Set(ctx, recipeCacheKey(hash), []byte(content), recipeCacheTTL)

	return &GenerationResult{Recipe: content, Cached: false, Credits: balance}, nil
}

// ListRecipes returns the user's generated recipes, newest first.
func (s *recipeService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]model.GeneratedRecipe, error) {
	return s.recipeRepo.ListByUser(ctx, userID)
}

func hasIngredient(items []string) bool {
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			return true
		}
	}
	return false
}

// buildPrompt lists priority ingredients apart from the rest so the model favors
// what is about to expire.
func buildPrompt(expiringItems, otherItems []string) string {
	var b strings.Builder
	b.WriteString("You are a home cook helping reduce food waste.\n\n")
	b.WriteString("Ingredients expiring soon (use these first):\n")
	writeItems(&b, expiringItems)
	b.WriteString("\nOther available ingredients (optional):\n")
	writeItems(&b, otherItems)
	b.WriteString("\nSuggest one recipe that prioritizes the expiring ingredients. ")
	b.WriteString("Assume common pantry staples (salt, pepper, oil, flour, sugar) are available. ")
	b.WriteString("Format the answer with a title, a short description, an ingredient list and numbered instructions.")
	return b.String()
}

func writeItems(b *strings.Builder, items []string) {
	wrote := false
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
		wrote = true
	}
	if !wrote {
		b.WriteString("- none\n")
	}
}
