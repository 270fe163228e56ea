package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/SithHades/fridgemaster/internal/cache"
	apperrors "github.com/SithHades/fridgemaster/internal/errors"
	"github.com/SithHades/fridgemaster/internal/model"
	"github.com/SithHades/fridgemaster/internal/repository"
)

// newRecipeService wires the orchestrator with mocks and a nil redis client,
// which behaves as an always-miss cache.
func newRecipeService(userRepo *MockUserRepository, recipeRepo *MockRecipeRepository, llmClient *MockLLMClient) RecipeService {
	return NewRecipeService(userRepo, recipeRepo, llmClient, (*cache.Client)(nil))
}

func TestRecipeService_Generate_CacheMiss(t *testing.T) {
	userID := uuid.New()
	hash, _ := Fingerprint([]string{"milk", "eggs"}, nil)

	userRepo := new(MockUserRepository)
	recipeRepo := new(MockRecipeRepository)
	llmClient := new(MockLLMClient)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Credits: 3}, nil)
	recipeRepo.On("FindByHash", mock.Anything, hash).Return(nil, gorm.ErrRecordNotFound)
	llmClient.On("Generate", mock.Anything, mock.AnythingOfType("string")).Return("Kitchen Sink Stir-Fry", nil)
	recipeRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.GeneratedRecipe) bool {
		return r.IngredientsHash == hash && r.UserID == userID && r.Content == "Kitchen Sink Stir-Fry"
	})).Return(nil)
	userRepo.On("DecrementCredits", mock.Anything, userID).Return(2, nil)

	service := newRecipeService(userRepo, recipeRepo, llmClient)
	result, err := service.Generate(context.Background(), userID, []string{"milk", "eggs"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Kitchen Sink Stir-Fry", result.Recipe)
	assert.False(t, result.Cached)
	assert.Equal(t, 2, result.Credits)

	userRepo.AssertExpectations(t)
	recipeRepo.AssertExpectations(t)
	llmClient.AssertExpectations(t)
}

func TestRecipeService_Generate_CacheHitIsFree(t *testing.T) {
	userID := uuid.New()
	// Same multiset as the first request, different ordering and casing.
	hash, _ := Fingerprint(nil, []string{"  EGGS ", "Milk"})

	userRepo := new(MockUserRepository)
	recipeRepo := new(MockRecipeRepository)
	llmClient := new(MockLLMClient)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Credits: 2}, nil)
	recipeRepo.On("FindByHash", mock.Anything, hash).Return(&model.GeneratedRecipe{
		IngredientsHash: hash,
		Content:         "Kitchen Sink Stir-Fry",
	}, nil)

	service := newRecipeService(userRepo, recipeRepo, llmClient)
	result, err := service.Generate(context.Background(), userID, nil, []string{"  EGGS ", "Milk"})

	assert.NoError(t, err)
	assert.Equal(t, "Kitchen Sink Stir-Fry", result.Recipe)
	assert.True(t, result.Cached)
	assert.Equal(t, 2, result.Credits)

	// A hit never reaches the model or the ledger.
	llmClient.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "DecrementCredits", mock.Anything, mock.Anything)
}

func TestRecipeService_Generate_CacheHitEvenWithZeroCredits(t *testing.T) {
	userID := uuid.New()
	hash, _ := Fingerprint([]string{"milk"}, nil)

	userRepo := new(MockUserRepository)
	recipeRepo := new(MockRecipeRepository)
	llmClient := new(MockLLMClient)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Credits: 0}, nil)
	recipeRepo.On("FindByHash", mock.Anything, hash).Return(&model.GeneratedRecipe{Content: "Warm Milk"}, nil)

	service := newRecipeService(userRepo, recipeRepo, llmClient)
	result, err := service.Generate(context.Background(), userID, []string{"milk"}, nil)

	assert.NoError(t, err)
	assert.True(t, result.Cached)
	assert.Equal(t, 0, result.Credits)
}

func TestRecipeService_Generate_InsufficientCredits(t *testing.T) {
	userID := uuid.New()

	userRepo := new(MockUserRepository)
	recipeRepo := new(MockRecipeRepository)
	llmClient := new(MockLLMClient)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Credits: 0}, nil)
	recipeRepo.On("FindByHash", mock.Anything, mock.AnythingOfType("string")).Return(nil, gorm.ErrRecordNotFound)

	service := newRecipeService(userRepo, recipeRepo, llmClient)
	result, err := service.Generate(context.Background(), userID, []string{"caviar"}, nil)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientCredits)
	assert.Nil(t, result)

	// Denial happens before the model call; nothing is stored or charged.
	llmClient.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	recipeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecipeService_Generate_NoIngredients(t *testing.T) {
	userID := uuid.New()

	userRepo := new(MockUserRepository)
	recipeRepo := new(MockRecipeRepository)
	llmClient := new(MockLLMClient)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Credits: 3}, nil)

	service := newRecipeService(userRepo, recipeRepo, llmClient)

	_, err := service.Generate(context.Background(), userID, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrNoIngredients)

	// Whitespace-only items do not count as ingredients.
	_, err = service.Generate(context.Background(), userID, []string{"  ", ""}, []string{"\t"})
	assert.ErrorIs(t, err, apperrors.ErrNoIngredients)

	recipeRepo.AssertNotCalled(t, "FindByHash", mock.Anything, mock.Anything)
}

func TestRecipeService_Generate_UserNotFound(t *testing.T) {
	userID := uuid.New()

	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	service := newRecipeService(userRepo, new(MockRecipeRepository), new(MockLLMClient))
	_, err := service.Generate(context.Background(), userID, []string{"milk"}, nil)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestRecipeService_Generate_ModelFailureMutatesNothing(t *testing.T) {
	userID := uuid.New()

	userRepo := new(MockUserRepository)
	recipeRepo := new(MockRecipeRepository)
	llmClient := new(MockLLMClient)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Credits: 3}, nil)
	recipeRepo.On("FindByHash", mock.Anything, mock.AnythingOfType("string")).Return(nil, gorm.ErrRecordNotFound)
	llmClient.On("Generate", mock.Anything, mock.AnythingOfType("string")).Return("", errors.New("connection reset"))

	service := newRecipeService(userRepo, recipeRepo, llmClient)
	result, err := service.Generate(context.Background(), userID, []string{"milk"}, nil)

	assert.ErrorIs(t, err, apperrors.ErrGenerationFailed)
	assert.Nil(t, result)

	recipeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "DecrementCredits", mock.Anything, mock.Anything)
}

func TestRecipeService_Generate_ConflictBecomesHit(t *testing.T) {
	userID := uuid.New()
	hash, _ := Fingerprint([]string{"milk", "eggs"}, nil)

	userRepo := new(MockUserRepository)
	recipeRepo := new(MockRecipeRepository)
	llmClient := new(MockLLMClient)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Credits: 3}, nil)
	// Miss on the first read, but a concurrent request wins the insert race.
	recipeRepo.On("FindByHash", mock.Anything, hash).Return(nil, gorm.ErrRecordNotFound).Once()
	llmClient.On("Generate", mock.Anything, mock.AnythingOfType("string")).Return("loser text", nil)
	recipeRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.GeneratedRecipe")).Return(gorm.ErrDuplicatedKey)
	recipeRepo.On("FindByHash", mock.Anything, hash).Return(&model.GeneratedRecipe{
		IngredientsHash: hash,
		Content:         "winner text",
	}, nil).Once()

	service := newRecipeService(userRepo, recipeRepo, llmClient)
	result, err := service.Generate(context.Background(), userID, []string{"milk", "eggs"}, nil)

	assert.NoError(t, err)
	assert.True(t, result.Cached)
	assert.Equal(t, "winner text", result.Recipe)
	assert.Equal(t, 3, result.Credits)

	// The losing writer is never charged.
	userRepo.AssertNotCalled(t, "DecrementCredits", mock.Anything, mock.Anything)
}

func TestRecipeService_Generate_DecrementRaceFavorsUser(t *testing.T) {
	userID := uuid.New()

	userRepo := new(MockUserRepository)
	recipeRepo := new(MockRecipeRepository)
	llmClient := new(MockLLMClient)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Credits: 1}, nil)
	recipeRepo.On("FindByHash", mock.Anything, mock.AnythingOfType("string")).Return(nil, gorm.ErrRecordNotFound)
	llmClient.On("Generate", mock.Anything, mock.AnythingOfType("string")).Return("text", nil)
	recipeRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.GeneratedRecipe")).Return(nil)
	userRepo.On("DecrementCredits", mock.Anything, userID).Return(0, repository.ErrNoCredits)

	service := newRecipeService(userRepo, recipeRepo, llmClient)
	result, err := service.Generate(context.Background(), userID, []string{"milk"}, nil)

	// The result is stored; the user keeps it even though the balance raced to zero.
	assert.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Equal(t, "text", result.Recipe)
	assert.Equal(t, 0, result.Credits)
}

func TestRecipeService_ListRecipes(t *testing.T) {
	userID := uuid.New()

	recipeRepo := new(MockRecipeRepository)
	recipeRepo.On("ListByUser", mock.Anything, userID).Return([]model.GeneratedRecipe{
		{Content: "newest"},
		{Content: "older"},
	}, nil)

	service := newRecipeService(new(MockUserRepository), recipeRepo, new(MockLLMClient))
	recipes, err := service.ListRecipes(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, recipes, 2)
	assert.Equal(t, "newest", recipes[0].Content)
}

func TestBuildPrompt_SeparatesPriorityItems(t *testing.T) {
	prompt := buildPrompt([]string{"milk", " eggs "}, []string{"rice"})

	assert.Contains(t, prompt, "expiring soon")
	assert.Contains(t, prompt, "- milk")
	assert.Contains(t, prompt, "- eggs")
	assert.Contains(t, prompt, "- rice")
	assert.Contains(t, prompt, "pantry staples")
}
