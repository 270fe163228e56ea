package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SithHades/fridgemaster/internal/errors"
	"github.com/SithHades/fridgemaster/internal/service"
)

// RecipeHandler handles recipe generation endpoints.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// GenerateRecipeRequest represents a generation request. Items expiring soon go
// in ExpiringItems so the model prioritizes them.
type GenerateRecipeRequest struct {
	ExpiringItems []string `json:"expiringItems"`
	OtherItems    []string `json:"otherItems"`
}

// GenerateRecipeResponse represents a generation result.
type GenerateRecipeResponse struct {
	Recipe  string `json:"recipe"`
	Cached  bool   `json:"cached"`
	Credits int    `json:"credits"`
}

// Generate godoc
// @Summary Generate a recipe from the given ingredients
// @Description Cache hits are free; a fresh generation costs one credit.
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateRecipeRequest true "Ingredient lists"
// @Success 200 {object} GenerateRecipeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 402 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes [post]
func (h *RecipeHandler) Generate(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req GenerateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.recipeService.Generate(c.Request().Context(), userID, req.ExpiringItems, req.OtherItems)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, GenerateRecipeResponse{
		Recipe:  result.Recipe,
		Cached:  result.Cached,
		Credits: result.Credits,
	})
}

// List godoc
// @Summary List the user's generated recipes, newest first
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.GeneratedRecipe
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	recipes, err := h.recipeService.ListRecipes(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recipes)
}
