package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/SithHades/fridgemaster/internal/errors"
	"github.com/SithHades/fridgemaster/internal/service"
)

// DictionaryHandler handles autocomplete dictionary endpoints.
type DictionaryHandler struct {
	dictService service.DictionaryService
}

// NewDictionaryHandler creates a new dictionary handler.
func NewDictionaryHandler(dictService service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{dictService: dictService}
}

// UpdateDictionaryRequest represents an entry edit.
type UpdateDictionaryRequest struct {
	Name       string `json:"name" validate:"required"`
	Brand      string `json:"brand"`
	DefaultQty string `json:"default_qty" validate:"required"`
}

// List godoc
// @Summary List all dictionary entries
// @Tags dictionary
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DictionaryEntry
// @Failure 401 {object} errors.ErrorResponse
// @Router /dictionary [get]
func (h *DictionaryHandler) List(c echo.Context) error {
	entries, err := h.dictService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, entries)
}

// Search godoc
// @Summary Search dictionary entries by name or brand
// @Tags dictionary
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Success 200 {array} model.DictionaryEntry
// @Failure 401 {object} errors.ErrorResponse
// @Router /dictionary/search [get]
func (h *DictionaryHandler) Search(c echo.Context) error {
	entries, err := h.dictService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, entries)
}

// Update godoc
// @Summary Edit a dictionary entry
// @Tags dictionary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body UpdateDictionaryRequest true "Entry data"
// @Success 200 {object} model.DictionaryEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /dictionary/{id} [put]
func (h *DictionaryHandler) Update(c echo.Context) error {
	id, err := parseEntryID(c)
	if err != nil {
		return err
	}

	var req UpdateDictionaryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.dictService.Update(c.Request().Context(), id, req.Name, req.Brand, req.DefaultQty)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete a dictionary entry
// @Tags dictionary
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /dictionary/{id} [delete]
func (h *DictionaryHandler) Delete(c echo.Context) error {
	id, err := parseEntryID(c)
	if err != nil {
		return err
	}

	if err := h.dictService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "entry deleted"})
}

func parseEntryID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid entry id",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}
