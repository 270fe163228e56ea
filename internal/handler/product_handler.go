package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/SithHades/fridgemaster/internal/errors"
	"github.com/SithHades/fridgemaster/internal/model"
	"github.com/SithHades/fridgemaster/internal/service"
)

const dateLayout = "2006-01-02"

// ProductHandler handles inventory endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest represents a new product.
type CreateProductRequest struct {
	Name       string `json:"name" validate:"required"`
	Brand      string `json:"brand"`
	Quantity   string `json:"quantity" validate:"required"`
	Barcode    string `json:"barcode"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
}

// UpdateProductRequest represents a partial product edit.
type UpdateProductRequest struct {
	Name       *string `json:"name"`
	Quantity   *string `json:"quantity"`
	ExpiryDate *string `json:"expiry_date"`
}

// List godoc
// @Summary List active products, soonest expiry first
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.ProductView
// @Failure 401 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	products, err := h.productService.ListActive(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// ListExpiring godoc
// @Summary List products expiring within the given window (default 3 days)
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days"
// @Success 200 {array} service.ProductView
// @Failure 401 {object} errors.ErrorResponse
// @Router /products/expiring [get]
func (h *ProductHandler) ListExpiring(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			days = parsed
		}
	}

	products, err := h.productService.ListExpiring(c.Request().Context(), userID, days)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// Create godoc
// @Summary Add a product to the inventory
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid expiry_date, expected YYYY-MM-DD",
			Code:  "INVALID_DATE",
		})
	}

	product, err := h.productService.Create(c.Request().Context(), userID, service.ProductInput{
		Name:       req.Name,
		Brand:      req.Brand,
		Quantity:   req.Quantity,
		Barcode:    req.Barcode,
		ExpiryDate: expiry,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Edit a product's name, quantity or expiry date
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body UpdateProductRequest true "Fields to change"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	input := service.ProductUpdateInput{
		Name:     req.Name,
		Quantity: req.Quantity,
	}
	if req.ExpiryDate != nil {
		expiry, err := time.Parse(dateLayout, *req.ExpiryDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid expiry_date, expected YYYY-MM-DD",
				Code:  "INVALID_DATE",
			})
		}
		input.ExpiryDate = &expiry
	}

	product, err := h.productService.Update(c.Request().Context(), userID, id, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// Open godoc
// @Summary Mark a product as opened
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id}/open [post]
func (h *ProductHandler) Open(c echo.Context) error {
	return h.transition(c, h.productService.Open)
}

// Consume godoc
// @Summary Mark a product as consumed
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id}/consume [post]
func (h *ProductHandler) Consume(c echo.Context) error {
	return h.transition(c, h.productService.Consume)
}

// Delete godoc
// @Summary Soft-delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Request().Context(), userID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}

// transition applies a state-change operation (open/consume) to an owned product.
func (h *ProductHandler) transition(c echo.Context, fn func(ctx context.Context, userID, id uuid.UUID) (*model.Product, error)) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	product, err := fn(c.Request().Context(), userID, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

func parseProductID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid product id",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}
