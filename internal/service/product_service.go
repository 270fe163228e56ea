package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/SithHades/fridgemaster/internal/errors"
	"github.com/SithHades/fridgemaster/internal/model"
	"github.com/SithHades/fridgemaster/internal/repository"
)

// expiryWarningDays is the window within which an unexpired product is flagged.
const expiryWarningDays = 3

// ProductInput carries the fields accepted when creating a product.
type ProductInput struct {
	Name       string
	Brand      string
	Quantity   string
	Barcode    string
	ExpiryDate time.Time
}

// ProductUpdateInput carries the optional fields accepted when editing a product.
type ProductUpdateInput struct {
	Name       *string
	Quantity   *string
	ExpiryDate *time.Time
}

// ProductView is a product decorated with its computed expiry status.
type ProductView struct {
	model.Product
	ExpiryStatus model.ExpiryStatus `json:"expiry_status"`
}

// ProductService handles inventory operations.
type ProductService interface {
	ListActive(ctx context.Context, userID uuid.UUID) ([]ProductView, error)
	ListExpiring(ctx context.Context, userID uuid.UUID, days int) ([]ProductView, error)
	Create(ctx context.Context, userID uuid.UUID, input ProductInput) (*model.Product, error)
	Update(ctx context.Context, userID, id uuid.UUID, input ProductUpdateInput) (*model.Product, error)
	Open(ctx context.Context, userID, id uuid.UUID) (*model.Product, error)
	Consume(ctx context.Context, userID, id uuid.UUID) (*model.Product, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
	dictRepo    repository.DictionaryRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, dictRepo repository.DictionaryRepository) ProductService {
	return &productService{
		productRepo: productRepo,
		dictRepo:    dictRepo,
	}
}

// ListActive returns the user's unconsumed products, soonest expiry first.
func (s *productService) ListActive(ctx context.Context, userID uuid.UUID) ([]ProductView, error) {
	products, err := s.productRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return decorate(products, time.Now()), nil
}

// ListExpiring returns active products expiring within the given number of days.
// Already-expired products are included; they are the most urgent.
func (s *productService) ListExpiring(ctx context.Context, userID uuid.UUID, days int) ([]ProductView, error) {
	if days <= 0 {
		days = expiryWarningDays
	}
	cutoff := time.Now().AddDate(0, 0, days)
	products, err := s.productRepo.ListExpiringBefore(ctx, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expiring products: %w", err)
	}
	return decorate(products, time.Now()), nil
}

// Create stores a new product and refreshes the autocomplete dictionary with its
// name, brand and quantity.
func (s *productService) Create(ctx context.Context, userID uuid.UUID, input ProductInput) (*model.Product, error) {
	product := &model.Product{
		UserID:       userID,
		Name:         input.Name,
		Brand:        input.Brand,
		Quantity:     input.Quantity,
		Barcode:      input.Barcode,
		ExpiryDate:   input.ExpiryDate,
		PurchaseDate: time.Now(),
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	entry := &model.DictionaryEntry{
		Name:       input.Name,
		Brand:      input.Brand,
		DefaultQty: input.Quantity,
	}
	if err := s.dictRepo.Upsert(ctx, entry); err != nil {
		// The product is stored; a stale dictionary only degrades autocomplete.
		return product, nil
	}

	return product, nil
}

// Update edits name, quantity and/or expiry date of an owned product.
func (s *productService) Update(ctx context.Context, userID, id uuid.UUID, input ProductUpdateInput) (*model.Product, error) {
	product, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.ExpiryDate != nil {
		product.ExpiryDate = *input.ExpiryDate
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// Open marks a product as opened.
func (s *productService) Open(ctx context.Context, userID, id uuid.UUID) (*model.Product, error) {
	product, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product.OpenedDate = &now
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("open product: %w", err)
	}
	return product, nil
}

// Consume marks a product as used up; it disappears from the active list.
func (s *productService) Consume(ctx context.Context, userID, id uuid.UUID) (*model.Product, error) {
	product, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product.ConsumedAt = &now
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("consume product: %w", err)
	}
	return product, nil
}

// Delete soft-deletes a product.
func (s *productService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	product, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	product.IsDeleted = true
	if err := s.productRepo.Update(ctx, product); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (s *productService) findOwned(ctx context.Context, userID, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func decorate(products []model.Product, now time.Time) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			Product:      p,
			ExpiryStatus: expiryStatusAt(p.ExpiryDate, now),
		})
	}
	return views
}

// expiryStatusAt classifies a product: expired on or before today, warning within
// the next three days, fresh otherwise.
func expiryStatusAt(expiry, now time.Time) model.ExpiryStatus {
	ey, em, ed := expiry.Date()
	ny, nm, nd := now.Date()
	if expiry.Before(now) || (ey == ny && em == nm && ed == nd) {
		return model.ExpiryStatusExpired
	}
	if expiry.Before(now.AddDate(0, 0, expiryWarningDays)) {
		return model.ExpiryStatusWarning
	}
	return model.ExpiryStatusFresh
}
