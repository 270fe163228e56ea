package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SithHades/fridgemaster/internal/model"
)

// ProductRepository defines product persistence operations. All lookups are scoped
// to the owning user so one household can never touch another's inventory.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Product, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]model.Product, error)
	ListExpiringBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]model.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListActive returns unconsumed, undeleted products sorted soonest-expiring first.
func (r *productRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ? AND consumed_at IS NULL", userID, false).
		Order("expiry_date asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListExpiringBefore returns active products whose expiry date falls before cutoff.
func (r *productRepository) ListExpiringBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ? AND consumed_at IS NULL AND expiry_date < ?", userID, false, cutoff).
		Order("expiry_date asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
