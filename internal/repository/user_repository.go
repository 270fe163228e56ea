package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SithHades/fridgemaster/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// DecrementCredits performs a conditional single-row decrement and returns the
	// new balance. Returns ErrNoCredits when the balance was already zero.
	DecrementCredits(ctx context.Context, id uuid.UUID) (int, error)
}

// ErrNoCredits is returned by DecrementCredits when the balance is exhausted.
var ErrNoCredits = errors.New("no credits remaining")

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DecrementCredits runs `credits = credits - 1` guarded by `credits > 0` in a single
// UPDATE, so two racing requests can never drive the balance negative.
func (r *userRepository) DecrementCredits(ctx context.Context, id uuid.UUID) (int, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND credits > 0", id).
		UpdateColumn("credits", gorm.Expr("credits - ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrNoCredits
	}

	var user model.User
	if err := r.db.WithContext(ctx).Select("credits").Where("id = ?", id).First(&user).Error; err != nil {
		return 0, err
	}
	return user.Credits, nil
}
