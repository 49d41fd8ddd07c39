// Package repository provides data access for the auth module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
)

// Repository defines user data access operations.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *authModel.User) error

	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (*authModel.User, error)

	// GetByID finds a user by id.
	GetByID(ctx context.Context, id uint) (*authModel.User, error)
}

type repository struct {
	db *gorm.DB
}

// New creates an auth repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *authModel.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if isDuplicateError(err) {
			return authModel.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*authModel.User, error) {
	var user authModel.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*authModel.User, error) {
	var user authModel.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// isDuplicateError checks for unique constraint violations across drivers.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
