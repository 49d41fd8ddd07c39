// Package repository provides data access for the notification module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	notificationModel "github.com/tdnguyen-dev/sanbong/internal/notification/model"
)

// Repository defines notification data access operations.
type Repository interface {
	// Create inserts a notification.
	Create(ctx context.Context, n *notificationModel.Notification) error

	// GetByID finds a notification by id.
	GetByID(ctx context.Context, id uint) (*notificationModel.Notification, error)

	// ListByUser returns a user's notifications, newest first; limit<=0 means no limit.
	ListByUser(ctx context.Context, userID uint, limit int) ([]notificationModel.Notification, error)

	// MarkRead sets is_read on one notification.
	MarkRead(ctx context.Context, id uint) error

	// MarkAllRead sets is_read on all of a user's unread notifications.
	MarkAllRead(ctx context.Context, userID uint) error

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uint) (int64, error)

	// Delete removes a notification.
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

// New creates a notification repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *notificationModel.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*notificationModel.Notification, error) {
	var n notificationModel.Notification
	err := r.db.WithContext(ctx).First(&n, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notificationModel.ErrNotificationNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint, limit int) ([]notificationModel.Notification, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var items []notificationModel.Notification
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []notificationModel.Notification{}
	}
	return items, nil
}

func (r *repository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&notificationModel.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *repository) MarkAllRead(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&notificationModel.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *repository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&notificationModel.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&notificationModel.Notification{}, id).Error
}
