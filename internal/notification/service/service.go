// Package service provides notification business logic and the Notifier
// collaborator used by other modules for lifecycle fan-out.
package service

import (
	"context"

	"go.uber.org/zap"

	notificationModel "github.com/tdnguyen-dev/sanbong/internal/notification/model"
	"github.com/tdnguyen-dev/sanbong/internal/notification/repository"
)

// Notifier is the dispatch interface consumed by other modules. Delivery is
// synchronous and at-least-once: callers log failures without rolling back
// their primary operation.
type Notifier interface {
	Notify(ctx context.Context, userID uint, ntype notificationModel.NotificationType,
		title, content string, relatedID *uint) error
}

// Service defines notification business logic operations.
type Service interface {
	Notifier

	// Create creates a notification from an explicit request.
	Create(ctx context.Context, req *notificationModel.CreateNotificationRequest) (*notificationModel.Notification, error)

	// GetByUser returns a user's notifications, newest first.
	GetByUser(ctx context.Context, userID uint, limit int) ([]notificationModel.Notification, error)

	// MarkAsRead marks one notification as read; only the recipient may do so.
	MarkAsRead(ctx context.Context, id, actorID uint) error

	// MarkAllAsRead marks all of the actor's notifications as read.
	MarkAllAsRead(ctx context.Context, actorID uint) error

	// UnreadCount returns the actor's unread notification count.
	UnreadCount(ctx context.Context, actorID uint) (int64, error)

	// Delete removes a notification; only the recipient may do so.
	Delete(ctx context.Context, id, actorID uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a notification service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Notify(ctx context.Context, userID uint, ntype notificationModel.NotificationType,
	title, content string, relatedID *uint) error {
	if !ntype.Valid() {
		return notificationModel.ErrInvalidType
	}
	n := &notificationModel.Notification{
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Content:   content,
		RelatedID: relatedID,
	}
	return s.repo.Create(ctx, n)
}

func (s *service) Create(ctx context.Context, req *notificationModel.CreateNotificationRequest) (*notificationModel.Notification, error) {
	if !req.Type.Valid() {
		return nil, notificationModel.ErrInvalidType
	}
	n := &notificationModel.Notification{
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Content:   req.Content,
		RelatedID: req.RelatedID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) GetByUser(ctx context.Context, userID uint, limit int) ([]notificationModel.Notification, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *service) MarkAsRead(ctx context.Context, id, actorID uint) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.UserID != actorID {
		return notificationModel.ErrNotRecipient
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, actorID uint) error {
	return s.repo.MarkAllRead(ctx, actorID)
}

func (s *service) UnreadCount(ctx context.Context, actorID uint) (int64, error) {
	return s.repo.CountUnread(ctx, actorID)
}

func (s *service) Delete(ctx context.Context, id, actorID uint) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.UserID != actorID {
		return notificationModel.ErrNotRecipient
	}
	return s.repo.Delete(ctx, id)
}
