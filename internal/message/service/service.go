// Package service provides direct message business logic.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
	messageModel "github.com/tdnguyen-dev/sanbong/internal/message/model"
	messageRepository "github.com/tdnguyen-dev/sanbong/internal/message/repository"
	notificationModel "github.com/tdnguyen-dev/sanbong/internal/notification/model"
	notificationService "github.com/tdnguyen-dev/sanbong/internal/notification/service"
	postRepository "github.com/tdnguyen-dev/sanbong/internal/post/repository"
)

// Service defines message business logic operations.
type Service interface {
	// SendMessage delivers a direct message and emits a MESSAGE_RECEIVED
	// notification to the recipient.
	SendMessage(ctx context.Context, senderID uint, req *messageModel.SendMessageRequest) (*messageModel.Message, error)

	// GetConversation returns both directions of a two user thread in
	// chronological order.
	GetConversation(ctx context.Context, actorID, otherID uint) ([]messageModel.Message, error)

	// GetMessagesByUser returns the actor's sent and received messages.
	GetMessagesByUser(ctx context.Context, actorID uint) (*messageModel.MessagesByUserResponse, error)

	// GetMessagesForPost returns messages attached to a match post.
	GetMessagesForPost(ctx context.Context, postID uint) ([]messageModel.Message, error)

	// MarkMessageAsRead marks one message read; recipient only.
	MarkMessageAsRead(ctx context.Context, id, actorID uint) error

	// MarkAllMessagesAsRead marks all of the actor's received messages read.
	MarkAllMessagesAsRead(ctx context.Context, actorID uint) error

	// GetUnreadMessageCount returns the actor's unread message count.
	GetUnreadMessageCount(ctx context.Context, actorID uint) (int64, error)

	// DeleteMessage removes a message; sender only.
	DeleteMessage(ctx context.Context, id, actorID uint) error
}

type service struct {
	repo     messageRepository.Repository
	postRepo postRepository.Repository
	notifier notificationService.Notifier
	logger   *zap.SugaredLogger
}

// New creates a message service instance.
func New(
	repo messageRepository.Repository,
	postRepo postRepository.Repository,
	notifier notificationService.Notifier,
	logger *zap.SugaredLogger,
) Service {
	return &service{repo: repo, postRepo: postRepo, notifier: notifier, logger: logger}
}

func (s *service) SendMessage(ctx context.Context, senderID uint, req *messageModel.SendMessageRequest) (*messageModel.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, messageModel.ErrEmptyContent
	}
	if req.RecipientID == senderID {
		return nil, messageModel.ErrSelfMessage
	}

	exists, err := s.repo.UserExists(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, authModel.ErrUserNotFound
	}
	if req.PostID != nil {
		if _, err := s.postRepo.GetByID(ctx, *req.PostID); err != nil {
			return nil, err
		}
	}

	message := &messageModel.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		PostID:      req.PostID,
		Content:     req.Content,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	messageID := message.ID
	if err := s.notifier.Notify(ctx, message.RecipientID, notificationModel.TypeMessageReceived,
		"New message", "You have received a new message.", &messageID); err != nil {
		s.logger.Warnw("failed to deliver message notification",
			"message_id", message.ID, "recipient_id", message.RecipientID, "error", err)
	}
	return message, nil
}

func (s *service) GetConversation(ctx context.Context, actorID, otherID uint) ([]messageModel.Message, error) {
	exists, err := s.repo.UserExists(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, authModel.ErrUserNotFound
	}
	return s.repo.ListConversation(ctx, actorID, otherID)
}

func (s *service) GetMessagesByUser(ctx context.Context, actorID uint) (*messageModel.MessagesByUserResponse, error) {
	sent, err := s.repo.ListSent(ctx, actorID)
	if err != nil {
		return nil, err
	}
	received, err := s.repo.ListReceived(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if sent == nil {
		sent = []messageModel.Message{}
	}
	if received == nil {
		received = []messageModel.Message{}
	}
	return &messageModel.MessagesByUserResponse{Sent: sent, Received: received}, nil
}

func (s *service) GetMessagesForPost(ctx context.Context, postID uint) ([]messageModel.Message, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.repo.ListByPost(ctx, postID)
}

func (s *service) MarkMessageAsRead(ctx context.Context, id, actorID uint) error {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message.RecipientID != actorID {
		return messageModel.ErrNotRecipient
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *service) MarkAllMessagesAsRead(ctx context.Context, actorID uint) error {
	return s.repo.MarkAllRead(ctx, actorID)
}

func (s *service) GetUnreadMessageCount(ctx context.Context, actorID uint) (int64, error) {
	return s.repo.CountUnread(ctx, actorID)
}

func (s *service) DeleteMessage(ctx context.Context, id, actorID uint) error {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message.SenderID != actorID {
		return messageModel.ErrNotSender
	}
	return s.repo.Delete(ctx, id)
}
