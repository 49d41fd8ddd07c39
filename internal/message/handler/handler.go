// Package handler provides HTTP handlers for direct message endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
	messageModel "github.com/tdnguyen-dev/sanbong/internal/message/model"
	"github.com/tdnguyen-dev/sanbong/internal/message/service"
	"github.com/tdnguyen-dev/sanbong/internal/middleware"
	postModel "github.com/tdnguyen-dev/sanbong/internal/post/model"
	"github.com/tdnguyen-dev/sanbong/pkg/response"
)

// Handler handles HTTP requests for message endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a message handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Send handles POST /messages.
func (h *Handler) Send(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}

	var req messageModel.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	message, err := h.service.SendMessage(c.Request.Context(), actorID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// Conversation handles GET /messages/conversation/:userId.
func (h *Handler) Conversation(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}
	otherID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid user id")
		return
	}

	messages, err := h.service.GetConversation(c.Request.Context(), actorID, uint(otherID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// ListMine handles GET /messages.
func (h *Handler) ListMine(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}
	messages, err := h.service.GetMessagesByUser(c.Request.Context(), actorID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// ListByPost handles GET /posts/:id/messages.
func (h *Handler) ListByPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid post id")
		return
	}
	messages, err := h.service.GetMessagesForPost(c.Request.Context(), uint(id))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkRead handles POST /messages/:id/read.
func (h *Handler) MarkRead(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid message id")
		return
	}
	if err := h.service.MarkMessageAsRead(c.Request.Context(), uint(id), actorID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /messages/read-all.
func (h *Handler) MarkAllRead(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}
	if err := h.service.MarkAllMessagesAsRead(c.Request.Context(), actorID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnreadCount handles GET /messages/unread-count.
func (h *Handler) UnreadCount(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}
	count, err := h.service.GetUnreadMessageCount(c.Request.Context(), actorID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// Delete handles DELETE /messages/:id.
func (h *Handler) Delete(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid message id")
		return
	}
	if err := h.service.DeleteMessage(c.Request.Context(), uint(id), actorID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) actor(c *gin.Context) (uint, bool) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return 0, false
	}
	return actorID, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, messageModel.ErrMessageNotFound):
		response.NotFound(c, "message not found")
	case errors.Is(err, authModel.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, postModel.ErrPostNotFound):
		response.NotFound(c, "match post not found")
	case errors.Is(err, messageModel.ErrNotRecipient):
		response.Forbidden(c, "only the recipient may mark a message as read")
	case errors.Is(err, messageModel.ErrNotSender):
		response.Forbidden(c, "only the sender may delete a message")
	case errors.Is(err, messageModel.ErrSelfMessage):
		response.Validation(c, "cannot send a message to yourself")
	case errors.Is(err, messageModel.ErrEmptyContent):
		response.Validation(c, "message content cannot be empty")
	default:
		h.logger.Errorw("message operation failed", "error", err)
		response.Internal(c)
	}
}
