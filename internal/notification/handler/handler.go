// Package handler provides HTTP handlers for notification endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tdnguyen-dev/sanbong/internal/middleware"
	notificationModel "github.com/tdnguyen-dev/sanbong/internal/notification/model"
	"github.com/tdnguyen-dev/sanbong/internal/notification/service"
	"github.com/tdnguyen-dev/sanbong/pkg/response"
)

// Handler handles HTTP requests for notification endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a notification handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /notifications.
func (h *Handler) Create(c *gin.Context) {
	if _, err := middleware.UserID(c); err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req notificationModel.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	n, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, 0)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// List handles GET /notifications.
func (h *Handler) List(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	items, err := h.service.GetByUser(c.Request.Context(), actorID, limit)
	if err != nil {
		h.logger.Errorw("error listing notifications", "user_id", actorID, "error", err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, items)
}

// MarkAsRead handles POST /notifications/:id/read.
func (h *Handler) MarkAsRead(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid notification id")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), uint(id), actorID); err != nil {
		h.respondError(c, err, uint(id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllAsRead handles POST /notifications/read-all.
func (h *Handler) MarkAllAsRead(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.service.MarkAllAsRead(c.Request.Context(), actorID); err != nil {
		h.logger.Errorw("error marking notifications read", "user_id", actorID, "error", err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UnreadCount handles GET /notifications/unread-count.
func (h *Handler) UnreadCount(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), actorID)
	if err != nil {
		h.logger.Errorw("error counting notifications", "user_id", actorID, "error", err)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Delete handles DELETE /notifications/:id.
func (h *Handler) Delete(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid notification id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id), actorID); err != nil {
		h.respondError(c, err, uint(id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) respondError(c *gin.Context, err error, id uint) {
	switch {
	case errors.Is(err, notificationModel.ErrNotificationNotFound):
		response.NotFound(c, "notification not found")
	case errors.Is(err, notificationModel.ErrNotRecipient):
		response.Forbidden(c, "notification belongs to another user")
	case errors.Is(err, notificationModel.ErrInvalidType):
		response.Validation(c, "invalid notification type")
	default:
		h.logger.Errorw("notification operation failed", "notification_id", id, "error", err)
		response.Internal(c)
	}
}
