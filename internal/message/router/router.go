// Package router provides message module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tdnguyen-dev/sanbong/internal/message/handler"
	"github.com/tdnguyen-dev/sanbong/internal/message/repository"
	"github.com/tdnguyen-dev/sanbong/internal/message/service"
	notificationService "github.com/tdnguyen-dev/sanbong/internal/notification/service"
	postRepository "github.com/tdnguyen-dev/sanbong/internal/post/repository"
)

// RegisterRoutes registers message module routes. All message endpoints
// require authentication.
func RegisterRoutes(authed *gin.RouterGroup, db *gorm.DB, notifier notificationService.Notifier, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, postRepository.New(db), notifier, logger)
	h := handler.New(svc, logger)

	authed.POST("/messages", h.Send)
	authed.GET("/messages", h.ListMine)
	authed.GET("/messages/unread-count", h.UnreadCount)
	authed.POST("/messages/read-all", h.MarkAllRead)
	authed.GET("/messages/conversation/:userId", h.Conversation)
	authed.POST("/messages/:id/read", h.MarkRead)
	authed.DELETE("/messages/:id", h.Delete)
	authed.GET("/posts/:id/messages", h.ListByPost)
}
