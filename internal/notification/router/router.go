// Package router provides notification module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tdnguyen-dev/sanbong/internal/notification/handler"
	"github.com/tdnguyen-dev/sanbong/internal/notification/service"
)

// RegisterRoutes registers notification module routes on an authenticated group.
func RegisterRoutes(g *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	g.POST("/notifications", h.Create)
	g.GET("/notifications", h.List)
	g.GET("/notifications/unread-count", h.UnreadCount)
	g.POST("/notifications/read-all", h.MarkAllAsRead)
	g.POST("/notifications/:id/read", h.MarkAsRead)
	g.DELETE("/notifications/:id", h.Delete)
}
