// Package router provides field module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tdnguyen-dev/sanbong/internal/field/handler"
	"github.com/tdnguyen-dev/sanbong/internal/field/repository"
	"github.com/tdnguyen-dev/sanbong/internal/field/service"
)

// RegisterRoutes registers field module routes.
func RegisterRoutes(public, authed *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	public.GET("/fields", h.ListFields)
	public.GET("/fields/available", h.AvailableFields)
	public.GET("/fields/:id", h.GetField)
	public.GET("/fields/:id/availability", h.ListAvailability)

	authed.POST("/fields", h.CreateField)
	authed.POST("/fields/:id/availability", h.CreateAvailability)
	authed.POST("/availability/:id/book", h.BookSlot)
	authed.POST("/availability/:id/release", h.ReleaseSlot)
}
