// Package router provides match post module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fieldRepository "github.com/tdnguyen-dev/sanbong/internal/field/repository"
	"github.com/tdnguyen-dev/sanbong/internal/post/handler"
	"github.com/tdnguyen-dev/sanbong/internal/post/repository"
	"github.com/tdnguyen-dev/sanbong/internal/post/service"
	teamRepository "github.com/tdnguyen-dev/sanbong/internal/team/repository"
)

// RegisterRoutes registers match post module routes.
func RegisterRoutes(public, authed *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, teamRepository.New(db), fieldRepository.New(db), logger)
	h := handler.New(svc, logger)

	public.GET("/posts", h.List)
	public.GET("/posts/search", h.Search)
	public.GET("/posts/:id", h.Get)
	public.GET("/posts/by-author/:id", h.ListByAuthor)

	authed.POST("/posts", h.Create)
	authed.PUT("/posts/:id", h.Update)
	authed.POST("/posts/:id/deactivate", h.Deactivate)
}
