// Package router provides match module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fieldRepository "github.com/tdnguyen-dev/sanbong/internal/field/repository"
	"github.com/tdnguyen-dev/sanbong/internal/match/handler"
	"github.com/tdnguyen-dev/sanbong/internal/match/repository"
	"github.com/tdnguyen-dev/sanbong/internal/match/service"
	notificationService "github.com/tdnguyen-dev/sanbong/internal/notification/service"
	postRepository "github.com/tdnguyen-dev/sanbong/internal/post/repository"
	teamRepository "github.com/tdnguyen-dev/sanbong/internal/team/repository"
)

// RegisterRoutes registers match module routes.
func RegisterRoutes(public, authed *gin.RouterGroup, db *gorm.DB, notifier notificationService.Notifier, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, postRepository.New(db), teamRepository.New(db),
		fieldRepository.New(db), notifier, db, logger)
	h := handler.New(svc, logger)

	public.GET("/matches/:id", h.Get)
	public.GET("/teams/:id/matches", h.ListByTeam)

	authed.POST("/matches", h.Create)
	authed.GET("/matches/upcoming", h.Upcoming)
	authed.GET("/matches/past", h.Past)
	authed.PUT("/matches/:id/status", h.UpdateStatus)
	authed.POST("/matches/:id/cancel", h.Cancel)
}
