// Package router provides team module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	notificationService "github.com/tdnguyen-dev/sanbong/internal/notification/service"
	"github.com/tdnguyen-dev/sanbong/internal/team/handler"
	"github.com/tdnguyen-dev/sanbong/internal/team/repository"
	"github.com/tdnguyen-dev/sanbong/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(public, authed *gin.RouterGroup, db *gorm.DB, notifier notificationService.Notifier, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, notifier, logger)
	h := handler.New(svc, logger)

	public.GET("/teams", h.ListByOwner)
	public.GET("/teams/:id", h.GetTeam)
	public.GET("/teams/:id/members", h.ListMembers)

	authed.POST("/teams", h.CreateTeam)
	authed.PUT("/teams/:id", h.UpdateTeam)
	authed.POST("/teams/:id/members", h.AddMember)
	authed.DELETE("/teams/:id/members/:userId", h.RemoveMember)
	authed.PUT("/teams/:id/members/:userId/evaluation", h.UpdateEvaluation)
}
