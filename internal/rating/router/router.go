// Package router provides rating module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	matchRepository "github.com/tdnguyen-dev/sanbong/internal/match/repository"
	"github.com/tdnguyen-dev/sanbong/internal/rating/handler"
	"github.com/tdnguyen-dev/sanbong/internal/rating/repository"
	"github.com/tdnguyen-dev/sanbong/internal/rating/service"
	teamRepository "github.com/tdnguyen-dev/sanbong/internal/team/repository"
)

// RegisterRoutes registers rating module routes.
func RegisterRoutes(public, authed *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, matchRepository.New(db), teamRepository.New(db), logger)
	h := handler.New(svc, logger)

	public.GET("/teams/:id/ratings", h.ListReceived)
	public.GET("/teams/:id/ratings/given", h.ListGiven)
	public.GET("/teams/:id/ratings/stats", h.Stats)
	public.GET("/matches/:id/ratings", h.ListByMatch)
	public.GET("/ratings/for-match", h.GetForMatch)

	authed.POST("/ratings", h.Create)
	authed.GET("/ratings/eligibility", h.Eligibility)
}
