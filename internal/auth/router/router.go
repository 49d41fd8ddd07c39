// Package router provides auth module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tdnguyen-dev/sanbong/internal/auth/handler"
	"github.com/tdnguyen-dev/sanbong/internal/auth/repository"
	"github.com/tdnguyen-dev/sanbong/internal/auth/service"
	appConfig "github.com/tdnguyen-dev/sanbong/internal/config"
)

// RegisterRoutes registers auth module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/users/:id", h.GetUser)
}
