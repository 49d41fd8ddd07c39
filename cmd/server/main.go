// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRouter "github.com/tdnguyen-dev/sanbong/internal/auth/router"
	"github.com/tdnguyen-dev/sanbong/internal/config"
	"github.com/tdnguyen-dev/sanbong/internal/database"
	fieldRouter "github.com/tdnguyen-dev/sanbong/internal/field/router"
	matchRouter "github.com/tdnguyen-dev/sanbong/internal/match/router"
	messageRouter "github.com/tdnguyen-dev/sanbong/internal/message/router"
	"github.com/tdnguyen-dev/sanbong/internal/middleware"
	notificationRepository "github.com/tdnguyen-dev/sanbong/internal/notification/repository"
	notificationRouter "github.com/tdnguyen-dev/sanbong/internal/notification/router"
	notificationService "github.com/tdnguyen-dev/sanbong/internal/notification/service"
	postRouter "github.com/tdnguyen-dev/sanbong/internal/post/router"
	ratingRouter "github.com/tdnguyen-dev/sanbong/internal/rating/router"
	teamRouter "github.com/tdnguyen-dev/sanbong/internal/team/router"
	"github.com/tdnguyen-dev/sanbong/pkg/logger"
)

func main() {
	// Missing .env is fine; variables may come from the real environment.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zlog.Warnw("failed to close database", "error", err)
		}
	}()

	if cfg.MigrateOnStart {
		if err := database.Migrate(db); err != nil {
			zlog.Fatalw("failed to apply migrations", "error", err)
		}
		zlog.Infow("database migrations applied")
	}

	gin.SetMode(cfg.GinMode)
	engine := buildEngine(db, cfg, zlog)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Infow("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zlog.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("graceful shutdown failed", "error", err)
	}
}

// buildEngine assembles the gin engine with middleware and all module routes.
func buildEngine(db *gorm.DB, cfg config.Config, zlog *zap.SugaredLogger) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(cors.Default())

	engine.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.HealthCheck(ctx, db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRouter.RegisterRoutes(engine, db, cfg.Auth, zlog)

	public := engine.Group("/")
	authed := engine.Group("/")
	authed.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// One notification service instance backs both its own routes and the
	// lifecycle fan-out of the other modules.
	notifSvc := notificationService.New(notificationRepository.New(db), zlog)

	teamRouter.RegisterRoutes(public, authed, db, notifSvc, zlog)
	fieldRouter.RegisterRoutes(public, authed, db, zlog)
	postRouter.RegisterRoutes(public, authed, db, zlog)
	matchRouter.RegisterRoutes(public, authed, db, notifSvc, zlog)
	ratingRouter.RegisterRoutes(public, authed, db, zlog)
	messageRouter.RegisterRoutes(authed, db, notifSvc, zlog)
	notificationRouter.RegisterRoutes(authed, notifSvc, zlog)

	return engine
}
