// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
	"github.com/tdnguyen-dev/sanbong/internal/auth/service"
	"github.com/tdnguyen-dev/sanbong/pkg/response"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates an auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req authModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authModel.ErrEmailTaken):
			response.Conflict(c, "email already registered")
		case errors.Is(err, authModel.ErrInvalidRole):
			response.Validation(c, "invalid role")
		default:
			h.logger.Errorw("error registering user", "error", err)
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req authModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, authModel.ErrInvalidCredentials) {
			response.Error(c, "UNAUTHORIZED", "invalid email or password", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("error logging in", "error", err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUser handles GET /users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid user id")
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, authModel.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		h.logger.Errorw("error getting user", "user_id", id, "error", err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, user)
}
