// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
	"github.com/tdnguyen-dev/sanbong/internal/middleware"
	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
	"github.com/tdnguyen-dev/sanbong/internal/team/service"
	"github.com/tdnguyen-dev/sanbong/pkg/response"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams.
func (h *Handler) CreateTeam(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), actorID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT /teams/:id.
func (h *Handler) UpdateTeam(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), id, actorID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// ListByOwner handles GET /teams?owner_id=.
func (h *Handler) ListByOwner(c *gin.Context) {
	ownerID, err := strconv.ParseUint(c.Query("owner_id"), 10, 32)
	if err != nil {
		response.Validation(c, "owner_id parameter is required")
		return
	}

	teams, err := h.service.GetTeamsByOwner(c.Request.Context(), uint(ownerID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id.
func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	resp, err := h.service.GetTeamByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddMember handles POST /teams/:id/members.
func (h *Handler) AddMember(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	var req teamModel.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	member, err := h.service.AddTeamMember(c.Request.Context(), id, actorID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// RemoveMember handles DELETE /teams/:id/members/:userId.
func (h *Handler) RemoveMember(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId", "invalid user id")
	if !ok {
		return
	}

	if err := h.service.RemoveTeamMember(c.Request.Context(), id, actorID, userID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListMembers handles GET /teams/:id/members.
func (h *Handler) ListMembers(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}

	members, err := h.service.GetTeamMembers(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// UpdateEvaluation handles PUT /teams/:id/members/:userId/evaluation.
func (h *Handler) UpdateEvaluation(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c, "id", "invalid team id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId", "invalid user id")
	if !ok {
		return
	}

	var req teamModel.UpdateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	member, err := h.service.UpdateMemberEvaluation(c.Request.Context(), id, actorID, userID, req.SkillEvaluation)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, teamModel.ErrTeamNotFound):
		response.NotFound(c, "team not found")
	case errors.Is(err, teamModel.ErrMemberNotFound):
		response.NotFound(c, "team member not found")
	case errors.Is(err, authModel.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, teamModel.ErrNotTeamOwner):
		response.Forbidden(c, "only the team owner may perform this action")
	case errors.Is(err, teamModel.ErrCannotRemoveOwner):
		response.Forbidden(c, "the team owner cannot be removed")
	case errors.Is(err, teamModel.ErrAlreadyMember):
		response.Conflict(c, "user is already a team member")
	case errors.Is(err, teamModel.ErrInvalidSkillLevel):
		response.Validation(c, "invalid skill level")
	default:
		h.logger.Errorw("team operation failed", "error", err)
		response.Internal(c)
	}
}

func parseID(c *gin.Context, param, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		response.Validation(c, message)
		return 0, false
	}
	return uint(id), true
}
