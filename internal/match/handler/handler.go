// Package handler provides HTTP handlers for match endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	fieldModel "github.com/tdnguyen-dev/sanbong/internal/field/model"
	matchModel "github.com/tdnguyen-dev/sanbong/internal/match/model"
	"github.com/tdnguyen-dev/sanbong/internal/match/service"
	"github.com/tdnguyen-dev/sanbong/internal/middleware"
	postModel "github.com/tdnguyen-dev/sanbong/internal/post/model"
	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
	"github.com/tdnguyen-dev/sanbong/pkg/response"
)

// Handler handles HTTP requests for match endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a match handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /matches.
func (h *Handler) Create(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req matchModel.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	match, err := h.service.CreateMatch(c.Request.Context(), actorID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

// Get handles GET /matches/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	match, err := h.service.GetMatchByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// ListByTeam handles GET /teams/:id/matches.
func (h *Handler) ListByTeam(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	matches, err := h.service.GetMatchesByTeam(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// Upcoming handles GET /matches/upcoming.
func (h *Handler) Upcoming(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	matches, err := h.service.GetUpcomingMatchesByUser(c.Request.Context(), actorID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// Past handles GET /matches/past.
func (h *Handler) Past(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	matches, err := h.service.GetPastMatchesByUser(c.Request.Context(), actorID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// UpdateStatus handles PUT /matches/:id/status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req matchModel.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	match, err := h.service.UpdateMatchStatus(c.Request.Context(), id, actorID, req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// Cancel handles POST /matches/:id/cancel.
func (h *Handler) Cancel(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	// The cancellation reason is optional, so an empty body is accepted.
	var req matchModel.CancelMatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Validation(c, "invalid request body")
			return
		}
	}

	match, err := h.service.CancelMatch(c.Request.Context(), id, actorID, req.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, matchModel.ErrMatchNotFound):
		response.NotFound(c, "match not found")
	case errors.Is(err, postModel.ErrPostNotFound):
		response.NotFound(c, "match post not found")
	case errors.Is(err, teamModel.ErrTeamNotFound):
		response.NotFound(c, "team not found")
	case errors.Is(err, fieldModel.ErrFieldNotFound):
		response.NotFound(c, "field not found")
	case errors.Is(err, matchModel.ErrNotParticipant):
		response.Forbidden(c, "only match participants may perform this action")
	case errors.Is(err, matchModel.ErrInvalidTransition):
		response.InvalidTransition(c, "invalid match status transition")
	case errors.Is(err, matchModel.ErrNotCancellable):
		response.InvalidState(c, "match can no longer be cancelled")
	case errors.Is(err, postModel.ErrPostInactive):
		response.InvalidState(c, "match post is no longer active")
	case errors.Is(err, fieldModel.ErrSlotAlreadyBooked):
		response.Conflict(c, "the field slot is already booked")
	case errors.Is(err, matchModel.ErrSameTeams):
		response.Validation(c, "a team cannot play against itself")
	case errors.Is(err, matchModel.ErrInvalidMatchData):
		response.Validation(c, "invalid match data")
	case errors.Is(err, fieldModel.ErrInvalidTimeWindow):
		response.Validation(c, "invalid time window")
	default:
		h.logger.Errorw("match operation failed", "error", err)
		response.Internal(c)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid match id")
		return 0, false
	}
	return uint(id), true
}
