// Package handler provides HTTP handlers for team rating endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	matchModel "github.com/tdnguyen-dev/sanbong/internal/match/model"
	"github.com/tdnguyen-dev/sanbong/internal/middleware"
	ratingModel "github.com/tdnguyen-dev/sanbong/internal/rating/model"
	"github.com/tdnguyen-dev/sanbong/internal/rating/service"
	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
	"github.com/tdnguyen-dev/sanbong/pkg/response"
)

// Handler handles HTTP requests for team rating endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a rating handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /ratings.
func (h *Handler) Create(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req ratingModel.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	rating, err := h.service.CreateTeamRating(c.Request.Context(), actorID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// Eligibility handles GET /ratings/eligibility.
func (h *Handler) Eligibility(c *gin.Context) {
	matchID, ok := parseQueryID(c, "match_id")
	if !ok {
		return
	}
	raterID, ok := parseQueryID(c, "rater_team_id")
	if !ok {
		return
	}
	ratedID, ok := parseQueryID(c, "rated_team_id")
	if !ok {
		return
	}

	eligibility, err := h.service.CanRateTeam(c.Request.Context(), matchID, raterID, ratedID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eligibility)
}

// GetForMatch handles GET /ratings/for-match.
func (h *Handler) GetForMatch(c *gin.Context) {
	matchID, ok := parseQueryID(c, "match_id")
	if !ok {
		return
	}
	raterID, ok := parseQueryID(c, "rater_team_id")
	if !ok {
		return
	}
	ratedID, ok := parseQueryID(c, "rated_team_id")
	if !ok {
		return
	}

	rating, err := h.service.GetRatingForMatch(c.Request.Context(), matchID, raterID, ratedID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// ListReceived handles GET /teams/:id/ratings.
func (h *Handler) ListReceived(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ratings, err := h.service.GetTeamRatings(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// ListGiven handles GET /teams/:id/ratings/given.
func (h *Handler) ListGiven(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ratings, err := h.service.GetRatingsGivenByTeam(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// ListByMatch handles GET /matches/:id/ratings.
func (h *Handler) ListByMatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ratings, err := h.service.GetRatingsForMatch(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// Stats handles GET /teams/:id/ratings/stats.
func (h *Handler) Stats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	stats, err := h.service.GetTeamRatingStats(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ratingModel.ErrRatingNotFound):
		response.NotFound(c, "rating not found")
	case errors.Is(err, matchModel.ErrMatchNotFound):
		response.NotFound(c, "match not found")
	case errors.Is(err, teamModel.ErrTeamNotFound):
		response.NotFound(c, "team not found")
	case errors.Is(err, ratingModel.ErrDuplicateRating):
		response.Conflict(c, "this team has already been rated for this match")
	case errors.Is(err, ratingModel.ErrMatchNotCompleted):
		response.InvalidState(c, "only completed matches can be rated")
	case errors.Is(err, ratingModel.ErrTeamNotInMatch):
		response.Forbidden(c, "team did not participate in this match")
	case errors.Is(err, ratingModel.ErrNotRaterCaptain):
		response.Forbidden(c, "only the rating team's owner may submit a rating")
	case errors.Is(err, ratingModel.ErrSelfRating):
		response.Validation(c, "a team cannot rate itself")
	case errors.Is(err, ratingModel.ErrInvalidScore):
		response.Validation(c, "ratings must be between 1 and 5")
	default:
		h.logger.Errorw("rating operation failed", "error", err)
		response.Internal(c)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func parseQueryID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		response.Validation(c, "invalid or missing "+name)
		return 0, false
	}
	return uint(id), true
}
