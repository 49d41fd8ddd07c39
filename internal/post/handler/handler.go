// Package handler provides HTTP handlers for match post endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	fieldModel "github.com/tdnguyen-dev/sanbong/internal/field/model"
	"github.com/tdnguyen-dev/sanbong/internal/middleware"
	postModel "github.com/tdnguyen-dev/sanbong/internal/post/model"
	"github.com/tdnguyen-dev/sanbong/internal/post/service"
	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
	"github.com/tdnguyen-dev/sanbong/pkg/response"
)

// Handler handles HTTP requests for match post endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a match post handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /posts.
func (h *Handler) Create(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req postModel.CreateMatchPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	post, err := h.service.CreateMatchPost(c.Request.Context(), actorID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update handles PUT /posts/:id.
func (h *Handler) Update(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req postModel.UpdateMatchPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	post, err := h.service.UpdateMatchPost(c.Request.Context(), id, actorID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// List handles GET /posts with optional filters.
func (h *Handler) List(c *gin.Context) {
	filters := postModel.ListFilters{
		City:       c.Query("city"),
		PostType:   postModel.PostType(c.Query("post_type")),
		SkillLevel: teamModel.SkillLevel(c.Query("skill_level")),
		MatchType:  postModel.MatchType(c.Query("match_type")),
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.Validation(c, "invalid date")
			return
		}
		filters.Date = &date
	}

	posts, err := h.service.ListMatchPosts(c.Request.Context(), filters)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get handles GET /posts/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.service.GetMatchPostByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListByAuthor handles GET /posts/by-author/:id.
func (h *Handler) ListByAuthor(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid author id")
		return
	}

	posts, err := h.service.GetMatchPostsByAuthor(c.Request.Context(), uint(authorID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Deactivate handles POST /posts/:id/deactivate.
func (h *Handler) Deactivate(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivateMatchPost(c.Request.Context(), id, actorID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Search handles GET /posts/search?q=&city=.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.Validation(c, "q parameter is required")
		return
	}

	posts, err := h.service.SearchMatchPosts(c.Request.Context(), query, c.Query("city"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, postModel.ErrPostNotFound):
		response.NotFound(c, "match post not found")
	case errors.Is(err, teamModel.ErrTeamNotFound):
		response.NotFound(c, "team not found")
	case errors.Is(err, fieldModel.ErrFieldNotFound):
		response.NotFound(c, "field not found")
	case errors.Is(err, postModel.ErrNotAuthor):
		response.Forbidden(c, "only the post author may perform this action")
	case errors.Is(err, teamModel.ErrNotTeamOwner):
		response.Forbidden(c, "team does not belong to the author")
	case errors.Is(err, fieldModel.ErrNotFieldOwner):
		response.Forbidden(c, "field does not belong to the author")
	case errors.Is(err, postModel.ErrPostInactive):
		response.InvalidState(c, "match post is no longer active")
	case errors.Is(err, postModel.ErrInvalidPostData):
		response.Validation(c, "invalid match post data")
	case errors.Is(err, fieldModel.ErrInvalidTimeWindow):
		response.Validation(c, "invalid time window")
	default:
		h.logger.Errorw("match post operation failed", "error", err)
		response.Internal(c)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Validation(c, "invalid post id")
		return 0, false
	}
	return uint(id), true
}
