// Package handler provides HTTP handlers for field endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
	fieldModel "github.com/tdnguyen-dev/sanbong/internal/field/model"
	"github.com/tdnguyen-dev/sanbong/internal/field/service"
	"github.com/tdnguyen-dev/sanbong/internal/middleware"
	"github.com/tdnguyen-dev/sanbong/pkg/response"
)

// Handler handles HTTP requests for field endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a field handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateField handles POST /fields.
func (h *Handler) CreateField(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req fieldModel.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	field, err := h.service.CreateField(c.Request.Context(), actorID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, field)
}

// GetField handles GET /fields/:id.
func (h *Handler) GetField(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid field id")
	if !ok {
		return
	}

	field, err := h.service.GetFieldByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, field)
}

// ListFields handles GET /fields?owner_id= or ?city=.
func (h *Handler) ListFields(c *gin.Context) {
	if ownerStr := c.Query("owner_id"); ownerStr != "" {
		ownerID, err := strconv.ParseUint(ownerStr, 10, 32)
		if err != nil {
			response.Validation(c, "invalid owner_id")
			return
		}
		fields, err := h.service.GetFieldsByOwner(c.Request.Context(), uint(ownerID))
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, fields)
		return
	}

	city := c.Query("city")
	if city == "" {
		response.Validation(c, "owner_id or city parameter is required")
		return
	}
	fields, err := h.service.GetFieldsByCity(c.Request.Context(), city)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// CreateAvailability handles POST /fields/:id/availability.
func (h *Handler) CreateAvailability(c *gin.Context) {
	actorID, err := middleware.UserID(c)
	if err != nil {
		response.Error(c, "UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c, "id", "invalid field id")
	if !ok {
		return
	}

	var req fieldModel.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, "invalid request body")
		return
	}

	slot, err := h.service.CreateAvailability(c.Request.Context(), id, actorID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ListAvailability handles GET /fields/:id/availability.
func (h *Handler) ListAvailability(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid field id")
	if !ok {
		return
	}

	slots, err := h.service.GetFieldAvailability(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// AvailableFields handles GET /fields/available?city=&date=&start=&end=.
func (h *Handler) AvailableFields(c *gin.Context) {
	city := c.Query("city")
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if city == "" || err != nil {
		response.Validation(c, "city and date parameters are required")
		return
	}

	q := fieldModel.AvailableFieldsQuery{
		City:      city,
		Date:      date,
		StartTime: c.Query("start"),
		EndTime:   c.Query("end"),
	}
	fields, err := h.service.GetAvailableFields(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// BookSlot handles POST /availability/:id/book.
func (h *Handler) BookSlot(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid availability id")
	if !ok {
		return
	}

	slot, err := h.service.BookSlot(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// ReleaseSlot handles POST /availability/:id/release.
func (h *Handler) ReleaseSlot(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid availability id")
	if !ok {
		return
	}

	if err := h.service.ReleaseSlot(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fieldModel.ErrFieldNotFound):
		response.NotFound(c, "field not found")
	case errors.Is(err, fieldModel.ErrSlotNotFound):
		response.NotFound(c, "availability slot not found")
	case errors.Is(err, authModel.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, fieldModel.ErrNotFieldOwner):
		response.Forbidden(c, "only the field owner may perform this action")
	case errors.Is(err, fieldModel.ErrOwnerRoleRequired):
		response.Forbidden(c, "field owner role required")
	case errors.Is(err, fieldModel.ErrSlotConflict):
		response.Conflict(c, "slot overlaps an existing availability")
	case errors.Is(err, fieldModel.ErrSlotAlreadyBooked):
		response.Conflict(c, "slot is already booked")
	case errors.Is(err, fieldModel.ErrInvalidTimeWindow):
		response.Validation(c, "invalid time window")
	case errors.Is(err, fieldModel.ErrInvalidFieldData):
		response.Validation(c, "capacity and hourly rate must be positive")
	default:
		h.logger.Errorw("field operation failed", "error", err)
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
