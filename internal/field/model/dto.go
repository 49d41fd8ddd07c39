package model

import "time"

// CreateFieldRequest is the payload for registering a field.
type CreateFieldRequest struct {
	Name        string  `json:"name" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	SurfaceType string  `json:"surface_type" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required"`
	HourlyRate  float64 `json:"hourly_rate" binding:"required"`
	Description *string `json:"description"`
}

// CreateAvailabilityRequest is the payload for publishing a slot.
type CreateAvailabilityRequest struct {
	Date      time.Time `json:"date" binding:"required" time_format:"2006-01-02"`
	StartTime string    `json:"start_time" binding:"required"`
	EndTime   string    `json:"end_time" binding:"required"`
}

// AvailableFieldsQuery filters fields with a free slot in a window.
type AvailableFieldsQuery struct {
	City      string
	Date      time.Time
	StartTime string
	EndTime   string
}
