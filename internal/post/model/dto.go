package model

import (
	"time"

	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
)

// CreateMatchPostRequest is the payload for publishing a match post.
type CreateMatchPostRequest struct {
	TeamID             *uint                `json:"team_id"`
	FieldID            *uint                `json:"field_id"`
	PostType           PostType             `json:"post_type" binding:"required"`
	Title              string               `json:"title" binding:"required"`
	Description        *string              `json:"description"`
	MatchDate          time.Time            `json:"match_date" binding:"required" time_format:"2006-01-02"`
	StartTime          string               `json:"start_time" binding:"required"`
	EndTime            string               `json:"end_time" binding:"required"`
	RequiredSkillLevel teamModel.SkillLevel `json:"required_skill_level" binding:"required"`
	MatchType          MatchType            `json:"match_type" binding:"required"`
	City               string               `json:"city" binding:"required"`
	ContactPhone       *string              `json:"contact_phone"`
	ContactZalo        *string              `json:"contact_zalo"`
}

// UpdateMatchPostRequest is the payload for editing a post. Nil fields are
// left unchanged.
type UpdateMatchPostRequest struct {
	Title              *string               `json:"title"`
	Description        *string               `json:"description"`
	MatchDate          *time.Time            `json:"match_date" time_format:"2006-01-02"`
	StartTime          *string               `json:"start_time"`
	EndTime            *string               `json:"end_time"`
	RequiredSkillLevel *teamModel.SkillLevel `json:"required_skill_level"`
	MatchType          *MatchType            `json:"match_type"`
	City               *string               `json:"city"`
	ContactPhone       *string               `json:"contact_phone"`
	ContactZalo        *string               `json:"contact_zalo"`
}

// ListFilters narrows the active post listing.
type ListFilters struct {
	City       string
	PostType   PostType
	SkillLevel teamModel.SkillLevel
	MatchType  MatchType
	Date       *time.Time
}
