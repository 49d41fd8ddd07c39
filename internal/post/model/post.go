// Package model provides the match post entity and DTOs.
package model

import (
	"time"

	"gorm.io/gorm"

	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
)

// PostType is the closed set of advertisement kinds.
type PostType string

const (
	PostFindOpponent   PostType = "FIND_OPPONENT"
	PostFieldAvailable PostType = "FIELD_AVAILABLE"
)

// Valid reports whether p is a known post type.
func (p PostType) Valid() bool {
	return p == PostFindOpponent || p == PostFieldAvailable
}

// MatchType is the closed set of match formats.
type MatchType string

const (
	MatchFriendly    MatchType = "FRIENDLY"
	MatchCompetitive MatchType = "COMPETITIVE"
)

// Valid reports whether m is a known match type.
func (m MatchType) Valid() bool {
	return m == MatchFriendly || m == MatchCompetitive
}

// MatchPost is an advertisement seeking an opponent or offering field time.
// A post goes inactive once converted to a match or explicitly deactivated.
type MatchPost struct {
	ID                 uint                 `gorm:"primaryKey;column:id" json:"id"`
	AuthorID           uint                 `gorm:"column:author_id;not null;index" json:"author_id"`
	TeamID             *uint                `gorm:"column:team_id" json:"team_id,omitempty"`
	FieldID            *uint                `gorm:"column:field_id" json:"field_id,omitempty"`
	PostType           PostType             `gorm:"column:post_type;type:post_type;not null" json:"post_type"`
	Title              string               `gorm:"column:title;not null" json:"title"`
	Description        *string              `gorm:"column:description" json:"description,omitempty"`
	MatchDate          time.Time            `gorm:"column:match_date;type:date;not null" json:"match_date"`
	StartTime          string               `gorm:"column:start_time;not null" json:"start_time"`
	EndTime            string               `gorm:"column:end_time;not null" json:"end_time"`
	RequiredSkillLevel teamModel.SkillLevel `gorm:"column:required_skill_level;type:skill_level;not null" json:"required_skill_level"`
	MatchType          MatchType            `gorm:"column:match_type;type:match_type;not null" json:"match_type"`
	City               string               `gorm:"column:city;not null;index:idx_match_posts_city_active" json:"city"`
	ContactPhone       *string              `gorm:"column:contact_phone" json:"contact_phone,omitempty"`
	ContactZalo        *string              `gorm:"column:contact_zalo" json:"contact_zalo,omitempty"`
	IsActive           bool                 `gorm:"column:is_active;not null;default:true;index:idx_match_posts_city_active" json:"is_active"`
	CreatedAt          time.Time            `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time            `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (MatchPost) TableName() string {
	return "match_posts"
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (p *MatchPost) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
