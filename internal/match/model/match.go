// Package model provides the match entity, its status machine, and DTOs.
package model

import (
	"time"

	"gorm.io/gorm"
)

// MatchStatus is the closed set of match lifecycle states.
//
// Transitions are monotonic except cancellation:
// PENDING → CONFIRMED → COMPLETED; {PENDING, CONFIRMED} → CANCELLED.
// COMPLETED and CANCELLED are terminal.
type MatchStatus string

const (
	StatusPending   MatchStatus = "PENDING"
	StatusConfirmed MatchStatus = "CONFIRMED"
	StatusCompleted MatchStatus = "COMPLETED"
	StatusCancelled MatchStatus = "CANCELLED"
)

// Valid reports whether s is a known status.
func (s MatchStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanAdvanceTo reports whether s may move forward to target.
// Cancellation is handled separately and is never a forward edge.
func (s MatchStatus) CanAdvanceTo(target MatchStatus) bool {
	switch {
	case s == StatusPending && target == StatusConfirmed:
		return true
	case s == StatusConfirmed && target == StatusCompleted:
		return true
	}
	return false
}

// Cancellable reports whether a match in this status may be cancelled.
func (s MatchStatus) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Match is a scheduled game created from a match post.
type Match struct {
	ID        uint        `gorm:"primaryKey;column:id" json:"id"`
	PostID    uint        `gorm:"column:post_id;not null" json:"post_id"`
	Team1ID   uint        `gorm:"column:team1_id;not null;index" json:"team1_id"`
	Team2ID   *uint       `gorm:"column:team2_id;index" json:"team2_id,omitempty"`
	FieldID   uint        `gorm:"column:field_id;not null" json:"field_id"`
	MatchDate time.Time   `gorm:"column:match_date;type:date;not null" json:"match_date"`
	StartTime string      `gorm:"column:start_time;not null" json:"start_time"`
	EndTime   string      `gorm:"column:end_time;not null" json:"end_time"`
	Status    MatchStatus `gorm:"column:status;type:match_status;not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time   `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (m *Match) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}

// Involves reports whether teamID plays in this match.
func (m *Match) Involves(teamID uint) bool {
	return m.Team1ID == teamID || (m.Team2ID != nil && *m.Team2ID == teamID)
}
