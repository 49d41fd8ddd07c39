// Package model provides the notification entity and DTOs.
package model

import "time"

// NotificationType is the closed set of notification kinds.
type NotificationType string

const (
	TypeMatchRequest    NotificationType = "MATCH_REQUEST"
	TypeMatchConfirmed  NotificationType = "MATCH_CONFIRMED"
	TypeMatchCancelled  NotificationType = "MATCH_CANCELLED"
	TypeMessageReceived NotificationType = "MESSAGE_RECEIVED"
	TypeTeamInvitation  NotificationType = "TEAM_INVITATION"
)

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case TypeMatchRequest, TypeMatchConfirmed, TypeMatchCancelled,
		TypeMessageReceived, TypeTeamInvitation:
		return true
	}
	return false
}

// Notification is a derived event surfaced to a single user.
type Notification struct {
	ID        uint             `gorm:"primaryKey;column:id" json:"id"`
	UserID    uint             `gorm:"column:user_id;not null;index" json:"user_id"`
	Type      NotificationType `gorm:"column:type;type:notification_type;not null" json:"type"`
	Title     string           `gorm:"column:title;not null" json:"title"`
	Content   string           `gorm:"column:content;not null" json:"content"`
	RelatedID *uint            `gorm:"column:related_id" json:"related_id,omitempty"`
	IsRead    bool             `gorm:"column:is_read;not null;default:false" json:"is_read"`
	CreatedAt time.Time        `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Notification) TableName() string {
	return "notifications"
}

// CreateNotificationRequest is the payload for creating a notification directly.
type CreateNotificationRequest struct {
	UserID    uint             `json:"user_id" binding:"required"`
	Type      NotificationType `json:"type" binding:"required"`
	Title     string           `json:"title" binding:"required"`
	Content   string           `json:"content" binding:"required"`
	RelatedID *uint            `json:"related_id"`
}
