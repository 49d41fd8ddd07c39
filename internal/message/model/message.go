// Package model provides the direct message entity and DTOs.
package model

import "time"

// Message is a direct message between two users, optionally attached to a
// match post.
type Message struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	SenderID    uint      `gorm:"column:sender_id;not null;index" json:"sender_id"`
	RecipientID uint      `gorm:"column:recipient_id;not null;index" json:"recipient_id"`
	PostID      *uint     `gorm:"column:post_id;index" json:"post_id,omitempty"`
	Content     string    `gorm:"column:content;not null" json:"content"`
	IsRead      bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Message) TableName() string {
	return "messages"
}
