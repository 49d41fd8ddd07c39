package model

// SendMessageRequest sends a direct message to another user.
type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	PostID      *uint  `json:"post_id"`
	Content     string `json:"content" binding:"required"`
}

// MessagesByUserResponse groups a user's sent and received messages.
type MessagesByUserResponse struct {
	Sent     []Message `json:"sent"`
	Received []Message `json:"received"`
}
