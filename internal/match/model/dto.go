package model

// CreateMatchRequest creates a match from an active post.
type CreateMatchRequest struct {
	PostID    uint   `json:"post_id" binding:"required"`
	Team1ID   uint   `json:"team1_id" binding:"required"`
	Team2ID   *uint  `json:"team2_id"`
	FieldID   uint   `json:"field_id" binding:"required"`
	MatchDate string `json:"match_date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// UpdateStatusRequest moves a match forward along the lifecycle.
type UpdateStatusRequest struct {
	Status MatchStatus `json:"status" binding:"required"`
}

// CancelMatchRequest cancels a match with an optional reason.
type CancelMatchRequest struct {
	Reason string `json:"reason"`
}
