package model

// CreateRatingRequest submits a rating for a completed match.
type CreateRatingRequest struct {
	MatchID     uint    `json:"match_id" binding:"required"`
	RaterTeamID uint    `json:"rater_team_id" binding:"required"`
	RatedTeamID uint    `json:"rated_team_id" binding:"required"`
	SkillRating int     `json:"skill_rating" binding:"required"`
	FairPlay    int     `json:"fair_play_rating" binding:"required"`
	Comment     *string `json:"comment"`
}

// EligibilityResponse reports whether a rating may still be submitted.
type EligibilityResponse struct {
	CanRate bool   `json:"can_rate"`
	Reason  string `json:"reason,omitempty"`
}

// TeamRatingStats aggregates a team's received ratings.
type TeamRatingStats struct {
	TeamID            uint        `json:"team_id"`
	TotalRatings      int64       `json:"total_ratings"`
	AverageSkill      float64     `json:"average_skill"`
	AverageFairPlay   float64     `json:"average_fair_play"`
	SkillHistogram    map[int]int `json:"skill_histogram"`
	FairPlayHistogram map[int]int `json:"fair_play_histogram"`
}
