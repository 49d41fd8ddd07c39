// Package model provides the team rating entity and DTOs.
package model

import "time"

// TeamRating is a post-match evaluation of one team by another. At most one
// rating may exist per (match, rater, rated) triple, enforced by a unique
// index.
type TeamRating struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	MatchID     uint      `gorm:"column:match_id;not null;uniqueIndex:uq_team_ratings_triple" json:"match_id"`
	RaterTeamID uint      `gorm:"column:rater_team_id;not null;uniqueIndex:uq_team_ratings_triple" json:"rater_team_id"`
	RatedTeamID uint      `gorm:"column:rated_team_id;not null;uniqueIndex:uq_team_ratings_triple;index" json:"rated_team_id"`
	SkillRating int       `gorm:"column:skill_rating;not null" json:"skill_rating"`
	FairPlay    int       `gorm:"column:fair_play_rating;not null" json:"fair_play_rating"`
	Comment     *string   `gorm:"column:comment" json:"comment,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (TeamRating) TableName() string {
	return "team_ratings"
}

// ValidScore reports whether v is inside the 1..5 rating scale.
func ValidScore(v int) bool {
	return v >= 1 && v <= 5
}
