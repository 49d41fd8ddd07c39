// Package model provides team entities and DTOs.
package model

import (
	"time"

	"gorm.io/gorm"
)

// SkillLevel is the closed set of team skill levels.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "BEGINNER"
	SkillIntermediate SkillLevel = "INTERMEDIATE"
	SkillAdvanced     SkillLevel = "ADVANCED"
)

// Valid reports whether s is a known skill level.
func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

// Team represents a football team. The owner is the team's captain and is
// implicitly a member.
type Team struct {
	ID          uint       `gorm:"primaryKey;column:id" json:"id"`
	Name        string     `gorm:"column:name;not null" json:"name"`
	OwnerID     uint       `gorm:"column:owner_id;not null;index" json:"owner_id"`
	City        string     `gorm:"column:city;not null" json:"city"`
	SkillLevel  SkillLevel `gorm:"column:skill_level;type:skill_level;not null" json:"skill_level"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// TeamMember links a user to a team. (team_id, user_id) is unique.
type TeamMember struct {
	ID              uint      `gorm:"primaryKey;column:id" json:"id"`
	TeamID          uint      `gorm:"column:team_id;not null;uniqueIndex:uq_team_members_team_user" json:"team_id"`
	UserID          uint      `gorm:"column:user_id;not null;uniqueIndex:uq_team_members_team_user" json:"user_id"`
	SkillEvaluation *string   `gorm:"column:skill_evaluation" json:"skill_evaluation,omitempty"`
	JoinedAt        time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}
