// Package repository provides data access for the team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
)

// Repository defines team data access operations.
type Repository interface {
	// Create inserts a team.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id uint) (*teamModel.Team, error)

	// ListByOwner returns teams owned by a user.
	ListByOwner(ctx context.Context, ownerID uint) ([]teamModel.Team, error)

	// Save persists changes to a team.
	Save(ctx context.Context, team *teamModel.Team) error

	// AddMember inserts a membership row.
	AddMember(ctx context.Context, member *teamModel.TeamMember) error

	// GetMember finds the membership row for (team, user).
	GetMember(ctx context.Context, teamID, userID uint) (*teamModel.TeamMember, error)

	// ListMembers returns all members of a team.
	ListMembers(ctx context.Context, teamID uint) ([]teamModel.TeamMember, error)

	// RemoveMember deletes the membership row for (team, user).
	RemoveMember(ctx context.Context, teamID, userID uint) error

	// UpdateMemberEvaluation sets the skill evaluation for (team, user).
	UpdateMemberEvaluation(ctx context.Context, teamID, userID uint, evaluation string) error

	// UserExists reports whether a user id exists.
	UserExists(ctx context.Context, userID uint) (bool, error)

	// ListTeamIDsByUser returns ids of teams the user belongs to.
	ListTeamIDsByUser(ctx context.Context, userID uint) ([]uint, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID uint) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

func (r *repository) Save(ctx context.Context, team *teamModel.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

func (r *repository) AddMember(ctx context.Context, member *teamModel.TeamMember) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		if isDuplicateError(err) {
			return teamModel.ErrAlreadyMember
		}
		return err
	}
	return nil
}

func (r *repository) GetMember(ctx context.Context, teamID, userID uint) (*teamModel.TeamMember, error) {
	var member teamModel.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *repository) ListMembers(ctx context.Context, teamID uint) ([]teamModel.TeamMember, error) {
	var members []teamModel.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []teamModel.TeamMember{}
	}
	return members, nil
}

func (r *repository) RemoveMember(ctx context.Context, teamID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&teamModel.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return teamModel.ErrMemberNotFound
	}
	return nil
}

func (r *repository) UpdateMemberEvaluation(ctx context.Context, teamID, userID uint, evaluation string) error {
	res := r.db.WithContext(ctx).
		Model(&teamModel.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("skill_evaluation", evaluation)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return teamModel.ErrMemberNotFound
	}
	return nil
}

func (r *repository) UserExists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListTeamIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&teamModel.TeamMember{}).
		Where("user_id = ?", userID).
		Pluck("team_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// isDuplicateError checks for unique constraint violations across drivers.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
