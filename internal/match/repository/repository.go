// Package repository provides data access for matches.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tdnguyen-dev/sanbong/internal/match/model"
)

// Repository defines data access operations for matches.
type Repository interface {
	Create(ctx context.Context, match *model.Match) error
	GetByID(ctx context.Context, id uint) (*model.Match, error)
	Save(ctx context.Context, match *model.Match) error
	ListByTeam(ctx context.Context, teamID uint) ([]model.Match, error)
	ListUpcomingByTeams(ctx context.Context, teamIDs []uint, from time.Time) ([]model.Match, error)
	ListPastByTeams(ctx context.Context, teamIDs []uint) ([]model.Match, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a match repository backed by db.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*model.Match, error) {
	var match model.Match
	err := r.db.WithContext(ctx).First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *repository) Save(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Save(match).Error
}

func (r *repository) ListByTeam(ctx context.Context, teamID uint) ([]model.Match, error) {
	var matches []model.Match
	err := r.db.WithContext(ctx).
		Where("team1_id = ? OR team2_id = ?", teamID, teamID).
		Order("match_date DESC, start_time DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []model.Match{}
	}
	return matches, nil
}

func (r *repository) ListUpcomingByTeams(ctx context.Context, teamIDs []uint, from time.Time) ([]model.Match, error) {
	if len(teamIDs) == 0 {
		return []model.Match{}, nil
	}
	var matches []model.Match
	err := r.db.WithContext(ctx).
		Where("team1_id IN ? OR team2_id IN ?", teamIDs, teamIDs).
		Where("match_date >= ?", from).
		Where("status IN ?", []model.MatchStatus{model.StatusPending, model.StatusConfirmed}).
		Order("match_date ASC, start_time ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []model.Match{}
	}
	return matches, nil
}

func (r *repository) ListPastByTeams(ctx context.Context, teamIDs []uint) ([]model.Match, error) {
	if len(teamIDs) == 0 {
		return []model.Match{}, nil
	}
	var matches []model.Match
	err := r.db.WithContext(ctx).
		Where("team1_id IN ? OR team2_id IN ?", teamIDs, teamIDs).
		Where("status = ?", model.StatusCompleted).
		Order("match_date DESC, start_time DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []model.Match{}
	}
	return matches, nil
}
