// Package repository provides data access for team ratings.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tdnguyen-dev/sanbong/internal/rating/model"
)

// Repository defines data access operations for team ratings.
type Repository interface {
	Create(ctx context.Context, rating *model.TeamRating) error
	GetByID(ctx context.Context, id uint) (*model.TeamRating, error)
	ListByRatedTeam(ctx context.Context, teamID uint) ([]model.TeamRating, error)
	ListByRaterTeam(ctx context.Context, teamID uint) ([]model.TeamRating, error)
	ListByMatch(ctx context.Context, matchID uint) ([]model.TeamRating, error)
	GetByTriple(ctx context.Context, matchID, raterTeamID, ratedTeamID uint) (*model.TeamRating, error)
	Exists(ctx context.Context, matchID, raterTeamID, ratedTeamID uint) (bool, error)
	Stats(ctx context.Context, teamID uint) (*model.TeamRatingStats, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a rating repository backed by db.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rating *model.TeamRating) error {
	err := r.db.WithContext(ctx).Create(rating).Error
	if err != nil && isDuplicateError(err) {
		return model.ErrDuplicateRating
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*model.TeamRating, error) {
	var rating model.TeamRating
	err := r.db.WithContext(ctx).First(&rating, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *repository) ListByRatedTeam(ctx context.Context, teamID uint) ([]model.TeamRating, error) {
	var ratings []model.TeamRating
	err := r.db.WithContext(ctx).
		Where("rated_team_id = ?", teamID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []model.TeamRating{}
	}
	return ratings, nil
}

func (r *repository) ListByRaterTeam(ctx context.Context, teamID uint) ([]model.TeamRating, error) {
	var ratings []model.TeamRating
	err := r.db.WithContext(ctx).
		Where("rater_team_id = ?", teamID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []model.TeamRating{}
	}
	return ratings, nil
}

func (r *repository) ListByMatch(ctx context.Context, matchID uint) ([]model.TeamRating, error) {
	var ratings []model.TeamRating
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []model.TeamRating{}
	}
	return ratings, nil
}

func (r *repository) GetByTriple(ctx context.Context, matchID, raterTeamID, ratedTeamID uint) (*model.TeamRating, error) {
	var rating model.TeamRating
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND rater_team_id = ? AND rated_team_id = ?",
			matchID, raterTeamID, ratedTeamID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *repository) Exists(ctx context.Context, matchID, raterTeamID, ratedTeamID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TeamRating{}).
		Where("match_id = ? AND rater_team_id = ? AND rated_team_id = ?",
			matchID, raterTeamID, ratedTeamID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Stats(ctx context.Context, teamID uint) (*model.TeamRatingStats, error) {
	ratings, err := r.ListByRatedTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	stats := &model.TeamRatingStats{
		TeamID:            teamID,
		TotalRatings:      int64(len(ratings)),
		SkillHistogram:    map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		FairPlayHistogram: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(ratings) == 0 {
		return stats, nil
	}

	var skillSum, fairSum int
	for _, rating := range ratings {
		skillSum += rating.SkillRating
		fairSum += rating.FairPlay
		stats.SkillHistogram[rating.SkillRating]++
		stats.FairPlayHistogram[rating.FairPlay]++
	}
	stats.AverageSkill = float64(skillSum) / float64(len(ratings))
	stats.AverageFairPlay = float64(fairSum) / float64(len(ratings))
	return stats, nil
}

func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
