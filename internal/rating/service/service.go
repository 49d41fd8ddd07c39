// Package service provides team rating business logic.
package service

import (
	"context"

	"go.uber.org/zap"

	matchModel "github.com/tdnguyen-dev/sanbong/internal/match/model"
	matchRepository "github.com/tdnguyen-dev/sanbong/internal/match/repository"
	ratingModel "github.com/tdnguyen-dev/sanbong/internal/rating/model"
	ratingRepository "github.com/tdnguyen-dev/sanbong/internal/rating/repository"
	teamRepository "github.com/tdnguyen-dev/sanbong/internal/team/repository"
)

// Service defines rating business logic operations.
type Service interface {
	// CreateTeamRating submits a rating. The match must be COMPLETED, both
	// teams must have played in it, the actor must own the rating team and
	// a team cannot rate itself. A second rating for the same triple fails.
	CreateTeamRating(ctx context.Context, actorID uint, req *ratingModel.CreateRatingRequest) (*ratingModel.TeamRating, error)

	// CanRateTeam reports whether the triple may still be rated, with a
	// human readable reason when it may not.
	CanRateTeam(ctx context.Context, matchID, raterTeamID, ratedTeamID uint) (*ratingModel.EligibilityResponse, error)

	// GetTeamRatings returns ratings a team has received, newest first.
	GetTeamRatings(ctx context.Context, teamID uint) ([]ratingModel.TeamRating, error)

	// GetRatingsGivenByTeam returns ratings a team has submitted.
	GetRatingsGivenByTeam(ctx context.Context, teamID uint) ([]ratingModel.TeamRating, error)

	// GetRatingsForMatch returns the ratings exchanged in a match.
	GetRatingsForMatch(ctx context.Context, matchID uint) ([]ratingModel.TeamRating, error)

	// GetRatingForMatch returns the single rating for a (match, rater,
	// rated) triple.
	GetRatingForMatch(ctx context.Context, matchID, raterTeamID, ratedTeamID uint) (*ratingModel.TeamRating, error)

	// GetTeamRatingStats aggregates the ratings a team has received.
	GetTeamRatingStats(ctx context.Context, teamID uint) (*ratingModel.TeamRatingStats, error)
}

type service struct {
	repo      ratingRepository.Repository
	matchRepo matchRepository.Repository
	teamRepo  teamRepository.Repository
	logger    *zap.SugaredLogger
}

// New creates a rating service instance.
func New(
	repo ratingRepository.Repository,
	matchRepo matchRepository.Repository,
	teamRepo teamRepository.Repository,
	logger *zap.SugaredLogger,
) Service {
	return &service{repo: repo, matchRepo: matchRepo, teamRepo: teamRepo, logger: logger}
}

func (s *service) CreateTeamRating(ctx context.Context, actorID uint, req *ratingModel.CreateRatingRequest) (*ratingModel.TeamRating, error) {
	if !ratingModel.ValidScore(req.SkillRating) || !ratingModel.ValidScore(req.FairPlay) {
		return nil, ratingModel.ErrInvalidScore
	}
	if req.RaterTeamID == req.RatedTeamID {
		return nil, ratingModel.ErrSelfRating
	}

	match, err := s.matchRepo.GetByID(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}
	if match.Status != matchModel.StatusCompleted {
		return nil, ratingModel.ErrMatchNotCompleted
	}
	if !match.Involves(req.RaterTeamID) || !match.Involves(req.RatedTeamID) {
		return nil, ratingModel.ErrTeamNotInMatch
	}

	raterTeam, err := s.teamRepo.GetByID(ctx, req.RaterTeamID)
	if err != nil {
		return nil, err
	}
	if raterTeam.OwnerID != actorID {
		return nil, ratingModel.ErrNotRaterCaptain
	}

	rating := &ratingModel.TeamRating{
		MatchID:     req.MatchID,
		RaterTeamID: req.RaterTeamID,
		RatedTeamID: req.RatedTeamID,
		SkillRating: req.SkillRating,
		FairPlay:    req.FairPlay,
		Comment:     req.Comment,
	}
	// The unique index is the arbiter under concurrency; a racing duplicate
	// surfaces as ErrDuplicateRating here.
	if err := s.repo.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *service) CanRateTeam(ctx context.Context, matchID, raterTeamID, ratedTeamID uint) (*ratingModel.EligibilityResponse, error) {
	if raterTeamID == ratedTeamID {
		return &ratingModel.EligibilityResponse{Reason: "a team cannot rate itself"}, nil
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != matchModel.StatusCompleted {
		return &ratingModel.EligibilityResponse{Reason: "match is not completed"}, nil
	}
	if !match.Involves(raterTeamID) || !match.Involves(ratedTeamID) {
		return &ratingModel.EligibilityResponse{Reason: "team did not participate in this match"}, nil
	}

	exists, err := s.repo.Exists(ctx, matchID, raterTeamID, ratedTeamID)
	if err != nil {
		return nil, err
	}
	if exists {
		return &ratingModel.EligibilityResponse{Reason: "this team has already been rated for this match"}, nil
	}
	return &ratingModel.EligibilityResponse{CanRate: true}, nil
}

func (s *service) GetTeamRatings(ctx context.Context, teamID uint) ([]ratingModel.TeamRating, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.repo.ListByRatedTeam(ctx, teamID)
}

func (s *service) GetRatingsGivenByTeam(ctx context.Context, teamID uint) ([]ratingModel.TeamRating, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.repo.ListByRaterTeam(ctx, teamID)
}

func (s *service) GetRatingsForMatch(ctx context.Context, matchID uint) ([]ratingModel.TeamRating, error) {
	if _, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return nil, err
	}
	return s.repo.ListByMatch(ctx, matchID)
}

func (s *service) GetRatingForMatch(ctx context.Context, matchID, raterTeamID, ratedTeamID uint) (*ratingModel.TeamRating, error) {
	return s.repo.GetByTriple(ctx, matchID, raterTeamID, ratedTeamID)
}

func (s *service) GetTeamRatingStats(ctx context.Context, teamID uint) (*ratingModel.TeamRatingStats, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.repo.Stats(ctx, teamID)
}
