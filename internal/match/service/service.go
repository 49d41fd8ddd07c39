// Package service provides match lifecycle business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	fieldModel "github.com/tdnguyen-dev/sanbong/internal/field/model"
	fieldRepository "github.com/tdnguyen-dev/sanbong/internal/field/repository"
	matchModel "github.com/tdnguyen-dev/sanbong/internal/match/model"
	matchRepository "github.com/tdnguyen-dev/sanbong/internal/match/repository"
	notificationModel "github.com/tdnguyen-dev/sanbong/internal/notification/model"
	notificationService "github.com/tdnguyen-dev/sanbong/internal/notification/service"
	postModel "github.com/tdnguyen-dev/sanbong/internal/post/model"
	postRepository "github.com/tdnguyen-dev/sanbong/internal/post/repository"
	teamRepository "github.com/tdnguyen-dev/sanbong/internal/team/repository"
)

const dateLayout = "2006-01-02"

// Service defines match business logic operations.
type Service interface {
	// CreateMatch converts an active post into a PENDING match. The source
	// post is deactivated and a published slot matching the field, date and
	// window is booked atomically with the match creation.
	CreateMatch(ctx context.Context, actorID uint, req *matchModel.CreateMatchRequest) (*matchModel.Match, error)

	// GetMatchByID returns a match by id.
	GetMatchByID(ctx context.Context, id uint) (*matchModel.Match, error)

	// GetMatchesByTeam returns all matches a team plays in, newest first.
	GetMatchesByTeam(ctx context.Context, teamID uint) ([]matchModel.Match, error)

	// GetUpcomingMatchesByUser returns pending and confirmed matches of the
	// user's teams on or after today.
	GetUpcomingMatchesByUser(ctx context.Context, userID uint) ([]matchModel.Match, error)

	// GetPastMatchesByUser returns completed matches of the user's teams,
	// latest first.
	GetPastMatchesByUser(ctx context.Context, userID uint) ([]matchModel.Match, error)

	// UpdateMatchStatus moves a match forward: PENDING to CONFIRMED or
	// CONFIRMED to COMPLETED. Cancellation must go through CancelMatch.
	UpdateMatchStatus(ctx context.Context, id, actorID uint, target matchModel.MatchStatus) (*matchModel.Match, error)

	// CancelMatch cancels a pending or confirmed match and releases the
	// booked field slot.
	CancelMatch(ctx context.Context, id, actorID uint, reason string) (*matchModel.Match, error)
}

type service struct {
	repo      matchRepository.Repository
	postRepo  postRepository.Repository
	teamRepo  teamRepository.Repository
	fieldRepo fieldRepository.Repository
	notifier  notificationService.Notifier
	db        *gorm.DB
	logger    *zap.SugaredLogger
}

// New creates a match service instance.
func New(
	repo matchRepository.Repository,
	postRepo postRepository.Repository,
	teamRepo teamRepository.Repository,
	fieldRepo fieldRepository.Repository,
	notifier notificationService.Notifier,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:      repo,
		postRepo:  postRepo,
		teamRepo:  teamRepo,
		fieldRepo: fieldRepo,
		notifier:  notifier,
		db:        db,
		logger:    logger,
	}
}

func (s *service) CreateMatch(ctx context.Context, actorID uint, req *matchModel.CreateMatchRequest) (*matchModel.Match, error) {
	if !fieldModel.ValidWindow(req.StartTime, req.EndTime) {
		return nil, fieldModel.ErrInvalidTimeWindow
	}
	if req.Team2ID != nil && *req.Team2ID == req.Team1ID {
		return nil, matchModel.ErrSameTeams
	}
	matchDate, err := time.Parse(dateLayout, req.MatchDate)
	if err != nil {
		return nil, matchModel.ErrInvalidMatchData
	}

	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if !post.IsActive {
		return nil, postModel.ErrPostInactive
	}

	if _, err := s.teamRepo.GetByID(ctx, req.Team1ID); err != nil {
		return nil, err
	}
	if req.Team2ID != nil {
		if _, err := s.teamRepo.GetByID(ctx, *req.Team2ID); err != nil {
			return nil, err
		}
	}
	if _, err := s.fieldRepo.GetFieldByID(ctx, req.FieldID); err != nil {
		return nil, err
	}

	match := &matchModel.Match{
		PostID:    req.PostID,
		Team1ID:   req.Team1ID,
		Team2ID:   req.Team2ID,
		FieldID:   req.FieldID,
		MatchDate: matchDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    matchModel.StatusPending,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := matchRepository.New(tx)
		txPostRepo := postRepository.New(tx)
		txFieldRepo := fieldRepository.New(tx)

		if err := txRepo.Create(ctx, match); err != nil {
			return err
		}
		if err := txPostRepo.Deactivate(ctx, post.ID); err != nil {
			return err
		}
		return bookMatchingSlot(ctx, txFieldRepo, match)
	})
	if err != nil {
		return nil, err
	}

	s.notifyCounterparts(ctx, match, actorID, notificationModel.TypeMatchRequest,
		"New match request",
		fmt.Sprintf("A match on %s from %s to %s is awaiting confirmation.",
			match.MatchDate.Format(dateLayout), match.StartTime, match.EndTime))

	return match, nil
}

// bookMatchingSlot books the published slot that exactly matches the match
// window. A missing slot is fine; a slot someone else already booked aborts
// the enclosing transaction.
func bookMatchingSlot(ctx context.Context, repo fieldRepository.Repository, match *matchModel.Match) error {
	slot, err := repo.FindExactSlot(ctx, match.FieldID, fieldModel.AvailableFieldsQuery{
		Date:      match.MatchDate,
		StartTime: match.StartTime,
		EndTime:   match.EndTime,
	})
	if err != nil {
		if errors.Is(err, fieldModel.ErrSlotNotFound) {
			return nil
		}
		return err
	}
	return repo.BookSlot(ctx, slot.ID)
}

func (s *service) GetMatchByID(ctx context.Context, id uint) (*matchModel.Match, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetMatchesByTeam(ctx context.Context, teamID uint) ([]matchModel.Match, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.repo.ListByTeam(ctx, teamID)
}

func (s *service) GetUpcomingMatchesByUser(ctx context.Context, userID uint) ([]matchModel.Match, error) {
	teamIDs, err := s.teamRepo.ListTeamIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListUpcomingByTeams(ctx, teamIDs, today())
}

func (s *service) GetPastMatchesByUser(ctx context.Context, userID uint) ([]matchModel.Match, error) {
	teamIDs, err := s.teamRepo.ListTeamIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListPastByTeams(ctx, teamIDs)
}

func (s *service) UpdateMatchStatus(ctx context.Context, id, actorID uint, target matchModel.MatchStatus) (*matchModel.Match, error) {
	if !target.Valid() {
		return nil, matchModel.ErrInvalidMatchData
	}

	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, match, actorID); err != nil {
		return nil, err
	}
	if !match.Status.CanAdvanceTo(target) {
		return nil, matchModel.ErrInvalidTransition
	}

	match.Status = target
	if err := s.repo.Save(ctx, match); err != nil {
		return nil, err
	}

	if target == matchModel.StatusConfirmed {
		s.notifyCounterparts(ctx, match, 0, notificationModel.TypeMatchConfirmed,
			"Match confirmed",
			fmt.Sprintf("Your match on %s at %s has been confirmed.",
				match.MatchDate.Format(dateLayout), match.StartTime))
	}
	return match, nil
}

func (s *service) CancelMatch(ctx context.Context, id, actorID uint, reason string) (*matchModel.Match, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, match, actorID); err != nil {
		return nil, err
	}
	if !match.Status.Cancellable() {
		return nil, matchModel.ErrNotCancellable
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := matchRepository.New(tx)
		txFieldRepo := fieldRepository.New(tx)

		match.Status = matchModel.StatusCancelled
		if err := txRepo.Save(ctx, match); err != nil {
			return err
		}
		return releaseMatchingSlot(ctx, txFieldRepo, match)
	})
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf("Your match on %s at %s has been cancelled.",
		match.MatchDate.Format(dateLayout), match.StartTime)
	if reason != "" {
		content += " Reason: " + reason
	}
	s.notifyCounterparts(ctx, match, 0, notificationModel.TypeMatchCancelled,
		"Match cancelled", content)

	return match, nil
}

// releaseMatchingSlot frees the slot booked for the match window. Releasing
// an already free or never published slot is a no-op.
func releaseMatchingSlot(ctx context.Context, repo fieldRepository.Repository, match *matchModel.Match) error {
	slot, err := repo.FindExactSlot(ctx, match.FieldID, fieldModel.AvailableFieldsQuery{
		Date:      match.MatchDate,
		StartTime: match.StartTime,
		EndTime:   match.EndTime,
	})
	if err != nil {
		if errors.Is(err, fieldModel.ErrSlotNotFound) {
			return nil
		}
		return err
	}
	return repo.ReleaseSlot(ctx, slot.ID)
}

// authorize allows the field owner and either team's owner to act on a match.
func (s *service) authorize(ctx context.Context, match *matchModel.Match, actorID uint) error {
	field, err := s.fieldRepo.GetFieldByID(ctx, match.FieldID)
	if err != nil {
		return err
	}
	if field.OwnerID == actorID {
		return nil
	}

	team1, err := s.teamRepo.GetByID(ctx, match.Team1ID)
	if err != nil {
		return err
	}
	if team1.OwnerID == actorID {
		return nil
	}
	if match.Team2ID != nil {
		team2, err := s.teamRepo.GetByID(ctx, *match.Team2ID)
		if err != nil {
			return err
		}
		if team2.OwnerID == actorID {
			return nil
		}
	}
	return matchModel.ErrNotParticipant
}

// notifyCounterparts notifies each involved team's owner except skipUserID.
// Delivery failures are logged and do not fail the caller.
func (s *service) notifyCounterparts(ctx context.Context, match *matchModel.Match, skipUserID uint,
	ntype notificationModel.NotificationType, title, content string) {
	teamIDs := []uint{match.Team1ID}
	if match.Team2ID != nil {
		teamIDs = append(teamIDs, *match.Team2ID)
	}
	for _, teamID := range teamIDs {
		team, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			s.logger.Warnw("failed to load team for notification", "team_id", teamID, "error", err)
			continue
		}
		if team.OwnerID == skipUserID {
			continue
		}
		matchID := match.ID
		if err := s.notifier.Notify(ctx, team.OwnerID, ntype, title, content, &matchID); err != nil {
			s.logger.Warnw("failed to deliver match notification",
				"user_id", team.OwnerID, "match_id", match.ID, "type", ntype, "error", err)
		}
	}
}

// today returns the server's current calendar day as a UTC-midnight value,
// the same representation client-supplied match dates are stored in. The
// upcoming/past cutoff follows the server's local day: a match dated today
// stays in the upcoming list until local midnight.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
