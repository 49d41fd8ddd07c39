// Package service provides business logic for the team module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
	notificationModel "github.com/tdnguyen-dev/sanbong/internal/notification/model"
	notificationService "github.com/tdnguyen-dev/sanbong/internal/notification/service"
	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
	"github.com/tdnguyen-dev/sanbong/internal/team/repository"
)

// Service defines team business logic operations.
type Service interface {
	// CreateTeam creates a team; the owner becomes its first member.
	CreateTeam(ctx context.Context, ownerID uint, req *teamModel.CreateTeamRequest) (*teamModel.Team, error)

	// UpdateTeam updates team attributes; owner only.
	UpdateTeam(ctx context.Context, id, actorID uint, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error)

	// GetTeamsByOwner returns teams owned by a user.
	GetTeamsByOwner(ctx context.Context, ownerID uint) ([]teamModel.Team, error)

	// GetTeamByID returns a team with its members.
	GetTeamByID(ctx context.Context, id uint) (*teamModel.TeamResponse, error)

	// AddTeamMember adds a user to the team; owner only.
	AddTeamMember(ctx context.Context, teamID, actorID uint, req *teamModel.AddMemberRequest) (*teamModel.TeamMember, error)

	// RemoveTeamMember removes a user from the team; owner only.
	RemoveTeamMember(ctx context.Context, teamID, actorID, userID uint) error

	// GetTeamMembers returns all members of a team.
	GetTeamMembers(ctx context.Context, teamID uint) ([]teamModel.TeamMember, error)

	// UpdateMemberEvaluation sets a member's skill evaluation; owner only.
	UpdateMemberEvaluation(ctx context.Context, teamID, actorID, userID uint, evaluation string) (*teamModel.TeamMember, error)
}

type service struct {
	repo     repository.Repository
	db       *gorm.DB
	notifier notificationService.Notifier
	logger   *zap.SugaredLogger
}

// New creates a team service instance.
func New(repo repository.Repository, db *gorm.DB, notifier notificationService.Notifier, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, notifier: notifier, logger: logger}
}

func (s *service) CreateTeam(ctx context.Context, ownerID uint, req *teamModel.CreateTeamRequest) (*teamModel.Team, error) {
	if !req.SkillLevel.Valid() {
		return nil, teamModel.ErrInvalidSkillLevel
	}

	exists, err := s.repo.UserExists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, authModel.ErrUserNotFound
	}

	team := &teamModel.Team{
		Name:        req.Name,
		OwnerID:     ownerID,
		City:        req.City,
		SkillLevel:  req.SkillLevel,
		Description: req.Description,
	}

	// Team and owner membership are created atomically.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		if txErr := txRepo.Create(ctx, team); txErr != nil {
			return txErr
		}
		return txRepo.AddMember(ctx, &teamModel.TeamMember{
			TeamID: team.ID,
			UserID: ownerID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "owner_id", ownerID)
	return team, nil
}

func (s *service) UpdateTeam(ctx context.Context, id, actorID uint, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != actorID {
		return nil, teamModel.ErrNotTeamOwner
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.City != nil {
		team.City = *req.City
	}
	if req.SkillLevel != nil {
		if !req.SkillLevel.Valid() {
			return nil, teamModel.ErrInvalidSkillLevel
		}
		team.SkillLevel = *req.SkillLevel
	}
	if req.Description != nil {
		team.Description = req.Description
	}

	if err := s.repo.Save(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *service) GetTeamsByOwner(ctx context.Context, ownerID uint) ([]teamModel.Team, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) GetTeamByID(ctx context.Context, id uint) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.ListMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	return &teamModel.TeamResponse{Team: team, Members: members}, nil
}

func (s *service) AddTeamMember(ctx context.Context, teamID, actorID uint, req *teamModel.AddMemberRequest) (*teamModel.TeamMember, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != actorID {
		return nil, teamModel.ErrNotTeamOwner
	}

	exists, err := s.repo.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, authModel.ErrUserNotFound
	}

	member := &teamModel.TeamMember{
		TeamID:          teamID,
		UserID:          req.UserID,
		SkillEvaluation: req.SkillEvaluation,
	}
	if err := s.repo.AddMember(ctx, member); err != nil {
		return nil, err
	}

	// Best-effort fan-out; membership is already committed.
	relatedID := teamID
	if err := s.notifier.Notify(ctx, req.UserID, notificationModel.TypeTeamInvitation,
		"You joined a team",
		fmt.Sprintf("You have been added to team %q", team.Name),
		&relatedID); err != nil {
		s.logger.Warnw("failed to notify new team member", "team_id", teamID, "user_id", req.UserID, "error", err)
	}

	return member, nil
}

func (s *service) RemoveTeamMember(ctx context.Context, teamID, actorID, userID uint) error {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.OwnerID != actorID {
		return teamModel.ErrNotTeamOwner
	}
	if userID == team.OwnerID {
		return teamModel.ErrCannotRemoveOwner
	}
	return s.repo.RemoveMember(ctx, teamID, userID)
}

func (s *service) GetTeamMembers(ctx context.Context, teamID uint) ([]teamModel.TeamMember, error) {
	if _, err := s.repo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, teamID)
}

func (s *service) UpdateMemberEvaluation(ctx context.Context, teamID, actorID, userID uint, evaluation string) (*teamModel.TeamMember, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != actorID {
		return nil, teamModel.ErrNotTeamOwner
	}

	if err := s.repo.UpdateMemberEvaluation(ctx, teamID, userID, evaluation); err != nil {
		return nil, err
	}
	return s.repo.GetMember(ctx, teamID, userID)
}
