// Package service provides business logic for match posts.
package service

import (
	"context"

	"go.uber.org/zap"

	fieldModel "github.com/tdnguyen-dev/sanbong/internal/field/model"
	fieldRepository "github.com/tdnguyen-dev/sanbong/internal/field/repository"
	postModel "github.com/tdnguyen-dev/sanbong/internal/post/model"
	"github.com/tdnguyen-dev/sanbong/internal/post/repository"
	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
	teamRepository "github.com/tdnguyen-dev/sanbong/internal/team/repository"
)

// Service defines match post business logic operations.
type Service interface {
	// CreateMatchPost publishes a post; referenced team/field must belong to
	// the author.
	CreateMatchPost(ctx context.Context, authorID uint, req *postModel.CreateMatchPostRequest) (*postModel.MatchPost, error)

	// UpdateMatchPost edits an active post; author only.
	UpdateMatchPost(ctx context.Context, id, actorID uint, req *postModel.UpdateMatchPostRequest) (*postModel.MatchPost, error)

	// ListMatchPosts returns active posts matching the filters.
	ListMatchPosts(ctx context.Context, filters postModel.ListFilters) ([]postModel.MatchPost, error)

	// GetMatchPostByID returns a post by id.
	GetMatchPostByID(ctx context.Context, id uint) (*postModel.MatchPost, error)

	// GetMatchPostsByAuthor returns all posts by an author.
	GetMatchPostsByAuthor(ctx context.Context, authorID uint) ([]postModel.MatchPost, error)

	// DeactivateMatchPost marks a post inactive; author only; idempotent.
	DeactivateMatchPost(ctx context.Context, id, actorID uint) error

	// SearchMatchPosts searches active posts by title and description.
	SearchMatchPosts(ctx context.Context, query, city string) ([]postModel.MatchPost, error)
}

type service struct {
	repo      repository.Repository
	teamRepo  teamRepository.Repository
	fieldRepo fieldRepository.Repository
	logger    *zap.SugaredLogger
}

// New creates a match post service instance.
func New(repo repository.Repository, teamRepo teamRepository.Repository,
	fieldRepo fieldRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, teamRepo: teamRepo, fieldRepo: fieldRepo, logger: logger}
}

func (s *service) CreateMatchPost(ctx context.Context, authorID uint, req *postModel.CreateMatchPostRequest) (*postModel.MatchPost, error) {
	if !req.PostType.Valid() || !req.MatchType.Valid() || !req.RequiredSkillLevel.Valid() {
		return nil, postModel.ErrInvalidPostData
	}
	if !fieldModel.ValidWindow(req.StartTime, req.EndTime) {
		return nil, fieldModel.ErrInvalidTimeWindow
	}

	if req.TeamID != nil {
		team, err := s.teamRepo.GetByID(ctx, *req.TeamID)
		if err != nil {
			return nil, err
		}
		if team.OwnerID != authorID {
			return nil, teamModel.ErrNotTeamOwner
		}
	}
	if req.FieldID != nil {
		field, err := s.fieldRepo.GetFieldByID(ctx, *req.FieldID)
		if err != nil {
			return nil, err
		}
		if field.OwnerID != authorID {
			return nil, fieldModel.ErrNotFieldOwner
		}
	}

	post := &postModel.MatchPost{
		AuthorID:           authorID,
		TeamID:             req.TeamID,
		FieldID:            req.FieldID,
		PostType:           req.PostType,
		Title:              req.Title,
		Description:        req.Description,
		MatchDate:          req.MatchDate,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		RequiredSkillLevel: req.RequiredSkillLevel,
		MatchType:          req.MatchType,
		City:               req.City,
		ContactPhone:       req.ContactPhone,
		ContactZalo:        req.ContactZalo,
		IsActive:           true,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Infow("match post created", "post_id", post.ID, "author_id", authorID, "type", post.PostType)
	return post, nil
}

func (s *service) UpdateMatchPost(ctx context.Context, id, actorID uint, req *postModel.UpdateMatchPostRequest) (*postModel.MatchPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actorID {
		return nil, postModel.ErrNotAuthor
	}
	if !post.IsActive {
		return nil, postModel.ErrPostInactive
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = req.Description
	}
	if req.MatchDate != nil {
		post.MatchDate = *req.MatchDate
	}
	if req.StartTime != nil {
		post.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		post.EndTime = *req.EndTime
	}
	if !fieldModel.ValidWindow(post.StartTime, post.EndTime) {
		return nil, fieldModel.ErrInvalidTimeWindow
	}
	if req.RequiredSkillLevel != nil {
		if !req.RequiredSkillLevel.Valid() {
			return nil, postModel.ErrInvalidPostData
		}
		post.RequiredSkillLevel = *req.RequiredSkillLevel
	}
	if req.MatchType != nil {
		if !req.MatchType.Valid() {
			return nil, postModel.ErrInvalidPostData
		}
		post.MatchType = *req.MatchType
	}
	if req.City != nil {
		post.City = *req.City
	}
	if req.ContactPhone != nil {
		post.ContactPhone = req.ContactPhone
	}
	if req.ContactZalo != nil {
		post.ContactZalo = req.ContactZalo
	}

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *service) ListMatchPosts(ctx context.Context, filters postModel.ListFilters) ([]postModel.MatchPost, error) {
	return s.repo.List(ctx, filters)
}

func (s *service) GetMatchPostByID(ctx context.Context, id uint) (*postModel.MatchPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetMatchPostsByAuthor(ctx context.Context, authorID uint) ([]postModel.MatchPost, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *service) DeactivateMatchPost(ctx context.Context, id, actorID uint) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return postModel.ErrNotAuthor
	}
	if !post.IsActive {
		return nil
	}
	return s.repo.Deactivate(ctx, id)
}

func (s *service) SearchMatchPosts(ctx context.Context, query, city string) ([]postModel.MatchPost, error) {
	return s.repo.Search(ctx, query, city)
}
