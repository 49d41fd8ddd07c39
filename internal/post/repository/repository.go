// Package repository provides data access for the match post module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	postModel "github.com/tdnguyen-dev/sanbong/internal/post/model"
)

// Repository defines match post data access operations.
type Repository interface {
	// Create inserts a match post.
	Create(ctx context.Context, post *postModel.MatchPost) error

	// GetByID finds a post by id.
	GetByID(ctx context.Context, id uint) (*postModel.MatchPost, error)

	// Save persists changes to a post.
	Save(ctx context.Context, post *postModel.MatchPost) error

	// List returns active posts matching the filters, newest first.
	List(ctx context.Context, filters postModel.ListFilters) ([]postModel.MatchPost, error)

	// ListByAuthor returns all posts by an author, newest first.
	ListByAuthor(ctx context.Context, authorID uint) ([]postModel.MatchPost, error)

	// Deactivate clears is_active on a post.
	Deactivate(ctx context.Context, id uint) error

	// Search returns active posts whose title or description matches the query.
	Search(ctx context.Context, query, city string) ([]postModel.MatchPost, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a match post repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, post *postModel.MatchPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*postModel.MatchPost, error) {
	var post postModel.MatchPost
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, postModel.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *repository) Save(ctx context.Context, post *postModel.MatchPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *repository) List(ctx context.Context, filters postModel.ListFilters) ([]postModel.MatchPost, error) {
	q := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC")

	if filters.City != "" {
		q = q.Where("city = ?", filters.City)
	}
	if filters.PostType != "" {
		q = q.Where("post_type = ?", filters.PostType)
	}
	if filters.SkillLevel != "" {
		q = q.Where("required_skill_level = ?", filters.SkillLevel)
	}
	if filters.MatchType != "" {
		q = q.Where("match_type = ?", filters.MatchType)
	}
	if filters.Date != nil {
		q = q.Where("match_date = ?", *filters.Date)
	}

	var posts []postModel.MatchPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []postModel.MatchPost{}
	}
	return posts, nil
}

func (r *repository) ListByAuthor(ctx context.Context, authorID uint) ([]postModel.MatchPost, error) {
	var posts []postModel.MatchPost
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []postModel.MatchPost{}
	}
	return posts, nil
}

func (r *repository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&postModel.MatchPost{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *repository) Search(ctx context.Context, query, city string) ([]postModel.MatchPost, error) {
	pattern := "%" + query + "%"
	q := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Order("created_at DESC")
	if city != "" {
		q = q.Where("city = ?", city)
	}

	var posts []postModel.MatchPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []postModel.MatchPost{}
	}
	return posts, nil
}
