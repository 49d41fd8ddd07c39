// Package service provides business logic for registration and login.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
	"github.com/tdnguyen-dev/sanbong/internal/auth/repository"
	appConfig "github.com/tdnguyen-dev/sanbong/internal/config"
	"github.com/tdnguyen-dev/sanbong/pkg/hash"
	"github.com/tdnguyen-dev/sanbong/pkg/token"
)

// Service defines auth business logic operations.
type Service interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, req *authModel.RegisterRequest) (*authModel.User, error)

	// Login validates credentials and issues an access token.
	Login(ctx context.Context, req *authModel.LoginRequest) (*authModel.LoginResponse, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id uint) (*authModel.User, error)
}

type service struct {
	repo   repository.Repository
	cfg    appConfig.AuthConfig
	logger *zap.SugaredLogger
}

// New creates an auth service instance.
func New(repo repository.Repository, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, cfg: cfg, logger: logger}
}

func (s *service) Register(ctx context.Context, req *authModel.RegisterRequest) (*authModel.User, error) {
	role := req.Role
	if role == "" {
		role = authModel.RoleUser
	}
	if !role.Valid() {
		return nil, authModel.ErrInvalidRole
	}

	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authModel.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashed,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Zalo:         req.Zalo,
		Role:         role,
		City:         req.City,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *service) Login(ctx context.Context, req *authModel.LoginRequest) (*authModel.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, authModel.ErrInvalidCredentials
	}
	if !hash.Verify(user.PasswordHash, req.Password) {
		return nil, authModel.ErrInvalidCredentials
	}

	signed, err := token.Generate(user.ID, s.cfg.JWTSecret, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &authModel.LoginResponse{User: user, Token: signed}, nil
}

func (s *service) GetUserByID(ctx context.Context, id uint) (*authModel.User, error) {
	return s.repo.GetByID(ctx, id)
}
