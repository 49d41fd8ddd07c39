package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
	"github.com/tdnguyen-dev/sanbong/internal/auth/repository"
	appConfig "github.com/tdnguyen-dev/sanbong/internal/config"
	"github.com/tdnguyen-dev/sanbong/pkg/token"
)

func setup(t *testing.T) Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&authModel.User{})
	require.NoError(t, err)

	cfg := appConfig.AuthConfig{JWTSecret: "test-secret", AccessTokenTTL: time.Hour}
	return New(repository.New(db), cfg, zap.NewNop().Sugar())
}

func registerRequest() *authModel.RegisterRequest {
	return &authModel.RegisterRequest{
		Email:    "an@example.com",
		Password: "secret123",
		FullName: "Nguyen Van An",
		City:     "Hanoi",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to USER role and hashes the password", func(t *testing.T) {
		svc := setup(t)

		user, err := svc.Register(ctx, registerRequest())

		require.NoError(t, err)
		assert.Equal(t, authModel.RoleUser, user.Role)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.NotZero(t, user.ID)
	})

	t.Run("normalizes the email", func(t *testing.T) {
		svc := setup(t)
		req := registerRequest()
		req.Email = "  An@Example.COM "

		user, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "an@example.com", user.Email)
	})

	t.Run("field owner role is accepted", func(t *testing.T) {
		svc := setup(t)
		req := registerRequest()
		req.Role = authModel.RoleFieldOwner

		user, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, authModel.RoleFieldOwner, user.Role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		svc := setup(t)
		req := registerRequest()
		req.Role = "SUPERUSER"

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, authModel.ErrInvalidRole)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)
		_, err = svc.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, authModel.ErrEmailTaken)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a verifiable token", func(t *testing.T) {
		svc := setup(t)
		user, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		resp, err := svc.Login(ctx, &authModel.LoginRequest{
			Email:    "an@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.User.ID)

		claimedID, err := token.Validate(resp.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, claimedID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		_, err = svc.Login(ctx, &authModel.LoginRequest{
			Email:    "an@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, authModel.ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same as a wrong password", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Login(ctx, &authModel.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, authModel.ErrInvalidCredentials)
	})
}
