package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authModel "github.com/tdnguyen-dev/sanbong/internal/auth/model"
	notificationModel "github.com/tdnguyen-dev/sanbong/internal/notification/model"
	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
	"github.com/tdnguyen-dev/sanbong/internal/team/repository"
)

// recordingNotifier captures notifications instead of persisting them.
type recordingNotifier struct {
	recipients []uint
	types      []notificationModel.NotificationType
}

func (n *recordingNotifier) Notify(_ context.Context, userID uint, ntype notificationModel.NotificationType,
	_, _ string, _ *uint) error {
	n.recipients = append(n.recipients, userID)
	n.types = append(n.types, ntype)
	return nil
}

func setup(t *testing.T) (*gorm.DB, Service, *recordingNotifier) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&authModel.User{}, &teamModel.Team{}, &teamModel.TeamMember{})
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	svc := New(repository.New(db), db, notifier, zap.NewNop().Sugar())
	return db, svc, notifier
}

func seedUser(t *testing.T, db *gorm.DB, email string) *authModel.User {
	user := &authModel.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     "Test User",
		Role:         authModel.RoleUser,
		City:         "Hanoi",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createRequest() *teamModel.CreateTeamRequest {
	return &teamModel.CreateTeamRequest{
		Name:       "Thunder FC",
		City:       "Hanoi",
		SkillLevel: teamModel.SkillIntermediate,
	}
}

func TestService_CreateTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("owner becomes a member", func(t *testing.T) {
		db, svc, _ := setup(t)
		owner := seedUser(t, db, "an@example.com")

		team, err := svc.CreateTeam(ctx, owner.ID, createRequest())

		require.NoError(t, err)
		assert.Equal(t, owner.ID, team.OwnerID)

		members, err := svc.GetTeamMembers(ctx, team.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, owner.ID, members[0].UserID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, svc, _ := setup(t)

		_, err := svc.CreateTeam(ctx, 999, createRequest())
		assert.ErrorIs(t, err, authModel.ErrUserNotFound)
	})

	t.Run("invalid skill level", func(t *testing.T) {
		db, svc, _ := setup(t)
		owner := seedUser(t, db, "an@example.com")
		req := createRequest()
		req.SkillLevel = "LEGENDARY"

		_, err := svc.CreateTeam(ctx, owner.ID, req)
		assert.ErrorIs(t, err, teamModel.ErrInvalidSkillLevel)
	})
}

func TestService_AddTeamMember(t *testing.T) {
	ctx := context.Background()

	t.Run("success notifies the new member", func(t *testing.T) {
		db, svc, notifier := setup(t)
		owner := seedUser(t, db, "an@example.com")
		player := seedUser(t, db, "binh@example.com")
		team, err := svc.CreateTeam(ctx, owner.ID, createRequest())
		require.NoError(t, err)

		member, err := svc.AddTeamMember(ctx, team.ID, owner.ID, &teamModel.AddMemberRequest{UserID: player.ID})

		require.NoError(t, err)
		assert.Equal(t, player.ID, member.UserID)
		require.Len(t, notifier.recipients, 1)
		assert.Equal(t, player.ID, notifier.recipients[0])
		assert.Equal(t, notificationModel.TypeTeamInvitation, notifier.types[0])
	})

	t.Run("only the owner may add members", func(t *testing.T) {
		db, svc, _ := setup(t)
		owner := seedUser(t, db, "an@example.com")
		player := seedUser(t, db, "binh@example.com")
		team, err := svc.CreateTeam(ctx, owner.ID, createRequest())
		require.NoError(t, err)

		_, err = svc.AddTeamMember(ctx, team.ID, player.ID, &teamModel.AddMemberRequest{UserID: player.ID})
		assert.ErrorIs(t, err, teamModel.ErrNotTeamOwner)
	})

	t.Run("adding twice", func(t *testing.T) {
		db, svc, _ := setup(t)
		owner := seedUser(t, db, "an@example.com")
		player := seedUser(t, db, "binh@example.com")
		team, err := svc.CreateTeam(ctx, owner.ID, createRequest())
		require.NoError(t, err)

		_, err = svc.AddTeamMember(ctx, team.ID, owner.ID, &teamModel.AddMemberRequest{UserID: player.ID})
		require.NoError(t, err)
		_, err = svc.AddTeamMember(ctx, team.ID, owner.ID, &teamModel.AddMemberRequest{UserID: player.ID})
		assert.ErrorIs(t, err, teamModel.ErrAlreadyMember)
	})

	t.Run("unknown user", func(t *testing.T) {
		db, svc, _ := setup(t)
		owner := seedUser(t, db, "an@example.com")
		team, err := svc.CreateTeam(ctx, owner.ID, createRequest())
		require.NoError(t, err)

		_, err = svc.AddTeamMember(ctx, team.ID, owner.ID, &teamModel.AddMemberRequest{UserID: 999})
		assert.ErrorIs(t, err, authModel.ErrUserNotFound)
	})
}

func TestService_RemoveTeamMember(t *testing.T) {
	ctx := context.Background()

	t.Run("owner removes a member", func(t *testing.T) {
		db, svc, _ := setup(t)
		owner := seedUser(t, db, "an@example.com")
		player := seedUser(t, db, "binh@example.com")
		team, err := svc.CreateTeam(ctx, owner.ID, createRequest())
		require.NoError(t, err)
		_, err = svc.AddTeamMember(ctx, team.ID, owner.ID, &teamModel.AddMemberRequest{UserID: player.ID})
		require.NoError(t, err)

		require.NoError(t, svc.RemoveTeamMember(ctx, team.ID, owner.ID, player.ID))

		members, err := svc.GetTeamMembers(ctx, team.ID)
		require.NoError(t, err)
		assert.Len(t, members, 1)
	})

	t.Run("owner cannot be removed", func(t *testing.T) {
		db, svc, _ := setup(t)
		owner := seedUser(t, db, "an@example.com")
		team, err := svc.CreateTeam(ctx, owner.ID, createRequest())
		require.NoError(t, err)

		err = svc.RemoveTeamMember(ctx, team.ID, owner.ID, owner.ID)
		assert.ErrorIs(t, err, teamModel.ErrCannotRemoveOwner)
	})

	t.Run("missing member", func(t *testing.T) {
		db, svc, _ := setup(t)
		owner := seedUser(t, db, "an@example.com")
		team, err := svc.CreateTeam(ctx, owner.ID, createRequest())
		require.NoError(t, err)

		err = svc.RemoveTeamMember(ctx, team.ID, owner.ID, 999)
		assert.ErrorIs(t, err, teamModel.ErrMemberNotFound)
	})
}

func TestService_UpdateTeam(t *testing.T) {
	ctx := context.Background()
	db, svc, _ := setup(t)
	owner := seedUser(t, db, "an@example.com")
	other := seedUser(t, db, "binh@example.com")
	team, err := svc.CreateTeam(ctx, owner.ID, createRequest())
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		name := "Lightning FC"
		updated, err := svc.UpdateTeam(ctx, team.ID, owner.ID, &teamModel.UpdateTeamRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Lightning FC", updated.Name)
		assert.Equal(t, "Hanoi", updated.City)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		name := "Hijacked FC"
		_, err := svc.UpdateTeam(ctx, team.ID, other.ID, &teamModel.UpdateTeamRequest{Name: &name})
		assert.ErrorIs(t, err, teamModel.ErrNotTeamOwner)
	})
}
