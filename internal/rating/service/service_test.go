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
	matchModel "github.com/tdnguyen-dev/sanbong/internal/match/model"
	matchRepository "github.com/tdnguyen-dev/sanbong/internal/match/repository"
	ratingModel "github.com/tdnguyen-dev/sanbong/internal/rating/model"
	ratingRepository "github.com/tdnguyen-dev/sanbong/internal/rating/repository"
	teamModel "github.com/tdnguyen-dev/sanbong/internal/team/model"
	teamRepository "github.com/tdnguyen-dev/sanbong/internal/team/repository"
)

type fixture struct {
	db  *gorm.DB
	svc Service

	owner1 *authModel.User
	owner2 *authModel.User
	team1  *teamModel.Team
	team2  *teamModel.Team
	match  *matchModel.Match
}

func setup(t *testing.T) *fixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&authModel.User{}, &teamModel.Team{}, &teamModel.TeamMember{},
		&matchModel.Match{}, &ratingModel.TeamRating{},
	)
	require.NoError(t, err)

	f := &fixture{db: db}
	f.svc = New(
		ratingRepository.New(db),
		matchRepository.New(db),
		teamRepository.New(db),
		zap.NewNop().Sugar(),
	)

	f.owner1 = seedUser(t, db, "an@example.com")
	f.owner2 = seedUser(t, db, "binh@example.com")
	f.team1 = seedTeam(t, db, "Thunder FC", f.owner1.ID)
	f.team2 = seedTeam(t, db, "River XI", f.owner2.ID)
	f.match = seedMatch(t, db, f.team1.ID, f.team2.ID, matchModel.StatusCompleted)
	return f
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

func seedTeam(t *testing.T, db *gorm.DB, name string, ownerID uint) *teamModel.Team {
	team := &teamModel.Team{
		Name:       name,
		OwnerID:    ownerID,
		City:       "Hanoi",
		SkillLevel: teamModel.SkillIntermediate,
	}
	require.NoError(t, db.Create(team).Error)
	return team
}

func seedMatch(t *testing.T, db *gorm.DB, team1ID, team2ID uint, status matchModel.MatchStatus) *matchModel.Match {
	match := &matchModel.Match{
		PostID:    1,
		Team1ID:   team1ID,
		Team2ID:   &team2ID,
		FieldID:   1,
		MatchDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		EndTime:   "20:00",
		Status:    status,
	}
	require.NoError(t, db.Create(match).Error)
	return match
}

func validRequest(f *fixture) *ratingModel.CreateRatingRequest {
	return &ratingModel.CreateRatingRequest{
		MatchID:     f.match.ID,
		RaterTeamID: f.team1.ID,
		RatedTeamID: f.team2.ID,
		SkillRating: 4,
		FairPlay:    5,
	}
}

func TestService_CreateTeamRating(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := setup(t)

		rating, err := f.svc.CreateTeamRating(ctx, f.owner1.ID, validRequest(f))

		require.NoError(t, err)
		assert.Equal(t, 4, rating.SkillRating)
		assert.Equal(t, 5, rating.FairPlay)
		assert.NotZero(t, rating.ID)
	})

	t.Run("score out of scale", func(t *testing.T) {
		f := setup(t)
		req := validRequest(f)
		req.SkillRating = 6

		_, err := f.svc.CreateTeamRating(ctx, f.owner1.ID, req)
		assert.ErrorIs(t, err, ratingModel.ErrInvalidScore)
	})

	t.Run("zero score", func(t *testing.T) {
		f := setup(t)
		req := validRequest(f)
		req.FairPlay = 0

		_, err := f.svc.CreateTeamRating(ctx, f.owner1.ID, req)
		assert.ErrorIs(t, err, ratingModel.ErrInvalidScore)
	})

	t.Run("team rating itself", func(t *testing.T) {
		f := setup(t)
		req := validRequest(f)
		req.RatedTeamID = req.RaterTeamID

		_, err := f.svc.CreateTeamRating(ctx, f.owner1.ID, req)
		assert.ErrorIs(t, err, ratingModel.ErrSelfRating)
	})

	t.Run("match not completed", func(t *testing.T) {
		f := setup(t)
		pending := seedMatch(t, f.db, f.team1.ID, f.team2.ID, matchModel.StatusPending)
		req := validRequest(f)
		req.MatchID = pending.ID

		_, err := f.svc.CreateTeamRating(ctx, f.owner1.ID, req)
		assert.ErrorIs(t, err, ratingModel.ErrMatchNotCompleted)
	})

	t.Run("team not in match", func(t *testing.T) {
		f := setup(t)
		stranger := seedTeam(t, f.db, "Ghost United", f.owner1.ID)
		req := validRequest(f)
		req.RatedTeamID = stranger.ID

		_, err := f.svc.CreateTeamRating(ctx, f.owner1.ID, req)
		assert.ErrorIs(t, err, ratingModel.ErrTeamNotInMatch)
	})

	t.Run("actor does not own the rating team", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.CreateTeamRating(ctx, f.owner2.ID, validRequest(f))
		assert.ErrorIs(t, err, ratingModel.ErrNotRaterCaptain)
	})

	t.Run("duplicate rating", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.CreateTeamRating(ctx, f.owner1.ID, validRequest(f))
		require.NoError(t, err)
		_, err = f.svc.CreateTeamRating(ctx, f.owner1.ID, validRequest(f))
		assert.ErrorIs(t, err, ratingModel.ErrDuplicateRating)
	})

	t.Run("both directions allowed", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.CreateTeamRating(ctx, f.owner1.ID, validRequest(f))
		require.NoError(t, err)

		reverse := validRequest(f)
		reverse.RaterTeamID, reverse.RatedTeamID = f.team2.ID, f.team1.ID
		_, err = f.svc.CreateTeamRating(ctx, f.owner2.ID, reverse)
		require.NoError(t, err)
	})
}

func TestService_CanRateTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("eligible", func(t *testing.T) {
		f := setup(t)

		eligibility, err := f.svc.CanRateTeam(ctx, f.match.ID, f.team1.ID, f.team2.ID)
		require.NoError(t, err)
		assert.True(t, eligibility.CanRate)
		assert.Empty(t, eligibility.Reason)
	})

	t.Run("already rated", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.CreateTeamRating(ctx, f.owner1.ID, validRequest(f))
		require.NoError(t, err)

		eligibility, err := f.svc.CanRateTeam(ctx, f.match.ID, f.team1.ID, f.team2.ID)
		require.NoError(t, err)
		assert.False(t, eligibility.CanRate)
		assert.NotEmpty(t, eligibility.Reason)
	})

	t.Run("not completed", func(t *testing.T) {
		f := setup(t)
		pending := seedMatch(t, f.db, f.team1.ID, f.team2.ID, matchModel.StatusConfirmed)

		eligibility, err := f.svc.CanRateTeam(ctx, pending.ID, f.team1.ID, f.team2.ID)
		require.NoError(t, err)
		assert.False(t, eligibility.CanRate)
	})

	t.Run("missing match", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.CanRateTeam(ctx, 999, f.team1.ID, f.team2.ID)
		assert.ErrorIs(t, err, matchModel.ErrMatchNotFound)
	})
}

func TestService_ListRatings_Empty(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	received, err := f.svc.GetTeamRatings(ctx, f.team1.ID)
	require.NoError(t, err)
	require.NotNil(t, received)
	assert.Empty(t, received)

	given, err := f.svc.GetRatingsGivenByTeam(ctx, f.team1.ID)
	require.NoError(t, err)
	require.NotNil(t, given)
	assert.Empty(t, given)

	byMatch, err := f.svc.GetRatingsForMatch(ctx, f.match.ID)
	require.NoError(t, err)
	require.NotNil(t, byMatch)
	assert.Empty(t, byMatch)
}

func TestService_GetTeamRatingStats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates received ratings", func(t *testing.T) {
		f := setup(t)
		second := seedMatch(t, f.db, f.team1.ID, f.team2.ID, matchModel.StatusCompleted)

		_, err := f.svc.CreateTeamRating(ctx, f.owner1.ID, validRequest(f))
		require.NoError(t, err)
		req := validRequest(f)
		req.MatchID = second.ID
		req.SkillRating = 2
		req.FairPlay = 3
		_, err = f.svc.CreateTeamRating(ctx, f.owner1.ID, req)
		require.NoError(t, err)

		stats, err := f.svc.GetTeamRatingStats(ctx, f.team2.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.TotalRatings)
		assert.InDelta(t, 3.0, stats.AverageSkill, 0.001)
		assert.InDelta(t, 4.0, stats.AverageFairPlay, 0.001)
		assert.Equal(t, 1, stats.SkillHistogram[4])
		assert.Equal(t, 1, stats.SkillHistogram[2])
		assert.Equal(t, 0, stats.SkillHistogram[5])
	})

	t.Run("no ratings yet", func(t *testing.T) {
		f := setup(t)

		stats, err := f.svc.GetTeamRatingStats(ctx, f.team1.ID)

		require.NoError(t, err)
		assert.Zero(t, stats.TotalRatings)
		assert.Zero(t, stats.AverageSkill)
		assert.Zero(t, stats.AverageFairPlay)
	})

	t.Run("missing team", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.GetTeamRatingStats(ctx, 999)
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})
}
