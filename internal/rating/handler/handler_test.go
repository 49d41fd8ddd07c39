package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tdnguyen-dev/sanbong/internal/middleware"
	ratingModel "github.com/tdnguyen-dev/sanbong/internal/rating/model"
	"github.com/tdnguyen-dev/sanbong/internal/rating/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CreateTeamRating(ctx context.Context, actorID uint, req *ratingModel.CreateRatingRequest) (*ratingModel.TeamRating, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ratingModel.TeamRating), args.Error(1)
}

func (m *mockService) CanRateTeam(ctx context.Context, matchID, raterTeamID, ratedTeamID uint) (*ratingModel.EligibilityResponse, error) {
	args := m.Called(ctx, matchID, raterTeamID, ratedTeamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ratingModel.EligibilityResponse), args.Error(1)
}

func (m *mockService) GetTeamRatings(ctx context.Context, teamID uint) ([]ratingModel.TeamRating, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ratingModel.TeamRating), args.Error(1)
}

func (m *mockService) GetRatingsGivenByTeam(ctx context.Context, teamID uint) ([]ratingModel.TeamRating, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ratingModel.TeamRating), args.Error(1)
}

func (m *mockService) GetRatingsForMatch(ctx context.Context, matchID uint) ([]ratingModel.TeamRating, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ratingModel.TeamRating), args.Error(1)
}

func (m *mockService) GetRatingForMatch(ctx context.Context, matchID, raterTeamID, ratedTeamID uint) (*ratingModel.TeamRating, error) {
	args := m.Called(ctx, matchID, raterTeamID, ratedTeamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ratingModel.TeamRating), args.Error(1)
}

func (m *mockService) GetTeamRatingStats(ctx context.Context, teamID uint) (*ratingModel.TeamRatingStats, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ratingModel.TeamRatingStats), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

// asUser fakes an authenticated request.
func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, userID)
		c.Next()
	}
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/ratings", asUser(1), h.Create)

		req := &ratingModel.CreateRatingRequest{
			MatchID: 3, RaterTeamID: 1, RatedTeamID: 2, SkillRating: 4, FairPlay: 5,
		}
		created := &ratingModel.TeamRating{
			ID: 10, MatchID: 3, RaterTeamID: 1, RatedTeamID: 2, SkillRating: 4, FairPlay: 5,
		}
		mockSvc.On("CreateTeamRating", mock.Anything, uint(1), req).Return(created, nil)

		body, err := json.Marshal(req)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/ratings", bytes.NewReader(body))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got ratingModel.TeamRating
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(10), got.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/ratings", asUser(1), h.Create)

		mockSvc.On("CreateTeamRating", mock.Anything, uint(1), mock.Anything).
			Return(nil, ratingModel.ErrDuplicateRating)

		body := []byte(`{"match_id":3,"rater_team_id":1,"rated_team_id":2,"skill_rating":4,"fair_play_rating":5}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/ratings", bytes.NewReader(body))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		var envelope errorEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "CONFLICT", envelope.Error.Code)
	})

	t.Run("not completed maps to invalid state", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/ratings", asUser(1), h.Create)

		mockSvc.On("CreateTeamRating", mock.Anything, uint(1), mock.Anything).
			Return(nil, ratingModel.ErrMatchNotCompleted)

		body := []byte(`{"match_id":3,"rater_team_id":1,"rated_team_id":2,"skill_rating":4,"fair_play_rating":5}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/ratings", bytes.NewReader(body))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		var envelope errorEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "INVALID_STATE", envelope.Error.Code)
	})

	t.Run("missing auth", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/ratings", h.Create)

		body := []byte(`{"match_id":3,"rater_team_id":1,"rated_team_id":2,"skill_rating":4,"fair_play_rating":5}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/ratings", bytes.NewReader(body))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/ratings", asUser(1), h.Create)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/ratings", bytes.NewReader([]byte(`{`)))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Eligibility(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/ratings/eligibility", asUser(1), h.Eligibility)

		mockSvc.On("CanRateTeam", mock.Anything, uint(3), uint(1), uint(2)).
			Return(&ratingModel.EligibilityResponse{CanRate: true}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet,
			"/ratings/eligibility?match_id=3&rater_team_id=1&rated_team_id=2", nil)
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var got ratingModel.EligibilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.CanRate)
	})

	t.Run("missing query parameter", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/ratings/eligibility", asUser(1), h.Eligibility)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/ratings/eligibility?match_id=3", nil)
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Stats(t *testing.T) {
	mockSvc := new(mockService)
	h := New(mockSvc, zap.NewNop().Sugar())
	router := setupRouter()
	router.GET("/teams/:id/ratings/stats", h.Stats)

	stats := &ratingModel.TeamRatingStats{
		TeamID:          2,
		TotalRatings:    3,
		AverageSkill:    4.0,
		AverageFairPlay: 4.5,
	}
	mockSvc.On("GetTeamRatingStats", mock.Anything, uint(2)).Return(stats, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/teams/2/ratings/stats", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var got ratingModel.TeamRatingStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.TotalRatings)
}
