package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tdnguyen-dev/sanbong/internal/middleware"
	notificationModel "github.com/tdnguyen-dev/sanbong/internal/notification/model"
	"github.com/tdnguyen-dev/sanbong/internal/notification/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Notify(ctx context.Context, userID uint, ntype notificationModel.NotificationType,
	title, content string, relatedID *uint) error {
	args := m.Called(ctx, userID, ntype, title, content, relatedID)
	return args.Error(0)
}

func (m *mockService) Create(ctx context.Context, req *notificationModel.CreateNotificationRequest) (*notificationModel.Notification, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notificationModel.Notification), args.Error(1)
}

func (m *mockService) GetByUser(ctx context.Context, userID uint, limit int) ([]notificationModel.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notificationModel.Notification), args.Error(1)
}

func (m *mockService) MarkAsRead(ctx context.Context, id, actorID uint) error {
	args := m.Called(ctx, id, actorID)
	return args.Error(0)
}

func (m *mockService) MarkAllAsRead(ctx context.Context, actorID uint) error {
	args := m.Called(ctx, actorID)
	return args.Error(0)
}

func (m *mockService) UnreadCount(ctx context.Context, actorID uint) (int64, error) {
	args := m.Called(ctx, actorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id, actorID uint) error {
	args := m.Called(ctx, id, actorID)
	return args.Error(0)
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
		router.POST("/notifications", asUser(1), h.Create)

		req := &notificationModel.CreateNotificationRequest{
			UserID:  2,
			Type:    notificationModel.TypeMatchRequest,
			Title:   "New match request",
			Content: "FC Sunday wants to play you",
		}
		created := &notificationModel.Notification{
			ID: 7, UserID: 2, Type: notificationModel.TypeMatchRequest,
			Title: req.Title, Content: req.Content,
		}
		mockSvc.On("Create", mock.Anything, req).Return(created, nil)

		body, err := json.Marshal(req)
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		httpReq := httptest.NewRequest(http.MethodPost, "/notifications", bytes.NewReader(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, httpReq)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got notificationModel.Notification
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, uint(7), got.ID)
		assert.Equal(t, uint(2), got.UserID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown type is a validation error", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/notifications", asUser(1), h.Create)

		req := &notificationModel.CreateNotificationRequest{
			UserID: 2, Type: "SHOUTING", Title: "t", Content: "c",
		}
		mockSvc.On("Create", mock.Anything, req).Return(nil, notificationModel.ErrInvalidType)

		body, err := json.Marshal(req)
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		httpReq := httptest.NewRequest(http.MethodPost, "/notifications", bytes.NewReader(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, httpReq)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var env errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/notifications", asUser(1), h.Create)

		rec := httptest.NewRecorder()
		httpReq := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader("{not json"))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, httpReq)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Create")
	})

	t.Run("requires authentication", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/notifications", h.Create)

		rec := httptest.NewRecorder()
		httpReq := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader("{}"))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, httpReq)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockSvc.AssertNotCalled(t, "Create")
	})
}
