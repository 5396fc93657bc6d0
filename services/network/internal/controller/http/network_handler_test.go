package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campushub/pkg/logger"
	"campushub/services/network/internal/entity"
	"campushub/services/network/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNetworkUseCase struct {
	mock.Mock
}

func (m *MockNetworkUseCase) CreatePost(authorID, content string) (*entity.Post, error) {
	args := m.Called(authorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockNetworkUseCase) EditPost(postID, editorID, content string) (*entity.Post, error) {
	args := m.Called(postID, editorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockNetworkUseCase) GetPost(ctx context.Context, postID, viewerID string) (*entity.Post, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockNetworkUseCase) Feed(ctx context.Context, viewerID string, page int) (*entity.FeedPage, error) {
	args := m.Called(ctx, viewerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedPage), args.Error(1)
}

func (m *MockNetworkUseCase) FollowingFeed(ctx context.Context, viewerID string, page int) (*entity.FeedPage, error) {
	args := m.Called(ctx, viewerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedPage), args.Error(1)
}

func (m *MockNetworkUseCase) UserPosts(ctx context.Context, userID, viewerID string, page int) (*entity.FeedPage, error) {
	args := m.Called(ctx, userID, viewerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedPage), args.Error(1)
}

func (m *MockNetworkUseCase) ToggleLike(ctx context.Context, userID, postID string) (bool, int64, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockNetworkUseCase) ToggleFollow(userID, targetID string) (bool, int64, error) {
	args := m.Called(userID, targetID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockNetworkUseCase) Profile(userID, viewerID string) (*entity.Profile, error) {
	args := m.Called(userID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

var _ usecase.NetworkUseCase = (*MockNetworkUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asUser(userID string, next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		next(c)
	}
}

func TestCreatePost_Created(t *testing.T) {
	mockUseCase := new(MockNetworkUseCase)
	handler := NewNetworkHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", asUser("alice", handler.CreatePost))

	post := &entity.Post{ID: "post-1", AuthorID: "alice", Content: "Hello"}
	mockUseCase.On("CreatePost", "alice", "Hello").Return(post, nil)

	body, _ := json.Marshal(map[string]string{"content": "Hello"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_TooLongReturns400(t *testing.T) {
	mockUseCase := new(MockNetworkUseCase)
	handler := NewNetworkHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", asUser("alice", handler.CreatePost))

	long := strings.Repeat("a", 281)
	mockUseCase.On("CreatePost", "alice", long).Return(nil, usecase.ErrContentTooLong)

	body, _ := json.Marshal(map[string]string{"content": long})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditPost_NonAuthorReturns403(t *testing.T) {
	mockUseCase := new(MockNetworkUseCase)
	handler := NewNetworkHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", asUser("bob", handler.EditPost))

	mockUseCase.On("EditPost", "post-1", "bob", "hijacked").Return(nil, usecase.ErrNotAuthor)

	body, _ := json.Marshal(map[string]string{"content": "hijacked"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/posts/post-1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_ReturnsStateAndCount(t *testing.T) {
	mockUseCase := new(MockNetworkUseCase)
	handler := NewNetworkHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser("bob", handler.ToggleLike))

	mockUseCase.On("ToggleLike", mock.Anything, "bob", "post-1").Return(true, int64(5), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["liked"])
	assert.Equal(t, float64(5), response["like_count"])
}

func TestToggleFollow_SelfFollowReturns400(t *testing.T) {
	mockUseCase := new(MockNetworkUseCase)
	handler := NewNetworkHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/users/:id/follow", asUser("alice", handler.ToggleFollow))

	mockUseCase.On("ToggleFollow", "alice", "alice").Return(false, int64(0), usecase.ErrSelfFollow)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/alice/follow", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeed_PassesPageParam(t *testing.T) {
	mockUseCase := new(MockNetworkUseCase)
	handler := NewNetworkHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/feed", handler.Feed)

	page := &entity.FeedPage{Posts: []*entity.Post{}, Page: 3, TotalPages: 5}
	mockUseCase.On("Feed", mock.Anything, "", 3).Return(page, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/feed?page=3", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPost_NotFound(t *testing.T) {
	mockUseCase := new(MockNetworkUseCase)
	handler := NewNetworkHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	mockUseCase.On("GetPost", mock.Anything, "missing", "").Return(nil, usecase.ErrPostNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
