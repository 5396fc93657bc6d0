package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"campushub/pkg/apperrors"
	"campushub/pkg/logger"
	"campushub/services/network/internal/entity"
	"campushub/services/network/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockSocialRepository struct {
	mock.Mock
}

func (m *MockSocialRepository) CreatePost(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockSocialRepository) GetPost(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockSocialRepository) UpdatePostContent(id, content string) error {
	args := m.Called(id, content)
	return args.Error(0)
}

func (m *MockSocialRepository) AllPosts(page, pageSize int) ([]*entity.Post, int64, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockSocialRepository) PostsByAuthor(authorID string, page, pageSize int) ([]*entity.Post, int64, error) {
	args := m.Called(authorID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockSocialRepository) PostsFromFollowed(followerID string, page, pageSize int) ([]*entity.Post, int64, error) {
	args := m.Called(followerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockSocialRepository) IsLiked(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) AddLike(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockSocialRepository) RemoveLike(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockSocialRepository) LikeCount(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialRepository) UserExists(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) IsFollowing(followerID, followeeID string) (bool, error) {
	args := m.Called(followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) AddFollow(followerID, followeeID string) error {
	args := m.Called(followerID, followeeID)
	return args.Error(0)
}

func (m *MockSocialRepository) RemoveFollow(followerID, followeeID string) error {
	args := m.Called(followerID, followeeID)
	return args.Error(0)
}

func (m *MockSocialRepository) FollowerCount(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialRepository) FollowingCount(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.SocialRepository = (*MockSocialRepository)(nil)

func newNetworkUseCase(repo persistent.SocialRepository) NetworkUseCase {
	return NewNetworkUseCase(repo, nil, nil, logger.New())
}

func TestCreatePost_Success(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("CreatePost", mock.AnythingOfType("*entity.Post")).Return(nil)

	post, err := uc.CreatePost("alice", "Hello, world!")

	assert.NoError(t, err)
	assert.Equal(t, "alice", post.AuthorID)
	mockRepo.AssertExpectations(t)
}

func TestCreatePost_RejectsEmptyContent(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	_, err := uc.CreatePost("alice", "   ")

	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "CreatePost")
}

func TestCreatePost_RejectsOverlongContent(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	_, err := uc.CreatePost("alice", strings.Repeat("a", 281))

	assert.ErrorIs(t, err, ErrContentTooLong)
}

func TestCreatePost_AcceptsExactly280Runes(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("CreatePost", mock.AnythingOfType("*entity.Post")).Return(nil)

	_, err := uc.CreatePost("alice", strings.Repeat("é", 280))

	assert.NoError(t, err)
}

func TestEditPost_OnlyAuthorCanEdit(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("GetPost", "post-1").Return(&entity.Post{ID: "post-1", AuthorID: "alice", Content: "original"}, nil)

	_, err := uc.EditPost("post-1", "bob", "hijacked")

	assert.ErrorIs(t, err, ErrNotAuthor)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	mockRepo.AssertNotCalled(t, "UpdatePostContent")
}

func TestEditPost_Success(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("GetPost", "post-1").Return(&entity.Post{ID: "post-1", AuthorID: "alice", Content: "original"}, nil)
	mockRepo.On("UpdatePostContent", "post-1", "updated").Return(nil)

	post, err := uc.EditPost("post-1", "alice", "updated")

	assert.NoError(t, err)
	assert.Equal(t, "updated", post.Content)
	mockRepo.AssertExpectations(t)
}

func TestEditPost_NotFound(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("GetPost", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.EditPost("missing", "alice", "updated")

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestToggleLike_AddsThenRemoves(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	post := &entity.Post{ID: "post-1", AuthorID: "alice"}
	mockRepo.On("GetPost", "post-1").Return(post, nil)

	mockRepo.On("IsLiked", "bob", "post-1").Return(false, nil).Once()
	mockRepo.On("AddLike", "bob", "post-1").Return(nil)
	mockRepo.On("LikeCount", "post-1").Return(int64(1), nil).Once()

	liked, count, err := uc.ToggleLike(context.Background(), "bob", "post-1")
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	mockRepo.On("IsLiked", "bob", "post-1").Return(true, nil).Once()
	mockRepo.On("RemoveLike", "bob", "post-1").Return(nil)
	mockRepo.On("LikeCount", "post-1").Return(int64(0), nil).Once()

	liked, count, err = uc.ToggleLike(context.Background(), "bob", "post-1")
	assert.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)
	mockRepo.AssertExpectations(t)
}

func TestToggleFollow_RejectsSelfFollow(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	_, _, err := uc.ToggleFollow("alice", "alice")

	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.ErrorIs(t, err, apperrors.ErrBusinessRule)
	mockRepo.AssertNotCalled(t, "AddFollow")
}

func TestToggleFollow_AddsThenRemoves(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("UserExists", "bob").Return(true, nil)
	mockRepo.On("IsFollowing", "alice", "bob").Return(false, nil).Once()
	mockRepo.On("AddFollow", "alice", "bob").Return(nil)
	mockRepo.On("FollowerCount", "bob").Return(int64(1), nil).Once()

	following, followers, err := uc.ToggleFollow("alice", "bob")
	assert.NoError(t, err)
	assert.True(t, following)
	assert.Equal(t, int64(1), followers)

	mockRepo.On("IsFollowing", "alice", "bob").Return(true, nil).Once()
	mockRepo.On("RemoveFollow", "alice", "bob").Return(nil)
	mockRepo.On("FollowerCount", "bob").Return(int64(0), nil).Once()

	following, followers, err = uc.ToggleFollow("alice", "bob")
	assert.NoError(t, err)
	assert.False(t, following)
	assert.Equal(t, int64(0), followers)
	mockRepo.AssertExpectations(t)
}

func TestToggleFollow_UnknownTargetIsNotFound(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("UserExists", "ghost").Return(false, nil)

	_, _, err := uc.ToggleFollow("alice", "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "AddFollow")
	mockRepo.AssertNotCalled(t, "IsFollowing")
}

func TestToggleFollow_CountFailureSurfaces(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("UserExists", "bob").Return(true, nil)
	mockRepo.On("IsFollowing", "alice", "bob").Return(false, nil)
	mockRepo.On("AddFollow", "alice", "bob").Return(nil)
	mockRepo.On("FollowerCount", "bob").Return(int64(0), errors.New("db down"))

	_, _, err := uc.ToggleFollow("alice", "bob")

	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestFeed_PaginatesTenPerPage(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	posts := make([]*entity.Post, 10)
	for i := range posts {
		posts[i] = &entity.Post{ID: "post", AuthorID: "alice"}
	}
	mockRepo.On("AllPosts", 1, 10).Return(posts, int64(25), nil)
	mockRepo.On("LikeCount", mock.Anything).Return(int64(0), nil)

	page, err := uc.Feed(context.Background(), "", 1)

	assert.NoError(t, err)
	assert.Len(t, page.Posts, 10)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.TotalPages)
}

func TestFeed_NormalizesPageNumber(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("AllPosts", 1, 10).Return([]*entity.Post{}, int64(0), nil)

	page, err := uc.Feed(context.Background(), "", -3)

	assert.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestFollowingFeed_OnlyFollowedAuthors(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	posts := []*entity.Post{{ID: "post-1", AuthorID: "bob"}}
	mockRepo.On("PostsFromFollowed", "alice", 1, 10).Return(posts, int64(1), nil)
	mockRepo.On("LikeCount", "post-1").Return(int64(2), nil)
	mockRepo.On("IsLiked", "alice", "post-1").Return(true, nil)

	page, err := uc.FollowingFeed(context.Background(), "alice", 1)

	assert.NoError(t, err)
	assert.Len(t, page.Posts, 1)
	assert.Equal(t, int64(2), page.Posts[0].LikeCount)
	assert.True(t, page.Posts[0].Liked)
	mockRepo.AssertExpectations(t)
}

func TestProfile_IncludesViewerFollowState(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("UserExists", "bob").Return(true, nil)
	mockRepo.On("FollowerCount", "bob").Return(int64(3), nil)
	mockRepo.On("FollowingCount", "bob").Return(int64(7), nil)
	mockRepo.On("IsFollowing", "alice", "bob").Return(true, nil)

	profile, err := uc.Profile("bob", "alice")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), profile.Followers)
	assert.Equal(t, int64(7), profile.Following)
	assert.True(t, profile.IsFollowing)
}

func TestProfile_UnknownUserIsNotFound(t *testing.T) {
	mockRepo := new(MockSocialRepository)
	uc := newNetworkUseCase(mockRepo)

	mockRepo.On("UserExists", "ghost").Return(false, nil)

	_, err := uc.Profile("ghost", "alice")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "FollowerCount")
}
