package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"campushub/pkg/apperrors"
	"campushub/pkg/logger"
	"campushub/pkg/queue"
	"campushub/services/network/internal/entity"
	"campushub/services/network/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const (
	maxPostLength     = 280
	feedPageSize      = 10
	likeCountCacheTTL = 10 * time.Minute
)

var (
	ErrPostNotFound   = fmt.Errorf("%w: post not found", apperrors.ErrNotFound)
	ErrUserNotFound   = fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
	ErrEmptyContent   = fmt.Errorf("%w: post content cannot be empty", apperrors.ErrValidation)
	ErrContentTooLong = fmt.Errorf("%w: post content exceeds %d characters", apperrors.ErrValidation, maxPostLength)
	ErrNotAuthor      = fmt.Errorf("%w: you can only edit your own posts", apperrors.ErrForbidden)
	ErrSelfFollow     = fmt.Errorf("%w: you cannot follow yourself", apperrors.ErrBusinessRule)
)

type NetworkUseCase interface {
	CreatePost(authorID, content string) (*entity.Post, error)
	EditPost(postID, editorID, content string) (*entity.Post, error)
	GetPost(ctx context.Context, postID, viewerID string) (*entity.Post, error)
	Feed(ctx context.Context, viewerID string, page int) (*entity.FeedPage, error)
	FollowingFeed(ctx context.Context, viewerID string, page int) (*entity.FeedPage, error)
	UserPosts(ctx context.Context, userID, viewerID string, page int) (*entity.FeedPage, error)
	ToggleLike(ctx context.Context, userID, postID string) (bool, int64, error)
	ToggleFollow(userID, targetID string) (bool, int64, error)
	Profile(userID, viewerID string) (*entity.Profile, error)
}

type networkUseCase struct {
	socialRepo  persistent.SocialRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewNetworkUseCase(
	socialRepo persistent.SocialRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) NetworkUseCase {
	return &networkUseCase{
		socialRepo:  socialRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if len([]rune(content)) > maxPostLength {
		return ErrContentTooLong
	}
	return nil
}

func (uc *networkUseCase) CreatePost(authorID, content string) (*entity.Post, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	post := &entity.Post{
		AuthorID: authorID,
		Content:  content,
	}

	if err := uc.socialRepo.CreatePost(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("%w: failed to create post", apperrors.ErrInternal)
	}

	return post, nil
}

func (uc *networkUseCase) EditPost(postID, editorID, content string) (*entity.Post, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	post, err := uc.socialRepo.GetPost(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	if post.AuthorID != editorID {
		return nil, ErrNotAuthor
	}

	if err := uc.socialRepo.UpdatePostContent(postID, content); err != nil {
		uc.logger.Error("Failed to edit post %s: %v", postID, err)
		return nil, fmt.Errorf("%w: failed to edit post", apperrors.ErrInternal)
	}

	post.Content = content
	return post, nil
}

func (uc *networkUseCase) GetPost(ctx context.Context, postID, viewerID string) (*entity.Post, error) {
	post, err := uc.socialRepo.GetPost(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	uc.decoratePost(ctx, post, viewerID)
	return post, nil
}

func (uc *networkUseCase) Feed(ctx context.Context, viewerID string, page int) (*entity.FeedPage, error) {
	page = normalizePage(page)
	posts, total, err := uc.socialRepo.AllPosts(page, feedPageSize)
	if err != nil {
		uc.logger.Error("Failed to load feed: %v", err)
		return nil, fmt.Errorf("%w: failed to load feed", apperrors.ErrInternal)
	}
	return uc.buildFeedPage(ctx, posts, total, page, viewerID), nil
}

func (uc *networkUseCase) FollowingFeed(ctx context.Context, viewerID string, page int) (*entity.FeedPage, error) {
	page = normalizePage(page)
	posts, total, err := uc.socialRepo.PostsFromFollowed(viewerID, page, feedPageSize)
	if err != nil {
		uc.logger.Error("Failed to load following feed for %s: %v", viewerID, err)
		return nil, fmt.Errorf("%w: failed to load feed", apperrors.ErrInternal)
	}
	return uc.buildFeedPage(ctx, posts, total, page, viewerID), nil
}

func (uc *networkUseCase) UserPosts(ctx context.Context, userID, viewerID string, page int) (*entity.FeedPage, error) {
	page = normalizePage(page)
	posts, total, err := uc.socialRepo.PostsByAuthor(userID, page, feedPageSize)
	if err != nil {
		uc.logger.Error("Failed to load posts for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load posts", apperrors.ErrInternal)
	}
	return uc.buildFeedPage(ctx, posts, total, page, viewerID), nil
}

// ToggleLike flips the viewer's like on a post and returns the new state
// with the updated count. The cached count is adjusted in place so readers
// see the change without a database round trip.
func (uc *networkUseCase) ToggleLike(ctx context.Context, userID, postID string) (bool, int64, error) {
	post, err := uc.socialRepo.GetPost(postID)
	if err != nil {
		return false, 0, ErrPostNotFound
	}

	liked, err := uc.socialRepo.IsLiked(userID, postID)
	if err != nil {
		uc.logger.Error("Failed to check like state: %v", err)
		return false, 0, fmt.Errorf("%w: failed to check like state", apperrors.ErrInternal)
	}

	if liked {
		if err := uc.socialRepo.RemoveLike(userID, postID); err != nil {
			uc.logger.Error("Failed to remove like: %v", err)
			return false, 0, fmt.Errorf("%w: failed to update like", apperrors.ErrInternal)
		}
		count := uc.adjustLikeCache(ctx, postID, -1)
		return false, count, nil
	}

	if err := uc.socialRepo.AddLike(userID, postID); err != nil {
		uc.logger.Error("Failed to add like: %v", err)
		return false, 0, fmt.Errorf("%w: failed to update like", apperrors.ErrInternal)
	}
	count := uc.adjustLikeCache(ctx, postID, 1)

	if post.AuthorID != userID && uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":     queue.TaskPostLiked,
				"user_id":  post.AuthorID,
				"liker_id": userID,
				"post_id":  postID,
				"priority": 1,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish like notification: %v", err)
			}
		}()
	}

	return true, count, nil
}

func (uc *networkUseCase) ToggleFollow(userID, targetID string) (bool, int64, error) {
	if userID == targetID {
		return false, 0, ErrSelfFollow
	}

	if err := uc.requireUser(targetID); err != nil {
		return false, 0, err
	}

	following, err := uc.socialRepo.IsFollowing(userID, targetID)
	if err != nil {
		uc.logger.Error("Failed to check follow state: %v", err)
		return false, 0, fmt.Errorf("%w: failed to check follow state", apperrors.ErrInternal)
	}

	if following {
		if err := uc.socialRepo.RemoveFollow(userID, targetID); err != nil {
			uc.logger.Error("Failed to remove follow: %v", err)
			return false, 0, fmt.Errorf("%w: failed to update follow", apperrors.ErrInternal)
		}
	} else {
		if err := uc.socialRepo.AddFollow(userID, targetID); err != nil {
			uc.logger.Error("Failed to add follow: %v", err)
			return false, 0, fmt.Errorf("%w: failed to update follow", apperrors.ErrInternal)
		}

		if uc.queueClient != nil {
			go func() {
				task := map[string]interface{}{
					"type":        queue.TaskNewFollower,
					"user_id":     targetID,
					"follower_id": userID,
					"priority":    1,
				}
				if err := uc.queueClient.PublishNotificationTask(task); err != nil {
					uc.logger.Error("Failed to publish follow notification: %v", err)
				}
			}()
		}
	}

	followers, err := uc.socialRepo.FollowerCount(targetID)
	if err != nil {
		uc.logger.Error("Failed to count followers for %s: %v", targetID, err)
		return false, 0, fmt.Errorf("%w: failed to count followers", apperrors.ErrInternal)
	}

	return !following, followers, nil
}

func (uc *networkUseCase) requireUser(userID string) error {
	exists, err := uc.socialRepo.UserExists(userID)
	if err != nil {
		uc.logger.Error("Failed to look up user %s: %v", userID, err)
		return fmt.Errorf("%w: failed to look up user", apperrors.ErrInternal)
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

func (uc *networkUseCase) Profile(userID, viewerID string) (*entity.Profile, error) {
	if err := uc.requireUser(userID); err != nil {
		return nil, err
	}

	followers, err := uc.socialRepo.FollowerCount(userID)
	if err != nil {
		uc.logger.Error("Failed to count followers for %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load profile", apperrors.ErrInternal)
	}

	following, err := uc.socialRepo.FollowingCount(userID)
	if err != nil {
		uc.logger.Error("Failed to count following for %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load profile", apperrors.ErrInternal)
	}

	profile := &entity.Profile{
		UserID:    userID,
		Followers: followers,
		Following: following,
	}

	if viewerID != "" && viewerID != userID {
		isFollowing, err := uc.socialRepo.IsFollowing(viewerID, userID)
		if err == nil {
			profile.IsFollowing = isFollowing
		}
	}

	return profile, nil
}

func (uc *networkUseCase) buildFeedPage(ctx context.Context, posts []*entity.Post, total int64, page int, viewerID string) *entity.FeedPage {
	for _, post := range posts {
		uc.decoratePost(ctx, post, viewerID)
	}

	totalPages := int((total + feedPageSize - 1) / feedPageSize)
	return &entity.FeedPage{
		Posts:      posts,
		Page:       page,
		TotalPages: totalPages,
	}
}

func (uc *networkUseCase) decoratePost(ctx context.Context, post *entity.Post, viewerID string) {
	post.LikeCount = uc.likeCount(ctx, post.ID)

	if viewerID != "" {
		liked, err := uc.socialRepo.IsLiked(viewerID, post.ID)
		if err == nil {
			post.Liked = liked
		}
	}
}

// likeCount serves from Redis when a cached value exists and falls back to
// the database, repopulating the cache on a miss.
func (uc *networkUseCase) likeCount(ctx context.Context, postID string) int64 {
	cacheKey := likeCacheKey(postID)

	if uc.redisClient != nil {
		if cached, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count
			}
		}
	}

	count, err := uc.socialRepo.LikeCount(postID)
	if err != nil {
		uc.logger.Error("Failed to count likes for post %s: %v", postID, err)
		return 0
	}

	if uc.redisClient != nil {
		if err := uc.redisClient.Set(ctx, cacheKey, count, likeCountCacheTTL).Err(); err != nil {
			uc.logger.Warn("Failed to cache like count for post %s: %v", postID, err)
		}
	}

	return count
}

func (uc *networkUseCase) adjustLikeCache(ctx context.Context, postID string, delta int64) int64 {
	if uc.redisClient != nil {
		cacheKey := likeCacheKey(postID)
		if exists, err := uc.redisClient.Exists(ctx, cacheKey).Result(); err == nil && exists > 0 {
			if count, err := uc.redisClient.IncrBy(ctx, cacheKey, delta).Result(); err == nil {
				return count
			}
		}
	}
	return uc.likeCount(ctx, postID)
}

func likeCacheKey(postID string) string {
	return "post:likes:" + postID
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
