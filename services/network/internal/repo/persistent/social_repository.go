package persistent

import (
	"errors"

	"campushub/services/network/internal/entity"
	"campushub/services/network/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialRepository interface {
	CreatePost(post *entity.Post) error
	GetPost(id string) (*entity.Post, error)
	UpdatePostContent(id, content string) error

	AllPosts(page, pageSize int) ([]*entity.Post, int64, error)
	PostsByAuthor(authorID string, page, pageSize int) ([]*entity.Post, int64, error)
	PostsFromFollowed(followerID string, page, pageSize int) ([]*entity.Post, int64, error)

	IsLiked(userID, postID string) (bool, error)
	AddLike(userID, postID string) error
	RemoveLike(userID, postID string) error
	LikeCount(postID string) (int64, error)

	UserExists(userID string) (bool, error)
	IsFollowing(followerID, followeeID string) (bool, error)
	AddFollow(followerID, followeeID string) error
	RemoveFollow(followerID, followeeID string) error
	FollowerCount(userID string) (int64, error)
	FollowingCount(userID string) (int64, error)
}

type socialRepository struct {
	db *gorm.DB
}

func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) CreatePost(post *entity.Post) error {
	postModel := &model.PostModel{
		ID:       uuid.New().String(),
		AuthorID: post.AuthorID,
		Content:  post.Content,
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *toPostEntity(postModel)
	return nil
}

func (r *socialRepository) GetPost(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return toPostEntity(&postModel), nil
}

func (r *socialRepository) UpdatePostContent(id, content string) error {
	return r.db.Model(&model.PostModel{}).Where("id = ?", id).Update("content", content).Error
}

func (r *socialRepository) AllPosts(page, pageSize int) ([]*entity.Post, int64, error) {
	return r.pagedPosts(r.db.Model(&model.PostModel{}), page, pageSize)
}

func (r *socialRepository) PostsByAuthor(authorID string, page, pageSize int) ([]*entity.Post, int64, error) {
	query := r.db.Model(&model.PostModel{}).Where("author_id = ?", authorID)
	return r.pagedPosts(query, page, pageSize)
}

func (r *socialRepository) PostsFromFollowed(followerID string, page, pageSize int) ([]*entity.Post, int64, error) {
	query := r.db.Model(&model.PostModel{}).
		Joins("INNER JOIN follows ON follows.followee_id = posts.author_id").
		Where("follows.follower_id = ? AND follows.deleted_at IS NULL", followerID)
	return r.pagedPosts(query, page, pageSize)
}

func (r *socialRepository) pagedPosts(query *gorm.DB, page, pageSize int) ([]*entity.Post, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []model.PostModel
	err := query.Order("posts.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&postModels).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = toPostEntity(&postModels[i])
	}
	return posts, total, nil
}

func (r *socialRepository) IsLiked(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

func (r *socialRepository) AddLike(userID, postID string) error {
	var existing model.LikeModel
	err := r.db.Unscoped().Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
	if err == nil {
		if existing.DeletedAt.Valid {
			return r.db.Unscoped().Model(&existing).Update("deleted_at", nil).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	likeModel := &model.LikeModel{
		ID:     uuid.New().String(),
		UserID: userID,
		PostID: postID,
	}
	return r.db.Create(likeModel).Error
}

func (r *socialRepository) RemoveLike(userID, postID string) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.LikeModel{}).Error
}

func (r *socialRepository) LikeCount(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *socialRepository) UserExists(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *socialRepository) IsFollowing(followerID, followeeID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Count(&count).Error
	return count > 0, err
}

func (r *socialRepository) AddFollow(followerID, followeeID string) error {
	var existing model.FollowModel
	err := r.db.Unscoped().Where("follower_id = ? AND followee_id = ?", followerID, followeeID).First(&existing).Error
	if err == nil {
		if existing.DeletedAt.Valid {
			return r.db.Unscoped().Model(&existing).Update("deleted_at", nil).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	followModel := &model.FollowModel{
		ID:         uuid.New().String(),
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	return r.db.Create(followModel).Error
}

func (r *socialRepository) RemoveFollow(followerID, followeeID string) error {
	return r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.FollowModel{}).Error
}

func (r *socialRepository) FollowerCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).Where("followee_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *socialRepository) FollowingCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

func toPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
