package persistent

import (
	"errors"

	"campushub/services/auction/internal/entity"
	"campushub/services/auction/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrStalePrice is returned when the guarded price update matched no row:
	// the listing closed or a concurrent bid raised the price first.
	ErrStalePrice = errors.New("listing price changed or auction closed")

	// ErrListingInactive is returned when a close matched no row because the
	// listing was already inactive.
	ErrListingInactive = errors.New("listing already closed")
)

type ListingRepository interface {
	CreateListing(listing *entity.Listing) error
	GetListing(id string) (*entity.Listing, error)
	ListActive() ([]*entity.Listing, error)
	ListByCategory(categoryID string) ([]*entity.Listing, error)
	ListCategories() ([]*entity.Category, error)
	GetOrCreateCategory(name string) (*entity.Category, error)
	CloseListing(id string) (*entity.Bid, error)

	PlaceBid(bid *entity.Bid) error
	BidsForListing(listingID string) ([]*entity.Bid, error)
	TopBid(listingID string) (*entity.Bid, error)

	AddComment(comment *entity.Comment) error
	CommentsForListing(listingID string) ([]*entity.Comment, error)

	IsWatched(userID, listingID string) (bool, error)
	AddWatch(userID, listingID string) error
	RemoveWatch(userID, listingID string) error
	WatchlistForUser(userID string) ([]*entity.Listing, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) CreateListing(listing *entity.Listing) error {
	listingModel := ToListingModel(listing)
	if listingModel.ID == "" {
		listingModel.ID = uuid.New().String()
	}
	if err := r.db.Create(listingModel).Error; err != nil {
		return err
	}
	*listing = *ToListingEntity(listingModel)
	return nil
}

func (r *listingRepository) GetListing(id string) (*entity.Listing, error) {
	var listingModel model.ListingModel
	if err := r.db.Where("id = ?", id).First(&listingModel).Error; err != nil {
		return nil, err
	}
	return ToListingEntity(&listingModel), nil
}

func (r *listingRepository) ListActive() ([]*entity.Listing, error) {
	var listingModels []model.ListingModel
	if err := r.db.Where("active = ?", true).Order("created_at DESC").Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return toListingEntities(listingModels), nil
}

func (r *listingRepository) ListByCategory(categoryID string) ([]*entity.Listing, error) {
	var listingModels []model.ListingModel
	if err := r.db.Where("category_id = ? AND active = ?", categoryID, true).
		Order("created_at DESC").Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return toListingEntities(listingModels), nil
}

func (r *listingRepository) ListCategories() ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

func (r *listingRepository) GetOrCreateCategory(name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	err := r.db.Where("name = ?", name).First(&categoryModel).Error
	if err == nil {
		return ToCategoryEntity(&categoryModel), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	categoryModel = model.CategoryModel{ID: uuid.New().String(), Name: name}
	if err := r.db.Create(&categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

// CloseListing deactivates the listing and reads the winning bid in one
// transaction. The guarded update locks the listing row, so a bid racing the
// close either commits before the winner is read or fails its own price
// guard; the winner cannot go stale between the two statements.
func (r *listingRepository) CloseListing(id string) (*entity.Bid, error) {
	var winner *entity.Bid
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ListingModel{}).
			Where("id = ? AND active = ?", id, true).
			Update("active", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrListingInactive
		}

		var bidModel model.BidModel
		err := tx.Where("listing_id = ?", id).Order("amount DESC").First(&bidModel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		winner = ToBidEntity(&bidModel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return winner, nil
}

// PlaceBid records the bid and bumps the listing price in one transaction.
// The price update is guarded so a concurrent higher bid or a close cannot
// be silently overwritten; in that case nothing is written and ErrStalePrice
// is returned.
func (r *listingRepository) PlaceBid(bid *entity.Bid) error {
	bidModel := &model.BidModel{
		ID:        uuid.New().String(),
		UserID:    bid.UserID,
		ListingID: bid.ListingID,
		Amount:    bid.Amount,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ListingModel{}).
			Where("id = ? AND active = ? AND current_price < ?", bid.ListingID, true, bid.Amount).
			Update("current_price", bid.Amount)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStalePrice
		}

		return tx.Create(bidModel).Error
	})
	if err != nil {
		return err
	}

	*bid = *ToBidEntity(bidModel)
	return nil
}

func (r *listingRepository) BidsForListing(listingID string) ([]*entity.Bid, error) {
	var bidModels []model.BidModel
	if err := r.db.Where("listing_id = ?", listingID).Order("amount DESC").Find(&bidModels).Error; err != nil {
		return nil, err
	}

	bids := make([]*entity.Bid, len(bidModels))
	for i := range bidModels {
		bids[i] = ToBidEntity(&bidModels[i])
	}
	return bids, nil
}

func (r *listingRepository) TopBid(listingID string) (*entity.Bid, error) {
	var bidModel model.BidModel
	err := r.db.Where("listing_id = ?", listingID).Order("amount DESC").First(&bidModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ToBidEntity(&bidModel), nil
}

func (r *listingRepository) AddComment(comment *entity.Comment) error {
	commentModel := &model.CommentModel{
		ID:        uuid.New().String(),
		UserID:    comment.UserID,
		ListingID: comment.ListingID,
		Content:   comment.Content,
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *listingRepository) CommentsForListing(listingID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.Where("listing_id = ?", listingID).Order("created_at DESC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *listingRepository) IsWatched(userID, listingID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.WatchlistModel{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).Count(&count).Error
	return count > 0, err
}

func (r *listingRepository) AddWatch(userID, listingID string) error {
	var existing model.WatchlistModel
	err := r.db.Unscoped().Where("user_id = ? AND listing_id = ?", userID, listingID).First(&existing).Error
	if err == nil {
		if existing.DeletedAt.Valid {
			return r.db.Unscoped().Model(&existing).Update("deleted_at", nil).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	watchModel := &model.WatchlistModel{
		ID:        uuid.New().String(),
		UserID:    userID,
		ListingID: listingID,
	}
	return r.db.Create(watchModel).Error
}

func (r *listingRepository) RemoveWatch(userID, listingID string) error {
	return r.db.Unscoped().Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&model.WatchlistModel{}).Error
}

func (r *listingRepository) WatchlistForUser(userID string) ([]*entity.Listing, error) {
	var listingModels []model.ListingModel
	err := r.db.Table("listings").
		Joins("INNER JOIN watchlist ON watchlist.listing_id = listings.id").
		Where("watchlist.user_id = ? AND watchlist.deleted_at IS NULL AND listings.deleted_at IS NULL", userID).
		Order("watchlist.created_at DESC").
		Find(&listingModels).Error
	if err != nil {
		return nil, err
	}
	return toListingEntities(listingModels), nil
}

func toListingEntities(models []model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, len(models))
	for i := range models {
		listings[i] = ToListingEntity(&models[i])
	}
	return listings
}
