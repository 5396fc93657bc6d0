package usecase

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"campushub/pkg/apperrors"
	"campushub/pkg/logger"
	"campushub/pkg/queue"
	"campushub/pkg/storage"
	"campushub/services/auction/internal/entity"
	"campushub/services/auction/internal/repo/persistent"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrListingNotFound = fmt.Errorf("%w: listing not found", apperrors.ErrNotFound)
	ErrAuctionClosed   = fmt.Errorf("%w: this auction is no longer active", apperrors.ErrBusinessRule)
	ErrAlreadyClosed   = fmt.Errorf("%w: this auction is already closed", apperrors.ErrBusinessRule)
	ErrSelfBid         = fmt.Errorf("%w: you cannot bid on your own listing", apperrors.ErrBusinessRule)
	ErrBidTooLow       = fmt.Errorf("%w: bid must exceed the current price", apperrors.ErrBusinessRule)
	ErrNotOwner        = fmt.Errorf("%w: you can only close your own auctions", apperrors.ErrForbidden)
	ErrInvalidStartBid = fmt.Errorf("%w: starting bid must be positive", apperrors.ErrValidation)
	ErrEmptyComment    = fmt.Errorf("%w: comment cannot be empty", apperrors.ErrValidation)
)

// CloseResult reports the outcome of closing an auction. Winner is nil when
// the auction received no bids.
type CloseResult struct {
	Listing *entity.Listing `json:"listing"`
	Winner  *entity.Bid     `json:"winner,omitempty"`
}

type AuctionUseCase interface {
	CreateListing(creatorID, title, description string, startingBid decimal.Decimal, imageURL, categoryName string) (*entity.Listing, error)
	GetListing(listingID, viewerID string) (*entity.ListingDetail, error)
	ListActive() ([]*entity.Listing, error)
	ListByCategory(categoryID string) ([]*entity.Listing, error)
	ListCategories() ([]*entity.Category, error)
	PlaceBid(listingID, bidderID string, amount decimal.Decimal) (*entity.Bid, error)
	CloseAuction(listingID, requesterID string) (*CloseResult, error)
	ToggleWatch(userID, listingID string) (bool, error)
	Watchlist(userID string) ([]*entity.Listing, error)
	AddComment(userID, listingID, content string) (*entity.Comment, error)
	UploadListingImage(fileReader io.Reader, contentType string) (string, error)
}

type auctionUseCase struct {
	listingRepo   persistent.ListingRepository
	storageClient *storage.Client
	queueClient   *queue.Client
	logger        *logger.Logger
}

func NewAuctionUseCase(
	listingRepo persistent.ListingRepository,
	storageClient *storage.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) AuctionUseCase {
	return &auctionUseCase{
		listingRepo:   listingRepo,
		storageClient: storageClient,
		queueClient:   queueClient,
		logger:        logger,
	}
}

func (uc *auctionUseCase) CreateListing(creatorID, title, description string, startingBid decimal.Decimal, imageURL, categoryName string) (*entity.Listing, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if !startingBid.IsPositive() {
		return nil, ErrInvalidStartBid
	}

	categoryID := ""
	if categoryName != "" {
		category, err := uc.listingRepo.GetOrCreateCategory(categoryName)
		if err != nil {
			uc.logger.Error("Failed to resolve category %q: %v", categoryName, err)
			return nil, fmt.Errorf("%w: failed to resolve category", apperrors.ErrInternal)
		}
		categoryID = category.ID
	}

	listing := &entity.Listing{
		Title:        title,
		Description:  description,
		StartingBid:  startingBid,
		CurrentPrice: startingBid,
		ImageURL:     imageURL,
		CategoryID:   categoryID,
		CreatorID:    creatorID,
		Active:       true,
	}

	if err := uc.listingRepo.CreateListing(listing); err != nil {
		uc.logger.Error("Failed to create listing: %v", err)
		return nil, fmt.Errorf("%w: failed to create listing", apperrors.ErrInternal)
	}

	return listing, nil
}

func (uc *auctionUseCase) GetListing(listingID, viewerID string) (*entity.ListingDetail, error) {
	listing, err := uc.listingRepo.GetListing(listingID)
	if err != nil {
		return nil, ErrListingNotFound
	}

	bids, err := uc.listingRepo.BidsForListing(listingID)
	if err != nil {
		uc.logger.Error("Failed to load bids for listing %s: %v", listingID, err)
		return nil, fmt.Errorf("%w: failed to load bids", apperrors.ErrInternal)
	}

	comments, err := uc.listingRepo.CommentsForListing(listingID)
	if err != nil {
		uc.logger.Error("Failed to load comments for listing %s: %v", listingID, err)
		return nil, fmt.Errorf("%w: failed to load comments", apperrors.ErrInternal)
	}

	detail := &entity.ListingDetail{
		Listing:  listing,
		Bids:     bids,
		Comments: comments,
		BidCount: len(bids),
	}

	if viewerID != "" {
		watched, err := uc.listingRepo.IsWatched(viewerID, listingID)
		if err == nil {
			detail.IsWatched = watched
		}
	}

	// Winner only becomes visible once the auction has closed.
	if !listing.Active && len(bids) > 0 {
		detail.Winner = bids[0]
	}

	return detail, nil
}

func (uc *auctionUseCase) ListActive() ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.ListActive()
	if err != nil {
		uc.logger.Error("Failed to list active listings: %v", err)
		return nil, fmt.Errorf("%w: failed to list listings", apperrors.ErrInternal)
	}
	return listings, nil
}

func (uc *auctionUseCase) ListByCategory(categoryID string) ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.ListByCategory(categoryID)
	if err != nil {
		uc.logger.Error("Failed to list listings for category %s: %v", categoryID, err)
		return nil, fmt.Errorf("%w: failed to list listings", apperrors.ErrInternal)
	}
	return listings, nil
}

func (uc *auctionUseCase) ListCategories() ([]*entity.Category, error) {
	categories, err := uc.listingRepo.ListCategories()
	if err != nil {
		uc.logger.Error("Failed to list categories: %v", err)
		return nil, fmt.Errorf("%w: failed to list categories", apperrors.ErrInternal)
	}
	return categories, nil
}

func (uc *auctionUseCase) PlaceBid(listingID, bidderID string, amount decimal.Decimal) (*entity.Bid, error) {
	listing, err := uc.listingRepo.GetListing(listingID)
	if err != nil {
		return nil, ErrListingNotFound
	}

	if !listing.Active {
		return nil, ErrAuctionClosed
	}
	if listing.CreatorID == bidderID {
		return nil, ErrSelfBid
	}
	if amount.LessThanOrEqual(listing.CurrentPrice) {
		return nil, ErrBidTooLow
	}

	// Remember who held the top bid so they can be told they were outbid.
	previousTop, err := uc.listingRepo.TopBid(listingID)
	if err != nil {
		uc.logger.Error("Failed to load top bid for listing %s: %v", listingID, err)
	}

	bid := &entity.Bid{
		UserID:    bidderID,
		ListingID: listingID,
		Amount:    amount,
	}

	if err := uc.listingRepo.PlaceBid(bid); err != nil {
		if errors.Is(err, persistent.ErrStalePrice) {
			// A concurrent bid or close won the race; the caller's amount no
			// longer beats the stored price.
			return nil, ErrBidTooLow
		}
		uc.logger.Error("Failed to place bid on listing %s: %v", listingID, err)
		return nil, fmt.Errorf("%w: failed to place bid", apperrors.ErrInternal)
	}

	if previousTop != nil && previousTop.UserID != bidderID && uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":       queue.TaskOutbid,
				"user_id":    previousTop.UserID,
				"bidder_id":  bidderID,
				"listing_id": listingID,
				"amount":     amount.String(),
				"priority":   3,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish outbid notification: %v", err)
			}
		}()
	}

	return bid, nil
}

func (uc *auctionUseCase) CloseAuction(listingID, requesterID string) (*CloseResult, error) {
	listing, err := uc.listingRepo.GetListing(listingID)
	if err != nil {
		return nil, ErrListingNotFound
	}

	if listing.CreatorID != requesterID {
		return nil, ErrNotOwner
	}
	if !listing.Active {
		return nil, ErrAlreadyClosed
	}

	winner, err := uc.listingRepo.CloseListing(listingID)
	if err != nil {
		if errors.Is(err, persistent.ErrListingInactive) {
			// Lost a race with another close.
			return nil, ErrAlreadyClosed
		}
		uc.logger.Error("Failed to close listing %s: %v", listingID, err)
		return nil, fmt.Errorf("%w: failed to close auction", apperrors.ErrInternal)
	}
	listing.Active = false

	if winner != nil && uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":       queue.TaskAuctionWon,
				"user_id":    winner.UserID,
				"listing_id": listingID,
				"amount":     winner.Amount.String(),
				"priority":   5,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish auction-won notification: %v", err)
			}
		}()
	}

	return &CloseResult{Listing: listing, Winner: winner}, nil
}

func (uc *auctionUseCase) ToggleWatch(userID, listingID string) (bool, error) {
	if _, err := uc.listingRepo.GetListing(listingID); err != nil {
		return false, ErrListingNotFound
	}

	watched, err := uc.listingRepo.IsWatched(userID, listingID)
	if err != nil {
		uc.logger.Error("Failed to check watch status: %v", err)
		return false, fmt.Errorf("%w: failed to check watch status", apperrors.ErrInternal)
	}

	if watched {
		if err := uc.listingRepo.RemoveWatch(userID, listingID); err != nil {
			uc.logger.Error("Failed to remove watch: %v", err)
			return false, fmt.Errorf("%w: failed to update watchlist", apperrors.ErrInternal)
		}
		return false, nil
	}

	if err := uc.listingRepo.AddWatch(userID, listingID); err != nil {
		uc.logger.Error("Failed to add watch: %v", err)
		return false, fmt.Errorf("%w: failed to update watchlist", apperrors.ErrInternal)
	}
	return true, nil
}

func (uc *auctionUseCase) Watchlist(userID string) ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.WatchlistForUser(userID)
	if err != nil {
		uc.logger.Error("Failed to load watchlist for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load watchlist", apperrors.ErrInternal)
	}
	return listings, nil
}

func (uc *auctionUseCase) AddComment(userID, listingID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyComment
	}

	if _, err := uc.listingRepo.GetListing(listingID); err != nil {
		return nil, ErrListingNotFound
	}

	comment := &entity.Comment{
		UserID:    userID,
		ListingID: listingID,
		Content:   content,
	}

	if err := uc.listingRepo.AddComment(comment); err != nil {
		uc.logger.Error("Failed to add comment: %v", err)
		return nil, fmt.Errorf("%w: failed to add comment", apperrors.ErrInternal)
	}

	return comment, nil
}

func (uc *auctionUseCase) UploadListingImage(fileReader io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("listings/%s", uuid.New().String())
	url, err := uc.storageClient.UploadFile(key, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload listing image: %v", err)
		return "", fmt.Errorf("%w: failed to upload image", apperrors.ErrInternal)
	}
	return url, nil
}
