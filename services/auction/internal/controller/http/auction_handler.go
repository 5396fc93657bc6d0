package http

import (
	"net/http"

	"campushub/pkg/apperrors"
	"campushub/pkg/logger"
	"campushub/services/auction/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionHandler struct {
	auctionUseCase usecase.AuctionUseCase
	logger         *logger.Logger
}

func NewAuctionHandler(auctionUseCase usecase.AuctionUseCase, logger *logger.Logger) *AuctionHandler {
	return &AuctionHandler{
		auctionUseCase: auctionUseCase,
		logger:         logger,
	}
}

type createListingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartingBid string `json:"starting_bid" binding:"required"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

type placeBidRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type addCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateListing godoc
// @Summary      Create a listing
// @Tags         auctions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createListingRequest true "Listing data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /listings [post]
func (h *AuctionHandler) CreateListing(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startingBid, err := decimal.NewFromString(req.StartingBid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "starting_bid must be a decimal number"})
		return
	}

	userID := c.GetString("user_id")
	listing, err := h.auctionUseCase.CreateListing(userID, req.Title, req.Description, startingBid, req.ImageURL, req.Category)
	if err != nil {
		status := apperrors.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to create listing: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}

// ListActive godoc
// @Summary      List active auctions
// @Tags         auctions
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /listings [get]
func (h *AuctionHandler) ListActive(c *gin.Context) {
	listings, err := h.auctionUseCase.ListActive()
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// GetListing godoc
// @Summary      Listing detail with bids and comments
// @Tags         auctions
// @Produce      json
// @Param        id path string true "Listing ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /listings/{id} [get]
func (h *AuctionHandler) GetListing(c *gin.Context) {
	listingID := c.Param("id")
	viewerID := c.GetString("user_id")

	detail, err := h.auctionUseCase.GetListing(listingID, viewerID)
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// PlaceBid godoc
// @Summary      Place a bid
// @Tags         auctions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Listing ID"
// @Param        request body placeBidRequest true "Bid amount"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /listings/{id}/bids [post]
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	var req placeBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}

	userID := c.GetString("user_id")
	bid, err := h.auctionUseCase.PlaceBid(c.Param("id"), userID, amount)
	if err != nil {
		status := apperrors.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to place bid: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bid": bid})
}

// CloseAuction godoc
// @Summary      Close an auction
// @Description  Only the creator can close; the highest bidder wins
// @Tags         auctions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Listing ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /listings/{id}/close [post]
func (h *AuctionHandler) CloseAuction(c *gin.Context) {
	userID := c.GetString("user_id")

	result, err := h.auctionUseCase.CloseAuction(c.Param("id"), userID)
	if err != nil {
		status := apperrors.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to close auction: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ToggleWatch godoc
// @Summary      Add or remove a listing from the watchlist
// @Tags         auctions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Listing ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /listings/{id}/watch [post]
func (h *AuctionHandler) ToggleWatch(c *gin.Context) {
	userID := c.GetString("user_id")

	watched, err := h.auctionUseCase.ToggleWatch(userID, c.Param("id"))
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"watched": watched})
}

// Watchlist godoc
// @Summary      Listings the current user watches
// @Tags         auctions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /watchlist [get]
func (h *AuctionHandler) Watchlist(c *gin.Context) {
	userID := c.GetString("user_id")

	listings, err := h.auctionUseCase.Watchlist(userID)
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// AddComment godoc
// @Summary      Comment on a listing
// @Tags         auctions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Listing ID"
// @Param        request body addCommentRequest true "Comment"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /listings/{id}/comments [post]
func (h *AuctionHandler) AddComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	comment, err := h.auctionUseCase.AddComment(userID, c.Param("id"), req.Content)
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// ListCategories godoc
// @Summary      List categories
// @Tags         auctions
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /categories [get]
func (h *AuctionHandler) ListCategories(c *gin.Context) {
	categories, err := h.auctionUseCase.ListCategories()
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListByCategory godoc
// @Summary      Active listings in a category
// @Tags         auctions
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /categories/{id}/listings [get]
func (h *AuctionHandler) ListByCategory(c *gin.Context) {
	listings, err := h.auctionUseCase.ListByCategory(c.Param("id"))
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// UploadImage godoc
// @Summary      Upload a listing image
// @Tags         auctions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image formData file true "Image file"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /listings/images [post]
func (h *AuctionHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer file.Close()

	url, err := h.auctionUseCase.UploadListingImage(file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("Failed to upload image: %v", err)
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
