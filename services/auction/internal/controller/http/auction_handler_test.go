package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"campushub/pkg/logger"
	"campushub/services/auction/internal/entity"
	"campushub/services/auction/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuctionUseCase struct {
	mock.Mock
}

func (m *MockAuctionUseCase) CreateListing(creatorID, title, description string, startingBid decimal.Decimal, imageURL, categoryName string) (*entity.Listing, error) {
	args := m.Called(creatorID, title, description, startingBid, imageURL, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *MockAuctionUseCase) GetListing(listingID, viewerID string) (*entity.ListingDetail, error) {
	args := m.Called(listingID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ListingDetail), args.Error(1)
}

func (m *MockAuctionUseCase) ListActive() ([]*entity.Listing, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *MockAuctionUseCase) ListByCategory(categoryID string) ([]*entity.Listing, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *MockAuctionUseCase) ListCategories() ([]*entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockAuctionUseCase) PlaceBid(listingID, bidderID string, amount decimal.Decimal) (*entity.Bid, error) {
	args := m.Called(listingID, bidderID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bid), args.Error(1)
}

func (m *MockAuctionUseCase) CloseAuction(listingID, requesterID string) (*usecase.CloseResult, error) {
	args := m.Called(listingID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CloseResult), args.Error(1)
}

func (m *MockAuctionUseCase) ToggleWatch(userID, listingID string) (bool, error) {
	args := m.Called(userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuctionUseCase) Watchlist(userID string) ([]*entity.Listing, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *MockAuctionUseCase) AddComment(userID, listingID, content string) (*entity.Comment, error) {
	args := m.Called(userID, listingID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockAuctionUseCase) UploadListingImage(fileReader io.Reader, contentType string) (string, error) {
	args := m.Called(fileReader, contentType)
	return args.String(0), args.Error(1)
}

var _ usecase.AuctionUseCase = (*MockAuctionUseCase)(nil)

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

func TestPlaceBid_Created(t *testing.T) {
	mockUseCase := new(MockAuctionUseCase)
	handler := NewAuctionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/listings/:id/bids", asUser("alice", handler.PlaceBid))

	bid := &entity.Bid{ID: "bid-1", UserID: "alice", ListingID: "listing-1", Amount: decimal.RequireFromString("12.00")}
	mockUseCase.On("PlaceBid", "listing-1", "alice", decimal.RequireFromString("12.00")).Return(bid, nil)

	body, _ := json.Marshal(map[string]string{"amount": "12.00"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/listings/listing-1/bids", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPlaceBid_TooLowReturns400(t *testing.T) {
	mockUseCase := new(MockAuctionUseCase)
	handler := NewAuctionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/listings/:id/bids", asUser("bob", handler.PlaceBid))

	mockUseCase.On("PlaceBid", "listing-1", "bob", decimal.RequireFromString("11.00")).
		Return(nil, usecase.ErrBidTooLow)

	body, _ := json.Marshal(map[string]string{"amount": "11.00"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/listings/listing-1/bids", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPlaceBid_MalformedAmount(t *testing.T) {
	mockUseCase := new(MockAuctionUseCase)
	handler := NewAuctionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/listings/:id/bids", asUser("bob", handler.PlaceBid))

	body, _ := json.Marshal(map[string]string{"amount": "twelve"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/listings/listing-1/bids", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "PlaceBid")
}

func TestCloseAuction_NotOwnerReturns403(t *testing.T) {
	mockUseCase := new(MockAuctionUseCase)
	handler := NewAuctionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/listings/:id/close", asUser("alice", handler.CloseAuction))

	mockUseCase.On("CloseAuction", "listing-1", "alice").Return(nil, usecase.ErrNotOwner)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/listings/listing-1/close", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCloseAuction_ReturnsWinner(t *testing.T) {
	mockUseCase := new(MockAuctionUseCase)
	handler := NewAuctionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/listings/:id/close", asUser("creator-1", handler.CloseAuction))

	result := &usecase.CloseResult{
		Listing: &entity.Listing{ID: "listing-1", Active: false},
		Winner:  &entity.Bid{ID: "bid-2", UserID: "bob", Amount: decimal.RequireFromString("15.00")},
	}
	mockUseCase.On("CloseAuction", "listing-1", "creator-1").Return(result, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/listings/listing-1/close", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	winner := response["winner"].(map[string]interface{})
	assert.Equal(t, "bob", winner["user_id"])
	mockUseCase.AssertExpectations(t)
}

func TestGetListing_NotFound(t *testing.T) {
	mockUseCase := new(MockAuctionUseCase)
	handler := NewAuctionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/listings/:id", handler.GetListing)

	mockUseCase.On("GetListing", "missing", "").Return(nil, usecase.ErrListingNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/listings/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestToggleWatch_ReturnsNewState(t *testing.T) {
	mockUseCase := new(MockAuctionUseCase)
	handler := NewAuctionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/listings/:id/watch", asUser("alice", handler.ToggleWatch))

	mockUseCase.On("ToggleWatch", "alice", "listing-1").Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/listings/listing-1/watch", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["watched"])
	mockUseCase.AssertExpectations(t)
}
