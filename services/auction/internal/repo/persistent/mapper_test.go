package persistent

import (
	"testing"

	"campushub/services/auction/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToListingModel_NoCategoryMapsToNull(t *testing.T) {
	listing := &entity.Listing{
		ID:           "listing-1",
		Title:        "Vintage lamp",
		StartingBid:  decimal.RequireFromString("10.00"),
		CurrentPrice: decimal.RequireFromString("10.00"),
		CreatorID:    "creator-1",
		Active:       true,
	}

	listingModel := ToListingModel(listing)

	assert.Nil(t, listingModel.CategoryID)
}

func TestToListingModel_CategoryRoundTrip(t *testing.T) {
	listing := &entity.Listing{
		ID:           "listing-1",
		Title:        "Vintage lamp",
		StartingBid:  decimal.RequireFromString("10.00"),
		CurrentPrice: decimal.RequireFromString("10.00"),
		CategoryID:   "cat-1",
		CreatorID:    "creator-1",
		Active:       true,
	}

	listingModel := ToListingModel(listing)
	assert.NotNil(t, listingModel.CategoryID)
	assert.Equal(t, "cat-1", *listingModel.CategoryID)

	back := ToListingEntity(listingModel)
	assert.Equal(t, "cat-1", back.CategoryID)
}

func TestToListingEntity_NullCategoryMapsToEmpty(t *testing.T) {
	listing := ToListingEntity(ToListingModel(&entity.Listing{
		ID:           "listing-1",
		Title:        "Vintage lamp",
		StartingBid:  decimal.RequireFromString("10.00"),
		CurrentPrice: decimal.RequireFromString("10.00"),
		CreatorID:    "creator-1",
	}))

	assert.Equal(t, "", listing.CategoryID)
}
