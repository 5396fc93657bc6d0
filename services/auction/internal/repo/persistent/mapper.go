package persistent

import (
	"campushub/services/auction/internal/entity"
	"campushub/services/auction/internal/model"
)

func ToListingEntity(m *model.ListingModel) *entity.Listing {
	if m == nil {
		return nil
	}

	categoryID := ""
	if m.CategoryID != nil {
		categoryID = *m.CategoryID
	}

	return &entity.Listing{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		StartingBid:  m.StartingBid,
		CurrentPrice: m.CurrentPrice,
		ImageURL:     m.ImageURL,
		CategoryID:   categoryID,
		CreatorID:    m.CreatorID,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
	}
}

func ToListingModel(e *entity.Listing) *model.ListingModel {
	if e == nil {
		return nil
	}

	// An uncategorized listing must store NULL; an empty string is not a
	// valid uuid and the insert would fail.
	var categoryID *string
	if e.CategoryID != "" {
		id := e.CategoryID
		categoryID = &id
	}

	return &model.ListingModel{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		StartingBid:  e.StartingBid,
		CurrentPrice: e.CurrentPrice,
		ImageURL:     e.ImageURL,
		CategoryID:   categoryID,
		CreatorID:    e.CreatorID,
		Active:       e.Active,
		CreatedAt:    e.CreatedAt,
	}
}

func ToBidEntity(m *model.BidModel) *entity.Bid {
	if m == nil {
		return nil
	}

	return &entity.Bid{
		ID:        m.ID,
		UserID:    m.UserID,
		ListingID: m.ListingID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		UserID:    m.UserID,
		ListingID: m.ListingID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:   m.ID,
		Name: m.Name,
	}
}
