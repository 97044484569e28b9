package wishlist

import (
	"context"
	"errors"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/pkg/catalog"
	"RecycleHub-Backend/pkg/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WishlistService interface {
		AddItem(ctx context.Context, req domain.AddWishlistRequest, userID string) (*domain.WishlistResponse, error)
		GetUserWishlist(ctx context.Context, userID string, page, limit int) ([]*domain.WishlistResponse, int64, error)
		UpdateEntry(ctx context.Context, id string, req domain.UpdateWishlistRequest, userID string) (*domain.WishlistResponse, error)
		RemoveEntry(ctx context.Context, id, userID string) error
		ConvertToRequest(ctx context.Context, req domain.ConvertWishlistRequest, userID string) (*domain.CollectionRequestResponse, error)
	}

	wishlistService struct {
		wishlistRepo   WishlistRepository
		catalogRepo    catalog.CatalogRepository
		requestService request.RequestService
	}
)

func NewWishlistService(wishlistRepo WishlistRepository, catalogRepo catalog.CatalogRepository, requestService request.RequestService) WishlistService {
	return &wishlistService{
		wishlistRepo:   wishlistRepo,
		catalogRepo:    catalogRepo,
		requestService: requestService,
	}
}

func (s *wishlistService) AddItem(ctx context.Context, req domain.AddWishlistRequest, userID string) (*domain.WishlistResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	itemUUID, err := uuid.Parse(req.RecyclingItemID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item, err := s.catalogRepo.GetRecyclingItemByID(ctx, req.RecyclingItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecyclingItemNotFound
		}
		return nil, err
	}

	if _, err := s.wishlistRepo.GetActiveByUserAndItem(ctx, userID, req.RecyclingItemID); err == nil {
		return nil, domain.ErrDuplicateWishlistItem
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	entry := &entities.Wishlist{
		ID:              uuid.New(),
		UserID:          userUUID,
		RecyclingItemID: itemUUID,
		Quantity:        quantity,
		Notes:           req.Notes,
		IsActive:        true,
	}

	if err := s.wishlistRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	entry.RecyclingItem = item
	return toWishlistResponse(entry), nil
}

func (s *wishlistService) GetUserWishlist(ctx context.Context, userID string, page, limit int) ([]*domain.WishlistResponse, int64, error) {
	entries, count, err := s.wishlistRepo.GetUserWishlist(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*domain.WishlistResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toWishlistResponse(entry))
	}
	return responses, count, nil
}

func (s *wishlistService) UpdateEntry(ctx context.Context, id string, req domain.UpdateWishlistRequest, userID string) (*domain.WishlistResponse, error) {
	entry, err := s.getOwnedEntry(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Quantity > 0 {
		entry.Quantity = req.Quantity
	}
	if req.Notes != "" {
		entry.Notes = req.Notes
	}

	if err := s.wishlistRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return toWishlistResponse(entry), nil
}

func (s *wishlistService) RemoveEntry(ctx context.Context, id, userID string) error {
	entry, err := s.getOwnedEntry(ctx, id, userID)
	if err != nil {
		return err
	}

	entry.IsActive = false
	return s.wishlistRepo.Update(ctx, entry)
}

// ConvertToRequest creates a browsed-items collection request from the
// caller's wishlist, then deactivates every wishlist entry that matched one
// of the requested catalog items.
func (s *wishlistService) ConvertToRequest(ctx context.Context, req domain.ConvertWishlistRequest, userID string) (*domain.CollectionRequestResponse, error) {
	entries, _, err := s.wishlistRepo.GetUserWishlist(ctx, userID, 1, 1000)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrEmptyWishlist
	}

	requested := make(map[string]bool, len(req.Items))
	for _, item := range req.Items {
		requested[item.RecyclingItemID] = true
	}

	var converted []string
	for _, entry := range entries {
		if requested[entry.RecyclingItemID.String()] {
			converted = append(converted, entry.ID.String())
		}
	}
	if len(converted) == 0 {
		return nil, domain.ErrEmptyWishlist
	}

	response, err := s.requestService.CreateFromWishlist(ctx, domain.CreateFromWishlistRequest{
		Items:         req.Items,
		PickupAddress: req.PickupAddress,
		Notes:         req.Notes,
	}, userID)
	if err != nil {
		return nil, err
	}

	if err := s.wishlistRepo.DeactivateEntries(ctx, userID, converted); err != nil {
		return nil, err
	}

	return response, nil
}

func (s *wishlistService) getOwnedEntry(ctx context.Context, id, userID string) (*entities.Wishlist, error) {
	entry, err := s.wishlistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWishlistEntryNotFound
		}
		return nil, err
	}
	if entry.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return entry, nil
}

func toWishlistResponse(entry *entities.Wishlist) *domain.WishlistResponse {
	response := &domain.WishlistResponse{
		ID:        entry.ID.String(),
		Quantity:  entry.Quantity,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
	}
	if entry.RecyclingItem != nil {
		response.RecyclingItem = &domain.RecyclingItemResponse{
			ID:          entry.RecyclingItem.ID.String(),
			ItemID:      entry.RecyclingItem.ItemID,
			Name:        entry.RecyclingItem.Name,
			Category:    entry.RecyclingItem.Category,
			Price:       entry.RecyclingItem.Price,
			Description: entry.RecyclingItem.Description,
			ImageURL:    entry.RecyclingItem.ImageURL,
			SortOrder:   entry.RecyclingItem.SortOrder,
			CreatedAt:   entry.RecyclingItem.CreatedAt,
		}
	}
	return response
}
