package catalog

import (
	"context"
	"errors"
	"fmt"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		GetRecyclingItems(ctx context.Context, category string, page, limit int) ([]*domain.RecyclingItemResponse, int64, error)
		GetRecyclingItemByID(ctx context.Context, id string) (*domain.RecyclingItemResponse, error)
		CreateRecyclingItem(ctx context.Context, req domain.CreateRecyclingItemRequest) (*domain.RecyclingItemResponse, error)
		UpdateRecyclingItem(ctx context.Context, id string, req domain.UpdateRecyclingItemRequest) error
		DeleteRecyclingItem(ctx context.Context, id string) error

		GetCategories(ctx context.Context) ([]*domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error
		DeleteCategory(ctx context.Context, id string) error
	}

	catalogService struct {
		catalogRepository CatalogRepository
		s3                storage.AwsS3
	}
)

func NewCatalogService(catalogRepository CatalogRepository, s3 storage.AwsS3) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		s3:                s3,
	}
}

func toRecyclingItemResponse(item *entities.RecyclingItem) *domain.RecyclingItemResponse {
	return &domain.RecyclingItemResponse{
		ID:          item.ID.String(),
		ItemID:      item.ItemID,
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		SortOrder:   item.SortOrder,
		CreatedAt:   item.CreatedAt,
	}
}

func (s *catalogService) GetRecyclingItems(ctx context.Context, category string, page, limit int) ([]*domain.RecyclingItemResponse, int64, error) {
	items, count, err := s.catalogRepository.GetRecyclingItems(ctx, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.RecyclingItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toRecyclingItemResponse(item))
	}
	return result, count, nil
}

func (s *catalogService) GetRecyclingItemByID(ctx context.Context, id string) (*domain.RecyclingItemResponse, error) {
	item, err := s.catalogRepository.GetRecyclingItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecyclingItemNotFound
		}
		return nil, err
	}
	return toRecyclingItemResponse(item), nil
}

func (s *catalogService) CreateRecyclingItem(ctx context.Context, req domain.CreateRecyclingItemRequest) (*domain.RecyclingItemResponse, error) {
	if _, err := s.catalogRepository.GetRecyclingItemByItemID(ctx, req.ItemID); err == nil {
		return nil, domain.ErrRecyclingItemAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &entities.RecyclingItem{
		ID:          uuid.New(),
		ItemID:      req.ItemID,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}

	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("recycling-item-%s", item.ID.String()),
			req.Image,
			"recycling-items",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.catalogRepository.CreateRecyclingItem(ctx, item); err != nil {
		return nil, err
	}

	return toRecyclingItemResponse(item), nil
}

func (s *catalogService) UpdateRecyclingItem(ctx context.Context, id string, req domain.UpdateRecyclingItemRequest) error {
	item, err := s.catalogRepository.GetRecyclingItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecyclingItemNotFound
		}
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Price != "" {
		item.Price = req.Price
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}

	if req.Image != nil {
		var objectKey string
		var uploadErr error
		if item.ImageURL != "" {
			existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(
				fmt.Sprintf("recycling-item-%s", item.ID.String()),
				req.Image,
				"recycling-items",
				storage.AllowImage...,
			)
		}
		if uploadErr != nil {
			return uploadErr
		}
		item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	return s.catalogRepository.UpdateRecyclingItem(ctx, item)
}

func (s *catalogService) DeleteRecyclingItem(ctx context.Context, id string) error {
	item, err := s.catalogRepository.GetRecyclingItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecyclingItemNotFound
		}
		return err
	}

	item.IsActive = false
	return s.catalogRepository.UpdateRecyclingItem(ctx, item)
}

func (s *catalogService) GetCategories(ctx context.Context) ([]*domain.CategoryResponse, error) {
	categories, err := s.catalogRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, &domain.CategoryResponse{
			ID:          category.ID.String(),
			Name:        category.Name,
			Description: category.Description,
			Icon:        category.Icon,
			SortOrder:   category.SortOrder,
		})
	}
	return result, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*domain.CategoryResponse, error) {
	if _, err := s.catalogRepository.GetCategoryByName(ctx, req.Name); err == nil {
		return nil, domain.ErrCategoryAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &entities.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}

	if err := s.catalogRepository.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return &domain.CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		Icon:        category.Icon,
		SortOrder:   category.SortOrder,
	}, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error {
	category, err := s.catalogRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.Icon != "" {
		category.Icon = req.Icon
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	return s.catalogRepository.UpdateCategory(ctx, category)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.catalogRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	category.IsActive = false
	return s.catalogRepository.UpdateCategory(ctx, category)
}
