package review

import (
	"context"
	"errors"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		CreateReview(ctx context.Context, req domain.CreateReviewRequest, reviewerID string) (*domain.ReviewResponse, error)
		UpdateReview(ctx context.Context, id string, req domain.UpdateReviewRequest, callerID string) error
		DeleteReview(ctx context.Context, id, callerID, callerRole string) error
		GetCollectorReviews(ctx context.Context, collectorID string, page, limit int) ([]*domain.ReviewResponse, int64, error)
		GetUserReviews(ctx context.Context, userID string, page, limit int) ([]*domain.ReviewResponse, int64, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		userRepository   user.UserRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, userRepository user.UserRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		userRepository:   userRepository,
	}
}

func toReviewResponse(review *entities.Review) *domain.ReviewResponse {
	resp := &domain.ReviewResponse{
		ID:          review.ID.String(),
		CollectorID: review.CollectorID.String(),
		Rating:      review.Rating,
		Comment:     review.Comment,
		IsAnonymous: review.IsAnonymous,
		IsVerified:  review.IsVerified,
		CreatedAt:   review.CreatedAt,
	}
	if review.IsAnonymous {
		resp.ReviewerName = "Anonymous"
	} else if review.User != nil {
		resp.ReviewerName = review.User.Name
	}
	return resp
}

func (s *reviewService) CreateReview(ctx context.Context, req domain.CreateReviewRequest, reviewerID string) (*domain.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	if req.CollectorID == reviewerID {
		return nil, domain.ErrCannotReviewSelf
	}

	collector, err := s.userRepository.GetUserByID(ctx, req.CollectorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectorNotFound
		}
		return nil, err
	}
	if collector.Role != domain.RoleCollector {
		return nil, domain.ErrCollectorNotFound
	}

	if _, err := s.reviewRepository.GetActiveByReviewerAndCollector(ctx, reviewerID, req.CollectorID); err == nil {
		return nil, domain.ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	verified, err := s.reviewRepository.HasCompletedRequestWith(ctx, reviewerID, req.CollectorID)
	if err != nil {
		return nil, err
	}

	review := &entities.Review{
		ID:          uuid.New(),
		UserID:      reviewerUUID,
		CollectorID: collector.ID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		IsAnonymous: req.IsAnonymous,
		IsVerified:  verified,
		IsActive:    true,
	}
	if req.CollectionRequestID != "" {
		requestUUID, err := uuid.Parse(req.CollectionRequestID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		review.CollectionRequestID = &requestUUID
	}

	if err := s.reviewRepository.CreateAndRecalculate(ctx, review); err != nil {
		return nil, err
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id string, req domain.UpdateReviewRequest, callerID string) error {
	review, err := s.reviewRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	if review.UserID.String() != callerID {
		return domain.ErrUnauthorizedReviewAccess
	}

	if req.Rating != 0 {
		if req.Rating < 1 || req.Rating > 5 {
			return domain.ErrInvalidRating
		}
		review.Rating = req.Rating
	}
	if req.Comment != "" {
		review.Comment = req.Comment
	}
	if req.IsAnonymous != nil {
		review.IsAnonymous = *req.IsAnonymous
	}

	return s.reviewRepository.UpdateAndRecalculate(ctx, review)
}

func (s *reviewService) DeleteReview(ctx context.Context, id, callerID, callerRole string) error {
	review, err := s.reviewRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	if review.UserID.String() != callerID && callerRole != domain.RoleAdmin {
		return domain.ErrUnauthorizedReviewAccess
	}

	review.IsActive = false
	return s.reviewRepository.UpdateAndRecalculate(ctx, review)
}

func (s *reviewService) GetCollectorReviews(ctx context.Context, collectorID string, page, limit int) ([]*domain.ReviewResponse, int64, error) {
	reviews, count, err := s.reviewRepository.GetCollectorReviews(ctx, collectorID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, toReviewResponse(review))
	}
	return result, count, nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID string, page, limit int) ([]*domain.ReviewResponse, int64, error) {
	reviews, count, err := s.reviewRepository.GetUserReviews(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, toReviewResponse(review))
	}
	return result, count, nil
}
