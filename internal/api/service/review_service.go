package service

import (
	"errors"

	"storehub/internal/api/dto"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrProductNotFound = errors.New("product not found")
)

type ReviewService interface {
	Create(productID int64, userID string, rating int, content string) (*dto.ReviewResponse, error)
	GetByID(reviewID string) (*dto.ReviewResponse, error)
	ListByProduct(productID int64, page, pageSize int) (*dto.PaginatedReviewResponse, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	commentRepo repository.CommentRepository
	productRepo repository.ProductRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	commentRepo repository.CommentRepository,
	productRepo repository.ProductRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		productRepo: productRepo,
	}
}

// Create stores a new review: the rating row plus a root comment carrying
// the review text, which anchors the discussion thread.
func (s *reviewService) Create(productID int64, userID string, rating int, content string) (*dto.ReviewResponse, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	reviewID := uuid.New().String()

	root := &models.Comment{
		ReviewID: reviewID,
		ParentID: nil,
		UserID:   userID,
		Content:  content,
	}
	if err := s.commentRepo.Create(root); err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:            reviewID,
		ProductID:     productID,
		UserID:        userID,
		Rating:        rating,
		RootCommentID: root.ID,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) GetByID(reviewID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) ListByProduct(productID int64, page, pageSize int) (*dto.PaginatedReviewResponse, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	reviews, total, err := s.reviewRepo.ListByProduct(productID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&reviews[i]))
	}
	return dto.NewPaginatedReviewResponse(responses, int(total), page, pageSize), nil
}
