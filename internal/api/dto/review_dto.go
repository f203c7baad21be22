package dto

import (
	"time"

	"storehub/internal/api/models"
)

// CreateReviewDTO for posting a product review. Content becomes the root
// comment of the review's thread.
type CreateReviewDTO struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

type ReviewResponse struct {
	ID            string    `json:"id"`
	ProductID     int64     `json:"product_id"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Rating        int       `json:"rating"`
	RootCommentID string    `json:"root_comment_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:            review.ID,
		ProductID:     review.ProductID,
		AuthorID:      review.UserID,
		Rating:        review.Rating,
		RootCommentID: review.RootCommentID,
		CreatedAt:     review.CreatedAt,
	}
	if review.User != nil {
		resp.AuthorName = review.User.Username
	}
	return resp
}

type PaginatedReviewResponse struct {
	Data       []ReviewResponse `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

func NewPaginatedReviewResponse(data []ReviewResponse, total, page, pageSize int) *PaginatedReviewResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	return &PaginatedReviewResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
