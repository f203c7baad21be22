package repository

import (
	"storehub/internal/api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	DeleteMany(commentIDs []string) error
	GetByID(commentID string) (*models.Comment, error)
	ListByReview(reviewID string) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// DeleteMany removes a comment together with its subtree; the service
// computes the id set so the cascade stays in one round trip.
func (r *commentRepository) DeleteMany(commentIDs []string) error {
	if len(commentIDs) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", commentIDs).Delete(&models.Comment{}).Error
}

func (r *commentRepository) GetByID(commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).
		Preload("User").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByReview returns every comment of a review's thread as flat rows, in
// creation order. The service assembles the tree.
func (r *commentRepository) ListByReview(reviewID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("review_id = ?", reviewID).
		Preload("User").
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
