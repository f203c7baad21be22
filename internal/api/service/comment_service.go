package service

import (
	"errors"

	"storehub/internal/api/dto"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("you don't have permission to modify this comment")
	ErrRootProtected   = errors.New("the review's root comment cannot be modified through the comment API")
	ErrParentMismatch  = errors.New("parent comment does not belong to this review")
)

type CommentService interface {
	Create(reviewID, parentID, userID, content string) (*dto.CommentResponse, error)
	Update(commentID, userID, role, content string) (*dto.CommentResponse, error)
	Delete(commentID, userID, role string) error
	GetByID(commentID string) (*dto.CommentResponse, error)
	GetDescendants(rootCommentID string) ([]dto.CommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
}

func NewCommentService(commentRepo repository.CommentRepository, reviewRepo repository.ReviewRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

// Create posts a reply under parentID within a review's thread.
func (s *commentService) Create(reviewID, parentID, userID, content string) (*dto.CommentResponse, error) {
	if _, err := s.reviewRepo.GetByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	parent, err := s.commentRepo.GetByID(parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if parent.ReviewID != reviewID {
		return nil, ErrParentMismatch
	}

	comment := &models.Comment{
		ReviewID: reviewID,
		ParentID: &parentID,
		UserID:   userID,
		Content:  content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// Reload with user data
	comment, err = s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(comment), nil
}

// Update edits a comment's content. Root comments are the review's own text
// and stay out of reach of this surface.
func (s *commentService) Update(commentID, userID, role, content string) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.ParentID == nil {
		return nil, ErrRootProtected
	}
	if comment.UserID != userID && !isStaff(role) {
		return nil, ErrNotCommentOwner
	}

	comment.Content = content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	comment, err = s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(comment), nil
}

// Delete removes a comment and every reply below it.
func (s *commentService) Delete(commentID, userID, role string) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.ParentID == nil {
		return ErrRootProtected
	}
	if comment.UserID != userID && !isStaff(role) {
		return ErrNotCommentOwner
	}

	flat, err := s.commentRepo.ListByReview(comment.ReviewID)
	if err != nil {
		return err
	}
	return s.commentRepo.DeleteMany(subtreeIDs(flat, commentID))
}

func (s *commentService) GetByID(commentID string) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return dto.FromModelToCommentResponse(comment), nil
}

// GetDescendants returns the nested reply trees below the given root,
// excluding the root itself.
func (s *commentService) GetDescendants(rootCommentID string) ([]dto.CommentResponse, error) {
	root, err := s.commentRepo.GetByID(rootCommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	flat, err := s.commentRepo.ListByReview(root.ReviewID)
	if err != nil {
		return nil, err
	}
	return BuildCommentTree(flat, rootCommentID), nil
}

func isStaff(role string) bool {
	return role == "moderator" || role == "admin"
}

// BuildCommentTree nests flat comment rows into the reply trees below
// parentID, preserving the rows' creation order at every level.
func BuildCommentTree(flat []models.Comment, parentID string) []dto.CommentResponse {
	byParent := make(map[string][]*models.Comment)
	for i := range flat {
		c := &flat[i]
		if c.ParentID == nil {
			continue
		}
		byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
	}

	var build func(id string) []dto.CommentResponse
	build = func(id string) []dto.CommentResponse {
		rows := byParent[id]
		if len(rows) == 0 {
			return nil
		}
		out := make([]dto.CommentResponse, 0, len(rows))
		for _, row := range rows {
			node := *dto.FromModelToCommentResponse(row)
			node.Children = build(row.ID)
			out = append(out, node)
		}
		return out
	}
	return build(parentID)
}

// subtreeIDs collects commentID and every id reachable below it.
func subtreeIDs(flat []models.Comment, commentID string) []string {
	children := make(map[string][]string)
	for i := range flat {
		c := &flat[i]
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	ids := []string{commentID}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, children[ids[i]]...)
	}
	return ids
}
