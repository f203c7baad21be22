package dto

import (
	"time"

	"storehub/internal/api/models"
)

// CreateCommentDTO for posting a reply into a review's thread. ParentID
// names the comment being replied to; for a top-level moderator reply it is
// the review's root comment.
type CreateCommentDTO struct {
	ParentID string `json:"parent_id" binding:"required,uuid"`
	Content  string `json:"content" binding:"required,min=1,max=5000"`
}

// UpdateCommentDTO for editing a comment
type UpdateCommentDTO struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// CommentResponse is one node of a thread. Children is populated only by
// the descendants endpoint; single-comment reads leave it empty.
type CommentResponse struct {
	ID              string            `json:"id"`
	ReviewID        string            `json:"review_id"`
	ParentID        string            `json:"parent_id,omitempty"`
	AuthorID        string            `json:"author_id"`
	AuthorName      string            `json:"author_name"`
	AuthorAvatarURL string            `json:"author_avatar_url,omitempty"`
	Content         string            `json:"content"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Children        []CommentResponse `json:"children,omitempty"`
}

// FromModelToCommentResponse converts a Comment model to a flat response
// node without children.
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	parentID := ""
	if comment.ParentID != nil {
		parentID = *comment.ParentID
	}
	return &CommentResponse{
		ID:              comment.ID,
		ReviewID:        comment.ReviewID,
		ParentID:        parentID,
		AuthorID:        comment.UserID,
		AuthorName:      comment.User.Username,
		AuthorAvatarURL: comment.User.AvatarURL,
		Content:         comment.Content,
		CreatedAt:       comment.CreatedAt,
		UpdatedAt:       comment.UpdatedAt,
	}
}
