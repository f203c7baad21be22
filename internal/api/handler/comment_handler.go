package handler

import (
	"errors"
	"net/http"

	"storehub/internal/api/dto"
	"storehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment routes. All of them require
// authentication; moderation clients additionally pass staff checks
// at the service layer when touching other users' comments.
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/reviews/:review_id/comments", h.Create)

	comments := router.Group("/comments")
	{
		comments.GET("/:id", h.GetByID)
		comments.GET("/:id/descendants", h.GetDescendants)
		comments.PUT("/:id", h.Update)
		comments.DELETE("/:id", h.Delete)
	}
}

// Create posts a reply into a review's thread
// POST /api/reviews/:review_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	reviewID := c.Param("review_id")

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(reviewID, req.ParentID, userID.(string), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound), errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrParentMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GetByID returns a single comment without its children
// GET /api/comments/:id
func (h *CommentHandler) GetByID(c *gin.Context) {
	comment, err := h.commentService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// GetDescendants returns the reply forest under a root comment, each
// node carrying its own children, ordered oldest first at every level
// GET /api/comments/:id/descendants
func (h *CommentHandler) GetDescendants(c *gin.Context) {
	descendants, err := h.commentService.GetDescendants(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, descendants)
}

// Update edits a comment's content
// PUT /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	role, _ := c.Get("role")

	var req dto.UpdateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Update(c.Param("id"), userID.(string), role.(string), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotCommentOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRootProtected):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Delete removes a comment and its entire subtree
// DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	role, _ := c.Get("role")

	if err := h.commentService.Delete(c.Param("id"), userID.(string), role.(string)); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotCommentOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRootProtected):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted successfully"})
}
