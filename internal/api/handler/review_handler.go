package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storehub/internal/api/dto"
	"storehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RegisterPublicRoutes registers read-only review routes
func (h *ReviewHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/products/:id/reviews", h.ListByProduct)
	router.GET("/reviews/:id", h.GetByID)
}

// RegisterRoutes registers authenticated review routes
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/products/:id/reviews", h.Create)
}

// Create posts a review for a product. The review's text becomes the
// root comment of its thread.
// POST /api/products/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Create(productID, userID.(string), req.Rating, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetByID returns a single review
// GET /api/reviews/:id
func (h *ReviewHandler) GetByID(c *gin.Context) {
	review, err := h.reviewService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, review)
}

// ListByProduct returns a page of reviews for a product
// GET /api/products/:id/reviews?page=1&page_size=20
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	page, pageSize := pageParams(c)

	reviews, err := h.reviewService.ListByProduct(productID, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
