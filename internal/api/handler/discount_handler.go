package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storehub/internal/api/dto"
	"storehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	discountService service.DiscountService
}

func NewDiscountHandler(discountService service.DiscountService) *DiscountHandler {
	return &DiscountHandler{
		discountService: discountService,
	}
}

// RegisterRoutes registers discount management routes
func (h *DiscountHandler) RegisterRoutes(router *gin.RouterGroup) {
	discounts := router.Group("/discounts")
	{
		discounts.GET("", h.List)
		discounts.POST("", h.Create)
		discounts.PUT("/:id", h.Update)
		discounts.DELETE("/:id", h.Delete)
	}
}

// List returns all discount codes
// GET /api/admin/discounts
func (h *DiscountHandler) List(c *gin.Context) {
	discounts, err := h.discountService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, discounts)
}

// Create adds a discount code
// POST /api/admin/discounts
func (h *DiscountHandler) Create(c *gin.Context) {
	var req dto.CreateDiscountDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	discount, err := h.discountService.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrDiscountCodeExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, discount)
}

// Update patches discount fields
// PUT /api/admin/discounts/:id
func (h *DiscountHandler) Update(c *gin.Context) {
	discountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount ID"})
		return
	}

	var req dto.UpdateDiscountDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	discount, err := h.discountService.Update(discountID, &req)
	if err != nil {
		if errors.Is(err, service.ErrDiscountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, discount)
}

// Delete removes a discount code
// DELETE /api/admin/discounts/:id
func (h *DiscountHandler) Delete(c *gin.Context) {
	discountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount ID"})
		return
	}

	if err := h.discountService.Delete(discountID); err != nil {
		if errors.Is(err, service.ErrDiscountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "discount deleted successfully"})
}
