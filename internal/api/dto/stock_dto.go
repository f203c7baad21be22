package dto

import (
	"time"

	"storehub/internal/api/models"
)

// RecordStockDTO registers a delivery or correction for a product.
type RecordStockDTO struct {
	Delta      int    `json:"delta" binding:"required"`
	Reason     string `json:"reason" binding:"required,oneof=delivery order correction"`
	SupplierID *int64 `json:"supplier_id,omitempty"`
}

type StockMovementResponse struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	SupplierID *int64    `json:"supplier_id,omitempty"`
	Delta      int       `json:"delta"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromModelToStockMovementResponse(movement *models.StockMovement) *StockMovementResponse {
	return &StockMovementResponse{
		ID:         movement.ID,
		ProductID:  movement.ProductID,
		SupplierID: movement.SupplierID,
		Delta:      movement.Delta,
		Reason:     movement.Reason,
		CreatedAt:  movement.CreatedAt,
	}
}

type PaginatedStockMovementResponse struct {
	Data       []StockMovementResponse `json:"data"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	Total      int                     `json:"total"`
	TotalPages int                     `json:"total_pages"`
}

func NewPaginatedStockMovementResponse(data []StockMovementResponse, total, page, pageSize int) *PaginatedStockMovementResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	return &PaginatedStockMovementResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
