package dto

import (
	"time"

	"storehub/internal/api/models"
)

type OrderItemDTO struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type CreateOrderDTO struct {
	Items        []OrderItemDTO `json:"items" binding:"required,min=1,dive"`
	DiscountCode *string        `json:"discount_code,omitempty"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=pending paid shipped cancelled"`
}

type OrderItemResponse struct {
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type OrderResponse struct {
	ID         int64               `json:"id"`
	UserID     string              `json:"user_id"`
	Status     string              `json:"status"`
	TotalCents int64               `json:"total_cents"`
	DiscountID *int64              `json:"discount_id,omitempty"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
}

func FromModelToOrderResponse(order *models.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		resp := OrderItemResponse{
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		}
		if item.Product != nil {
			resp.ProductName = item.Product.Name
		}
		items = append(items, resp)
	}
	return &OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		TotalCents: order.TotalCents,
		DiscountID: order.DiscountID,
		Items:      items,
		CreatedAt:  order.CreatedAt,
	}
}

type PaginatedOrderResponse struct {
	Data       []OrderResponse `json:"data"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
}

func NewPaginatedOrderResponse(data []OrderResponse, total, page, pageSize int) *PaginatedOrderResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	return &PaginatedOrderResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
