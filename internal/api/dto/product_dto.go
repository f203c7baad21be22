package dto

import (
	"time"

	"storehub/internal/api/models"
)

type CreateProductDTO struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	PriceCents  int64   `json:"price_cents" binding:"required,min=0"`
	StockQty    int     `json:"stock_qty" binding:"min=0"`
	SupplierID  *int64  `json:"supplier_id,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Slug        *string `json:"slug,omitempty"`
}

type UpdateProductDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	SupplierID  *int64  `json:"supplier_id,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type ProductResponse struct {
	ID          int64      `json:"id"`
	Slug        *string    `json:"slug,omitempty"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	PriceCents  int64      `json:"price_cents"`
	StockQty    int        `json:"stock_qty"`
	SupplierID  *int64     `json:"supplier_id,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

func FromModelToProductResponse(product *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		Slug:        product.Slug,
		Name:        product.Name,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		StockQty:    product.StockQty,
		SupplierID:  product.SupplierID,
		ImageURL:    product.ImageURL,
		Active:      product.Active,
		CreatedAt:   product.CreatedAt,
	}
}

type PaginatedProductResponse struct {
	Data       []ProductResponse `json:"data"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}

func NewPaginatedProductResponse(data []ProductResponse, total, page, pageSize int) *PaginatedProductResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	return &PaginatedProductResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
