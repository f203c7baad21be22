package dto

import (
	"time"

	"storehub/internal/api/models"
)

type CreateSupplierDTO struct {
	Name    string  `json:"name" binding:"required,min=1,max=200"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	FeedURL *string `json:"feed_url,omitempty" binding:"omitempty,url"`
}

type UpdateSupplierDTO struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	FeedURL *string `json:"feed_url,omitempty" binding:"omitempty,url"`
	Active  *bool   `json:"active,omitempty"`
}

type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	FeedURL   *string   `json:"feed_url,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelToSupplierResponse(supplier *models.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Email:     supplier.Email,
		FeedURL:   supplier.FeedURL,
		Active:    supplier.Active,
		CreatedAt: supplier.CreatedAt,
	}
}
