package dto

import (
	"time"

	"storehub/internal/api/models"
)

type CreateDiscountDTO struct {
	Code     string     `json:"code" binding:"required,min=3,max=40"`
	Percent  int        `json:"percent" binding:"required,min=1,max=90"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

type UpdateDiscountDTO struct {
	Percent  *int       `json:"percent,omitempty" binding:"omitempty,min=1,max=90"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	Active   *bool      `json:"active,omitempty"`
}

type DiscountResponse struct {
	ID        int64      `json:"id"`
	Code      string     `json:"code"`
	Percent   int        `json:"percent"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromModelToDiscountResponse(discount *models.Discount) *DiscountResponse {
	return &DiscountResponse{
		ID:        discount.ID,
		Code:      discount.Code,
		Percent:   discount.Percent,
		StartsAt:  discount.StartsAt,
		EndsAt:    discount.EndsAt,
		Active:    discount.Active,
		CreatedAt: discount.CreatedAt,
	}
}
