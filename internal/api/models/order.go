package models

import "time"

type Order struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Status     string    `json:"status" gorm:"default:'pending';not null"` // pending, paid, shipped, cancelled
	TotalCents int64     `json:"total_cents" gorm:"not null"`
	DiscountID *int64    `json:"discount_id,omitempty" gorm:"index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User     *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Discount *Discount   `json:"discount,omitempty" gorm:"foreignKey:DiscountID"`
	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID             int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID        int64 `json:"order_id" gorm:"not null;index"`
	ProductID      int64 `json:"product_id" gorm:"not null;index"`
	Quantity       int   `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPriceCents int64 `json:"unit_price_cents" gorm:"not null"`

	// Associations
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
