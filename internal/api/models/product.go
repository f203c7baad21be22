package models

import "time"

type Product struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug        *string    `json:"slug,omitempty" gorm:"uniqueIndex;size:200"`
	Name        string     `json:"name" gorm:"not null"`
	Description *string    `json:"description,omitempty"`
	PriceCents  int64      `json:"price_cents" gorm:"not null;check:price_cents >= 0"`
	StockQty    int        `json:"stock_qty" gorm:"default:0;not null"`
	SupplierID  *int64     `json:"supplier_id,omitempty" gorm:"index"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Active      bool       `json:"active" gorm:"default:true;not null"`
	CreatedAt   *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime"`

	// Associations
	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

func (Product) TableName() string {
	return "products"
}
