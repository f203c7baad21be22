package models

import "time"

// StockMovement is one entry in a product's stock ledger: positive deltas
// for supplier deliveries and corrections, negative for order reservations.
type StockMovement struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID  int64     `json:"product_id" gorm:"not null;index"`
	SupplierID *int64    `json:"supplier_id,omitempty" gorm:"index"`
	Delta      int       `json:"delta" gorm:"not null"`
	Reason     string    `json:"reason" gorm:"not null"` // "delivery", "order", "correction"
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Product  *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
