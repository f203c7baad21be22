package models

import "time"

type Supplier struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Email     *string   `json:"email,omitempty"`
	FeedURL   *string   `json:"feed_url,omitempty"` // catalog feed consumed by cmd/supplier-sync
	Active    bool      `json:"active" gorm:"default:true;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
