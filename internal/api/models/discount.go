package models

import "time"

type Discount struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Code      string     `json:"code" gorm:"uniqueIndex;not null"`
	Percent   int        `json:"percent" gorm:"not null;check:percent >= 1 AND percent <= 90"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	Active    bool       `json:"active" gorm:"default:true;not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (Discount) TableName() string {
	return "discounts"
}

// CurrentlyValid reports whether the discount can be applied at the given time.
func (d *Discount) CurrentlyValid(now time.Time) bool {
	if !d.Active {
		return false
	}
	if d.StartsAt != nil && now.Before(*d.StartsAt) {
		return false
	}
	if d.EndsAt != nil && now.After(*d.EndsAt) {
		return false
	}
	return true
}
