package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a customer's rating of a product. Its text lives in the root
// comment of the review's discussion thread (RootCommentID), so the comment
// workflow and the review workflow stay separate surfaces over one tree.
type Review struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProductID     int64     `json:"product_id" gorm:"not null;index"`
	UserID        string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Rating        int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	RootCommentID string    `json:"root_comment_id" gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
}

func (review *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	return
}

func (Review) TableName() string {
	return "reviews"
}
