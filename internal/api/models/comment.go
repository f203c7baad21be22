package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a node in a review's discussion thread. The root comment of a
// thread has a nil ParentID and carries the review's original text; replies
// chain to it through ParentID.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ReviewID  string    `json:"review_id" gorm:"type:uuid;not null;index"`
	ParentID  *string   `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (comment *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	return
}

func (Comment) TableName() string {
	return "comments"
}
