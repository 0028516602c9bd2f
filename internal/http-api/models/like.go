package models

import "time"

// Like is unique per (user, review). The composite index is the authoritative
// guard against duplicate likes under concurrent toggles.
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ReviewID  int64     `json:"review_id" gorm:"not null;uniqueIndex:idx_likes_user_review"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_review"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Review Review `json:"review,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
}

func (Like) TableName() string {
	return "likes"
}
