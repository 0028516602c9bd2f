package models

import "time"

// Review is unique per (book, user): a user writes at most one review per book.
type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	BookID    int64     `json:"book_id" gorm:"not null;uniqueIndex:idx_reviews_book_user"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_book_user"`
	Text      string    `json:"text" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Book     Book      `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
