package models

import "time"

type Book struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Author      string    `json:"author" gorm:"not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	CoverURL    string    `json:"cover_url"`
	FileURL     string    `json:"file_url"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;"`
}

func (Book) TableName() string {
	return "books"
}
