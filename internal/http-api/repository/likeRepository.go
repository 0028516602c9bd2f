package repository

import (
	"bookreview/internal/http-api/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(like *models.Like) error
	Delete(likeID int64) error
	FindByUserAndReview(userID string, reviewID int64) (*models.Like, error)
	CountByReview(reviewID int64) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) Delete(likeID int64) error {
	return r.db.Delete(&models.Like{}, likeID).Error
}

func (r *likeRepository) FindByUserAndReview(userID string, reviewID int64) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND review_id = ?", userID, reviewID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) CountByReview(reviewID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("review_id = ?", reviewID).Count(&count).Error
	return count, err
}
