package repository

import (
	"bookreview/internal/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(reviewID int64) error
	GetByID(reviewID int64) (*models.Review, error)
	FindByBookAndUser(bookID int64, userID string) (*models.Review, error)
	// FindByBookWithLikes loads the reviews of a book together with their
	// authors and like rows, newest review first. Comments are loaded by a
	// separate read (see CommentRepository.FindByBook) so that the two
	// multi-valued associations never join-multiply in one result set.
	FindByBookWithLikes(bookID int64) ([]models.Review, error)
	BookIDByReviewID(reviewID int64) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(reviewID int64) error {
	return r.db.Select("Comments", "Likes").Delete(&models.Review{ID: reviewID}).Error
}

// GetByID retrieves a review with its author.
func (r *reviewRepository) GetByID(reviewID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("id = ?", reviewID).
		Preload("User").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByBookAndUser(bookID int64, userID string) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("book_id = ? AND user_id = ?", bookID, userID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByBookWithLikes(bookID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("book_id = ?", bookID).
		Preload("User").
		Preload("Likes").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// BookIDByReviewID resolves the owning book without loading the whole row.
func (r *reviewRepository) BookIDByReviewID(reviewID int64) (int64, error) {
	var bookID int64
	err := r.db.Model(&models.Review{}).
		Where("id = ?", reviewID).
		Pluck("book_id", &bookID).Error
	if err != nil {
		return 0, err
	}
	if bookID == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return bookID, nil
}
