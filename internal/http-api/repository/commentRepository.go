package repository

import (
	"bookreview/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	Delete(commentID int64) error
	GetByIDWithUser(commentID int64) (*models.Comment, error)
	// FindByBook loads the comments of every review of a book together with
	// their authors, oldest first. This is the second half of the two-read
	// split used by review assembly.
	FindByBook(bookID int64) ([]models.Comment, error)
	ReviewIDByCommentID(commentID int64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Delete a comment by id; ownership checks belong to the service layer
func (r *commentRepository) Delete(commentID int64) error {
	result := r.db.Delete(&models.Comment{}, commentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByIDWithUser retrieves a comment with its author preloaded
func (r *commentRepository) GetByIDWithUser(commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).
		Preload("User").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindByBook(bookID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Joins("JOIN reviews ON reviews.id = comments.review_id").
		Where("reviews.book_id = ?", bookID).
		Preload("User").
		Order("comments.created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) ReviewIDByCommentID(commentID int64) (int64, error) {
	var reviewID int64
	err := r.db.Model(&models.Comment{}).
		Where("id = ?", commentID).
		Pluck("review_id", &reviewID).Error
	if err != nil {
		return 0, err
	}
	if reviewID == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return reviewID, nil
}
