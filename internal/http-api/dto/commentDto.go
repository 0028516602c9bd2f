package dto

import (
	"time"

	"bookreview/internal/http-api/models"
)

// CreateCommentDTO for creating a comment on a review
type CreateCommentDTO struct {
	Text string `json:"text" binding:"required,min=1,max=5000"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		Username:  comment.User.Username,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// DeletedCommentResponse tells the caller where the comment lived so it can
// redirect appropriately after the row is gone.
type DeletedCommentResponse struct {
	ReviewID int64 `json:"review_id"`
	BookID   int64 `json:"book_id"`
}
