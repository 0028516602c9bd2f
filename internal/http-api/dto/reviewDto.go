package dto

import (
	"time"

	"bookreview/internal/http-api/models"
)

// CreateReviewDTO for posting a review on a book
type CreateReviewDTO struct {
	Text string `json:"text" binding:"required,min=1,max=5000"`
}

// UpdateReviewDTO for editing a review
type UpdateReviewDTO struct {
	Text string `json:"text" binding:"required,min=1,max=5000"`
}

// ReviewResponse is the assembled presentation object: review text and author
// enriched with like count, whether the current viewer liked it, and its
// comments oldest-first.
type ReviewResponse struct {
	ID        int64             `json:"id"`
	BookID    int64             `json:"book_id"`
	Username  string            `json:"username"`
	Text      string            `json:"text"`
	LikeCount int               `json:"like_count"`
	Liked     bool              `json:"liked"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// FromModelToReviewResponse converts a Review (with User and Likes loaded) to
// its response form. Comments and the viewer flag are merged in by the service.
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		BookID:    review.BookID,
		Username:  review.User.Username,
		Text:      review.Text,
		LikeCount: len(review.Likes),
		Comments:  []CommentResponse{},
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// LikeResponse reports the resulting state after a like toggle.
type LikeResponse struct {
	ReviewID  int64 `json:"review_id"`
	LikeCount int64 `json:"like_count"`
	Liked     bool  `json:"liked"`
}
