package service

import (
	"errors"
	"strings"

	"bookreview/internal/apperr"
	"bookreview/internal/http-api/dto"
	"bookreview/internal/http-api/models"
	"bookreview/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = apperr.NotFound("review not found")
	ErrUserNotFound    = apperr.NotFound("user not found")
	ErrDuplicateReview = apperr.BusinessRule("you have already reviewed this book")
	ErrEmptyReviewText = apperr.BusinessRule("review text cannot be empty")
	ErrNotReviewOwner  = apperr.Forbidden("you don't have permission to modify this review")
)

type ReviewService interface {
	// GetReviewsForBook assembles the presentation objects for a book's
	// reviews. viewerID may be empty for anonymous readers.
	GetReviewsForBook(bookID int64, viewerID string) ([]dto.ReviewResponse, error)
	AddReview(bookID int64, userID, text string) (*dto.ReviewResponse, error)
	UpdateReview(reviewID int64, userID, text string) (*dto.ReviewResponse, error)
	// DeleteReview removes a review and returns the owning book id so the
	// caller can redirect to the book page.
	DeleteReview(reviewID int64, userID string) (int64, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	commentRepo repository.CommentRepository
	bookRepo    repository.BookRepository
	userRepo    repository.UserRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	commentRepo repository.CommentRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		bookRepo:    bookRepo,
		userRepo:    userRepo,
	}
}

// GetReviewsForBook merges two independent reads by review id: one carrying
// authors and likes, one carrying comments with their authors. Loading both
// multi-valued associations in a single fetch would multiply rows, so the
// split is deliberate. Reviews come back newest first, comments oldest first.
func (s *reviewService) GetReviewsForBook(bookID int64, viewerID string) ([]dto.ReviewResponse, error) {
	if _, err := s.bookRepo.GetByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByBookWithLikes(bookID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByBook(bookID)
	if err != nil {
		return nil, err
	}

	commentsByReview := make(map[int64][]dto.CommentResponse, len(reviews))
	for i := range comments {
		c := dto.FromModelToCommentResponse(&comments[i])
		commentsByReview[comments[i].ReviewID] = append(commentsByReview[comments[i].ReviewID], *c)
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		review := &reviews[i]
		resp := dto.FromModelToReviewResponse(review)
		if viewerID != "" {
			for _, like := range review.Likes {
				if like.UserID == viewerID {
					resp.Liked = true
					break
				}
			}
		}
		if merged, ok := commentsByReview[review.ID]; ok {
			resp.Comments = merged
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}

// AddReview creates a review; at most one per (book, user).
func (s *reviewService) AddReview(bookID int64, userID, text string) (*dto.ReviewResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReviewText
	}

	if _, err := s.bookRepo.GetByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.reviewRepo.FindByBookAndUser(bookID, userID); err == nil {
		return nil, ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &models.Review{
		BookID: bookID,
		UserID: userID,
		Text:   text,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		// The (book_id, user_id) unique index catches a race past the lookup.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	// Reload with author data
	review, err := s.reviewRepo.GetByID(review.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

// UpdateReview edits the text; allowed for the author or an admin.
func (s *reviewService) UpdateReview(reviewID int64, userID, text string) (*dto.ReviewResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReviewText
	}

	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	actor, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !actor.CanModify(review.UserID) {
		return nil, ErrNotReviewOwner
	}

	review.Text = text
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	review, err = s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) DeleteReview(reviewID int64, userID string) (int64, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrReviewNotFound
		}
		return 0, err
	}

	actor, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	if !actor.CanModify(review.UserID) {
		return 0, ErrNotReviewOwner
	}

	bookID := review.BookID
	if err := s.reviewRepo.Delete(reviewID); err != nil {
		return 0, err
	}
	return bookID, nil
}
