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
	ErrCommentNotFound  = apperr.NotFound("comment not found")
	ErrEmptyCommentText = apperr.BusinessRule("comment text cannot be empty")
	ErrNotCommentOwner  = apperr.Forbidden("you don't have permission to delete this comment")
)

type CommentService interface {
	AddComment(reviewID int64, userID, text string) (*dto.CommentResponse, error)
	// DeleteComment removes a comment; the owning review and book ids are
	// looked up before deletion so callers can redirect after the row is gone.
	DeleteComment(commentID int64, userID string) (*dto.DeletedCommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
	}
}

// AddComment creates a new comment on a review
func (s *commentService) AddComment(reviewID int64, userID, text string) (*dto.CommentResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyCommentText
	}

	if _, err := s.reviewRepo.GetByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		ReviewID: reviewID,
		UserID:   userID,
		Text:     text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// Reload with author data
	comment, err := s.commentRepo.GetByIDWithUser(comment.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// DeleteComment deletes a comment if the actor is its author or an admin.
func (s *commentService) DeleteComment(commentID int64, userID string) (*dto.DeletedCommentResponse, error) {
	comment, err := s.commentRepo.GetByIDWithUser(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
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

	if !actor.CanModify(comment.UserID) {
		return nil, ErrNotCommentOwner
	}

	// Resolve the redirect target before the row disappears.
	bookID, err := s.reviewRepo.BookIDByReviewID(comment.ReviewID)
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return nil, err
	}

	return &dto.DeletedCommentResponse{
		ReviewID: comment.ReviewID,
		BookID:   bookID,
	}, nil
}
