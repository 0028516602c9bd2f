package service

import (
	"errors"

	"bookreview/internal/apperr"
	"bookreview/internal/http-api/dto"
	"bookreview/internal/http-api/models"
	"bookreview/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrSelfLike = apperr.BusinessRule("you cannot like your own review")

type LikeService interface {
	// ToggleLike creates a like if absent, removes it if present, and returns
	// the resulting like count for the review.
	ToggleLike(reviewID int64, userID string) (*dto.LikeResponse, error)
}

type likeService struct {
	likeRepo   repository.LikeRepository
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
) LikeService {
	return &likeService{
		likeRepo:   likeRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

func (s *likeService) ToggleLike(reviewID int64, userID string) (*dto.LikeResponse, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
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

	// Self-like is rejected before any toggle happens.
	if review.UserID == userID {
		return nil, ErrSelfLike
	}

	liked := false
	existing, err := s.likeRepo.FindByUserAndReview(userID, reviewID)
	switch {
	case err == nil:
		if err := s.likeRepo.Delete(existing.ID); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := &models.Like{ReviewID: reviewID, UserID: userID}
		if err := s.likeRepo.Create(like); err != nil {
			// A concurrent toggle already created the row; the unique index
			// on (user_id, review_id) is the authoritative guard. Treat it as
			// liked and fall through to the recount.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, err
			}
		}
		liked = true
	default:
		return nil, err
	}

	count, err := s.likeRepo.CountByReview(reviewID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeResponse{
		ReviewID:  reviewID,
		LikeCount: count,
		Liked:     liked,
	}, nil
}
