package handler

import (
	"bookreview/internal/http-api/dto"
	"bookreview/internal/http-api/models"
	"bookreview/internal/http-api/service"

	"github.com/stretchr/testify/mock"
)

// Service mocks shared by the handler tests.

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(username, email, password, confirmPassword string) (*models.User, error) {
	args := m.Called(username, email, password, confirmPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(username, password string) (string, string, *models.User, error) {
	args := m.Called(username, password)
	if args.Get(2) == nil {
		return "", "", nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) RevokeToken(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) GetAll(page, pageSize int) (*dto.PaginatedBookResponse, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedBookResponse), args.Error(1)
}

func (m *MockBookService) Search(query string, page, pageSize int) (*dto.PaginatedBookResponse, error) {
	args := m.Called(query, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedBookResponse), args.Error(1)
}

func (m *MockBookService) FilterByAuthor(author string, page, pageSize int) (*dto.PaginatedBookResponse, error) {
	args := m.Called(author, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedBookResponse), args.Error(1)
}

func (m *MockBookService) GetByID(id int64) (*dto.BookResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookResponse), args.Error(1)
}

func (m *MockBookService) Authors() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookService) Create(req dto.CreateBookDTO) (*dto.BookResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookResponse), args.Error(1)
}

func (m *MockBookService) Update(id int64, req dto.UpdateBookDTO) (*dto.BookResponse, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookResponse), args.Error(1)
}

func (m *MockBookService) Deactivate(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) GetReviewsForBook(bookID int64, viewerID string) ([]dto.ReviewResponse, error) {
	args := m.Called(bookID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) AddReview(bookID int64, userID, text string) (*dto.ReviewResponse, error) {
	args := m.Called(bookID, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) UpdateReview(reviewID int64, userID, text string) (*dto.ReviewResponse, error) {
	args := m.Called(reviewID, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) DeleteReview(reviewID int64, userID string) (int64, error) {
	args := m.Called(reviewID, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) AddComment(reviewID int64, userID, text string) (*dto.CommentResponse, error) {
	args := m.Called(reviewID, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) DeleteComment(commentID int64, userID string) (*dto.DeletedCommentResponse, error) {
	args := m.Called(commentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeletedCommentResponse), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) ToggleLike(reviewID int64, userID string) (*dto.LikeResponse, error) {
	args := m.Called(reviewID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LikeResponse), args.Error(1)
}
