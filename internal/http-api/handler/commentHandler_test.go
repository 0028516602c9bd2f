package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookreview/internal/http-api/dto"
	"bookreview/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCommentRouter(commentService *MockCommentService, userID string) *gin.Engine {
	h := NewCommentHandler(commentService)
	r := gin.New()
	reviews := r.Group("/api/reviews", asUser(userID))
	comments := r.Group("/api/comments", asUser(userID))
	h.RegisterRoutes(reviews, comments)
	return r
}

func TestCreateComment_Success(t *testing.T) {
	commentService := new(MockCommentService)
	r := setupCommentRouter(commentService, "user-1")

	commentService.On("AddComment", int64(10), "user-1", "nice take").Return(&dto.CommentResponse{
		ID:       20,
		Username: "alice",
		Text:     "nice take",
	}, nil)

	w := postJSON(r, "/api/reviews/10/comments", dto.CreateCommentDTO{Text: "nice take"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "nice take")
}

func TestCreateComment_ReviewMissing(t *testing.T) {
	commentService := new(MockCommentService)
	r := setupCommentRouter(commentService, "user-1")

	commentService.On("AddComment", int64(99), "user-1", "hello").Return(nil, service.ErrReviewNotFound)

	w := postJSON(r, "/api/reviews/99/comments", dto.CreateCommentDTO{Text: "hello"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateComment_Unauthenticated(t *testing.T) {
	commentService := new(MockCommentService)
	r := setupCommentRouter(commentService, "")

	w := postJSON(r, "/api/reviews/10/comments", dto.CreateCommentDTO{Text: "hello"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	commentService.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteComment_ReportsOrigin(t *testing.T) {
	commentService := new(MockCommentService)
	r := setupCommentRouter(commentService, "user-1")

	commentService.On("DeleteComment", int64(20), "user-1").Return(&dto.DeletedCommentResponse{
		ReviewID: 10,
		BookID:   3,
	}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/20", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.DeletedCommentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(10), body.ReviewID)
	assert.Equal(t, int64(3), body.BookID)
}

func TestDeleteComment_Forbidden(t *testing.T) {
	commentService := new(MockCommentService)
	r := setupCommentRouter(commentService, "user-2")

	commentService.On("DeleteComment", int64(20), "user-2").Return(nil, service.ErrNotCommentOwner)

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/20", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
