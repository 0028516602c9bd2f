package handler

import (
	"net/http"
	"strconv"

	"bookreview/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterRoutes registers the like toggle; requires authentication.
func (h *LikeHandler) RegisterRoutes(reviews *gin.RouterGroup) {
	reviews.POST("/:id/like", h.Toggle)
}

// Toggle likes or unlikes a review and returns the resulting count
// POST /api/reviews/:id/like
func (h *LikeHandler) Toggle(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result, err := h.likeService.ToggleLike(reviewID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
