package handler

import (
	"net/http"
	"strconv"

	"bookreview/internal/http-api/dto"
	"bookreview/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// BooksPerPage is the default listing page size.
const BooksPerPage = 9

type BookHandler struct {
	bookService   service.BookService
	reviewService service.ReviewService
}

func NewBookHandler(bookService service.BookService, reviewService service.ReviewService) *BookHandler {
	return &BookHandler{
		bookService:   bookService,
		reviewService: reviewService,
	}
}

// RegisterRoutes registers the public catalog routes. The book detail route
// runs behind optional auth so the viewer's liked flags can be resolved.
func (h *BookHandler) RegisterRoutes(public *gin.RouterGroup, admin *gin.RouterGroup) {
	public.GET("", h.List)
	public.GET("/authors", h.Authors)
	public.GET("/:id", h.GetByID)
	public.GET("/:id/reviews", h.ListReviews)

	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Deactivate)
}

// List returns active books paginated, optionally narrowed by a search query
// or an author filter
// GET /api/books?q=dune&author=herbert&page=1&page_size=9
func (h *BookHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	var (
		books *dto.PaginatedBookResponse
		err   error
	)
	if query := c.Query("q"); query != "" {
		books, err = h.bookService.Search(query, page, pageSize)
	} else if author := c.Query("author"); author != "" {
		books, err = h.bookService.FilterByAuthor(author, page, pageSize)
	} else {
		books, err = h.bookService.GetAll(page, pageSize)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

// Authors returns the distinct authors of active books
// GET /api/books/authors
func (h *BookHandler) Authors(c *gin.Context) {
	authors, err := h.bookService.Authors()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authors": authors})
}

// GetByID returns one book with its assembled reviews
// GET /api/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := h.bookService.GetByID(bookID)
	if err != nil {
		respondError(c, err)
		return
	}

	viewerID, _ := currentUserID(c)
	reviews, err := h.reviewService.GetReviewsForBook(bookID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookDetailResponse{
		Book:    *book,
		Reviews: reviews,
	})
}

// ListReviews returns the assembled reviews of a book
// GET /api/books/:id/reviews
func (h *BookHandler) ListReviews(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	viewerID, _ := currentUserID(c)
	reviews, err := h.reviewService.GetReviewsForBook(bookID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Create adds a book to the catalog (admin only)
// POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.bookService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

// Update edits a book (admin only)
// PUT /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var req dto.UpdateBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.bookService.Update(bookID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// Deactivate soft-deletes a book (admin only)
// DELETE /api/books/:id
func (h *BookHandler) Deactivate(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	if err := h.bookService.Deactivate(bookID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deactivated successfully"})
}

func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(BooksPerPage)))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = BooksPerPage
	}
	return page, pageSize
}
