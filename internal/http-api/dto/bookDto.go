package dto

import (
	"time"

	"bookreview/internal/http-api/models"
)

// CreateBookDTO used for POST /api/books
type CreateBookDTO struct {
	Title       string `json:"title" binding:"required,max=255"`
	Author      string `json:"author" binding:"required,max=255"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
	FileURL     string `json:"file_url"`
}

// UpdateBookDTO used for PUT /api/books/:id
type UpdateBookDTO struct {
	Title       string `json:"title" binding:"required,max=255"`
	Author      string `json:"author" binding:"required,max=255"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
	FileURL     string `json:"file_url"`
}

// BookResponse DTO for responses
type BookResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description,omitempty"`
	CoverURL    string    `json:"cover_url"`
	FileURL     string    `json:"file_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Converters
func (d CreateBookDTO) ToModel() models.Book {
	return models.Book{
		Title:       d.Title,
		Author:      d.Author,
		Description: d.Description,
		CoverURL:    d.CoverURL,
		FileURL:     d.FileURL,
	}
}

func FromModelToBookResponse(b *models.Book) BookResponse {
	return BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		CoverURL:    b.CoverURL,
		FileURL:     b.FileURL,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
	}
}

// PaginatedBookResponse for returning paginated book listings
type PaginatedBookResponse struct {
	Data       []BookResponse `json:"data"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}

// NewPaginatedBookResponse creates a paginated book response
func NewPaginatedBookResponse(data []BookResponse, total, page, pageSize int) *PaginatedBookResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedBookResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// BookDetailResponse is the single-book view: the book plus its assembled reviews.
type BookDetailResponse struct {
	Book    BookResponse     `json:"book"`
	Reviews []ReviewResponse `json:"reviews"`
}
