package service

import (
	"errors"
	"net/url"
	"strings"

	"bookreview/internal/apperr"
	"bookreview/internal/http-api/dto"
	"bookreview/internal/http-api/models"
	"bookreview/internal/http-api/repository"

	"gorm.io/gorm"
)

// DefaultCoverURL is substituted whenever a book has no cover of its own.
const DefaultCoverURL = "https://i.pinimg.com/736x/69/e8/c8/69e8c85300a6d61b2b188930b4f2881b.jpg"

var (
	ErrBookNotFound   = apperr.NotFound("book not found")
	ErrDuplicateTitle = apperr.BusinessRule("a book with this title already exists")
)

type BookService interface {
	GetAll(page, pageSize int) (*dto.PaginatedBookResponse, error)
	Search(query string, page, pageSize int) (*dto.PaginatedBookResponse, error)
	FilterByAuthor(author string, page, pageSize int) (*dto.PaginatedBookResponse, error)
	GetByID(id int64) (*dto.BookResponse, error)
	Authors() ([]string, error)
	Create(req dto.CreateBookDTO) (*dto.BookResponse, error)
	Update(id int64, req dto.UpdateBookDTO) (*dto.BookResponse, error)
	Deactivate(id int64) error
}

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) GetAll(page, pageSize int) (*dto.PaginatedBookResponse, error) {
	books, total, err := s.bookRepo.GetAllActive(page, pageSize)
	if err != nil {
		return nil, err
	}
	return s.toPaginated(books, total, page, pageSize), nil
}

// Search falls back to the plain listing when the query is blank.
func (s *bookService) Search(query string, page, pageSize int) (*dto.PaginatedBookResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetAll(page, pageSize)
	}
	books, total, err := s.bookRepo.Search(query, page, pageSize)
	if err != nil {
		return nil, err
	}
	return s.toPaginated(books, total, page, pageSize), nil
}

func (s *bookService) FilterByAuthor(author string, page, pageSize int) (*dto.PaginatedBookResponse, error) {
	author = strings.TrimSpace(author)
	if author == "" || author == "all" {
		return s.GetAll(page, pageSize)
	}
	books, total, err := s.bookRepo.FilterByAuthor(author, page, pageSize)
	if err != nil {
		return nil, err
	}
	return s.toPaginated(books, total, page, pageSize), nil
}

func (s *bookService) GetByID(id int64) (*dto.BookResponse, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	resp := dto.FromModelToBookResponse(book)
	setDefaultCoverIfNeeded(&resp)
	if !isValidFileURL(resp.FileURL) {
		resp.FileURL = ""
	}
	return &resp, nil
}

func (s *bookService) Authors() ([]string, error) {
	return s.bookRepo.ActiveAuthors()
}

func (s *bookService) Create(req dto.CreateBookDTO) (*dto.BookResponse, error) {
	exists, err := s.bookRepo.ExistsByTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateTitle
	}

	book := req.ToModel()
	book.IsActive = true
	if strings.TrimSpace(book.CoverURL) == "" {
		book.CoverURL = DefaultCoverURL
	}
	if err := s.bookRepo.Create(&book); err != nil {
		return nil, err
	}

	resp := dto.FromModelToBookResponse(&book)
	return &resp, nil
}

func (s *bookService) Update(id int64, req dto.UpdateBookDTO) (*dto.BookResponse, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	taken, err := s.bookRepo.TitleTakenByOther(req.Title, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateTitle
	}

	book.Title = req.Title
	book.Author = req.Author
	book.Description = req.Description
	book.FileURL = req.FileURL
	book.CoverURL = req.CoverURL
	if strings.TrimSpace(book.CoverURL) == "" {
		book.CoverURL = DefaultCoverURL
	}

	if err := s.bookRepo.Update(book); err != nil {
		return nil, err
	}

	resp := dto.FromModelToBookResponse(book)
	return &resp, nil
}

// Deactivate soft-deletes a book. One-way: there is no reactivate operation.
func (s *bookService) Deactivate(id int64) error {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	book.IsActive = false
	return s.bookRepo.Update(book)
}

func (s *bookService) toPaginated(books []models.Book, total int64, page, pageSize int) *dto.PaginatedBookResponse {
	responses := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		resp := dto.FromModelToBookResponse(&books[i])
		setDefaultCoverIfNeeded(&resp)
		responses = append(responses, resp)
	}
	return dto.NewPaginatedBookResponse(responses, int(total), page, pageSize)
}

func setDefaultCoverIfNeeded(book *dto.BookResponse) {
	if strings.TrimSpace(book.CoverURL) == "" {
		book.CoverURL = DefaultCoverURL
	}
}

// isValidFileURL accepts absolute http(s) URLs and rejects the legacy
// "/books/" placeholder some records carry.
func isValidFileURL(fileURL string) bool {
	fileURL = strings.TrimSpace(fileURL)
	if fileURL == "" || fileURL == "/books/" {
		return false
	}
	u, err := url.Parse(fileURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
