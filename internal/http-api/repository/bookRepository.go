package repository

import (
	"fmt"

	"bookreview/internal/http-api/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	Create(book *models.Book) error
	Update(book *models.Book) error
	GetByID(id int64) (*models.Book, error)
	GetAllActive(page, pageSize int) ([]models.Book, int64, error)
	Search(query string, page, pageSize int) ([]models.Book, int64, error)
	FilterByAuthor(author string, page, pageSize int) ([]models.Book, int64, error)
	ActiveAuthors() ([]string, error)
	ExistsByTitle(title string) (bool, error)
	TitleTakenByOther(title string, id int64) (bool, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(book *models.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) Update(book *models.Book) error {
	if err := r.db.Save(book).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// GetByID retrieves a book regardless of its active flag; deactivated books
// stay reachable by id so their review history is not orphaned.
func (r *bookRepository) GetByID(id int64) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllActive returns active books ordered by title, paginated.
func (r *bookRepository) GetAllActive(page, pageSize int) ([]models.Book, int64, error) {
	return r.pageActive(r.db.Where("is_active = ?", true), page, pageSize)
}

// Search performs a case-insensitive substring match over title and author.
func (r *bookRepository) Search(query string, page, pageSize int) ([]models.Book, int64, error) {
	p := "%" + query + "%"
	db := r.db.Where("is_active = ? AND (title ILIKE ? OR author ILIKE ?)", true, p, p)
	return r.pageActive(db, page, pageSize)
}

// FilterByAuthor matches active books whose author contains the given substring.
func (r *bookRepository) FilterByAuthor(author string, page, pageSize int) ([]models.Book, int64, error) {
	db := r.db.Where("is_active = ? AND author ILIKE ?", true, "%"+author+"%")
	return r.pageActive(db, page, pageSize)
}

func (r *bookRepository) pageActive(db *gorm.DB, page, pageSize int) ([]models.Book, int64, error) {
	var books []models.Book
	var total int64

	if err := db.Model(&models.Book{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("LOWER(title) ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&books).Error; err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// ActiveAuthors returns the distinct authors of active books, sorted.
func (r *bookRepository) ActiveAuthors() ([]string, error) {
	var authors []string
	err := r.db.Model(&models.Book{}).
		Where("is_active = ? AND author <> ''", true).
		Distinct("author").
		Order("author ASC").
		Pluck("author", &authors).Error
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// ExistsByTitle reports whether an active book with the same title exists
// (case-insensitive). Deactivated titles may be reused.
func (r *bookRepository) ExistsByTitle(title string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Book{}).
		Where("is_active = ? AND LOWER(title) = LOWER(?)", true, title).
		Count(&count).Error
	return count > 0, err
}

// TitleTakenByOther reports whether an active book other than id holds the title.
func (r *bookRepository) TitleTakenByOther(title string, id int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Book{}).
		Where("is_active = ? AND LOWER(title) = LOWER(?) AND id <> ?", true, title, id).
		Count(&count).Error
	return count > 0, err
}
