package services

import (
	"errors"

	"github.com/dopeWeb/Library-Management-System-API/src/apperrors"
	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"gorm.io/gorm"
)

type BookService struct {
	db *gorm.DB
}

// NewBookService creates a new instance of BookService
func NewBookService(db *gorm.DB) *BookService {
	return &BookService{db: db}
}

// GetAllBooks retrieves all non-deleted Book records from the database
func (s *BookService) GetAllBooks() ([]models.BookModel, error) {
	var books []models.BookModel
	result := s.db.Where("deleted = ?", false).Find(&books)
	if result.Error != nil {
		return nil, apperrors.Wrap("failed to list books", result.Error)
	}
	return books, nil
}

// CreateBook adds a new book to the catalog. Names are unique across the
// whole table, deleted rows included; a soft-deleted namesake must be
// restored rather than re-added.
func (s *BookService) CreateBook(book *models.BookModel) (*models.BookModel, error) {
	if !book.Type.Valid() {
		return nil, apperrors.New(apperrors.Invalid, "Invalid book type.")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.BookModel
		result := tx.Where("name = ?", book.Name).First(&existing)
		if result.Error == nil {
			return apperrors.New(apperrors.Conflict, "Book with this name already exists.")
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return apperrors.Wrap("failed to check book name", result.Error)
		}

		book.Deleted = false
		if err := tx.Create(book).Error; err != nil {
			return apperrors.Wrap("failed to create book", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// RemoveBook soft-deletes a book. The row is never erased so that loan
// history stays intact; a book with an active loan cannot be removed.
func (s *BookService) RemoveBook(ref string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		book, err := findBookByRef(tx, ref)
		if err != nil {
			return err
		}
		if book.Deleted {
			return apperrors.New(apperrors.NotFound, "Book not found.")
		}

		var active int64
		result := tx.Model(&models.LoanModel{}).
			Where("book_id = ? AND status = ?", book.ID, models.LoanActive).
			Count(&active)
		if result.Error != nil {
			return apperrors.Wrap("failed to check active loans", result.Error)
		}
		if active > 0 {
			return apperrors.New(apperrors.Locked, "Cannot remove book. It is currently loaned out.")
		}

		if err := tx.Model(book).Update("deleted", true).Error; err != nil {
			return apperrors.Wrap("failed to remove book", err)
		}
		return nil
	})
}

// RestoreBook clears the deleted flag on a soft-deleted book. Loan rows are
// governed by the loan lifecycle and are not touched.
func (s *BookService) RestoreBook(ref string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		book, err := findBookByRef(tx, ref)
		if err != nil {
			return err
		}
		if !book.Deleted {
			return apperrors.New(apperrors.NotFound, "Deleted book not found.")
		}

		if err := tx.Model(book).Update("deleted", false).Error; err != nil {
			return apperrors.Wrap("failed to restore book", err)
		}
		return nil
	})
}

// FindBooksByName performs a case-insensitive search among non-deleted books
func (s *BookService) FindBooksByName(name string) ([]models.BookModel, error) {
	var books []models.BookModel
	result := s.db.
		Where("LOWER(name) = LOWER(?) AND deleted = ?", name, false).
		Find(&books)
	if result.Error != nil {
		return nil, apperrors.Wrap("failed to search books", result.Error)
	}
	if len(books) == 0 {
		return nil, apperrors.New(apperrors.NotFound, "No books found with this name.")
	}
	return books, nil
}

// GetBookID resolves a book name to its primary key, deleted or not
func (s *BookService) GetBookID(name string) (int, error) {
	var book models.BookModel
	result := s.db.Where("name = ?", name).First(&book)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, apperrors.New(apperrors.NotFound, "Book not found.")
		}
		return 0, apperrors.Wrap("failed to look up book", result.Error)
	}
	return book.ID, nil
}
