package services

import (
	"errors"
	"time"

	"github.com/dopeWeb/Library-Management-System-API/src/apperrors"
	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"gorm.io/gorm"
)

// LoanReceipt is returned to the API layer after a successful loan.
type LoanReceipt struct {
	BookID     int       `json:"bookId"`
	CustomerID int       `json:"customerId"`
	LoanDate   time.Time `json:"loanDate"`
	DueDate    time.Time `json:"dueDate"`
}

type LoanService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewLoanService creates a new instance of LoanService
func NewLoanService(db *gorm.DB) *LoanService {
	return &LoanService{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// GetAllLoans retrieves every loan record, active and closed alike
func (s *LoanService) GetAllLoans() ([]models.LoanModel, error) {
	var loans []models.LoanModel
	result := s.db.
		Preload("Customer").
		Preload("Book").
		Find(&loans)
	if result.Error != nil {
		return nil, apperrors.Wrap("failed to list loans", result.Error)
	}
	return loans, nil
}

// LoanBook opens a loan for a book/customer pair. A pair that has loaned
// this book before keeps its single row: the closed row is revived in place
// with a fresh loan date rather than inserting a duplicate.
//
// Reopening deliberately skips the active-loan quota check: the quota was
// respected when the pair first opened and revival does not count it again.
// A customer can therefore exceed the quota through reopens only.
func (s *LoanService) LoanBook(bookRef, customerRef string) (*LoanReceipt, error) {
	var receipt *LoanReceipt

	err := s.db.Transaction(func(tx *gorm.DB) error {
		book, err := findBookByRef(tx, bookRef)
		if err != nil {
			return err
		}
		if book.Deleted {
			return apperrors.New(apperrors.Gone, "Book has been removed from the catalog.")
		}

		customer, err := findCustomerByRef(tx, customerRef)
		if err != nil {
			return err
		}
		if customer.Deleted {
			return apperrors.New(apperrors.Gone, "Customer account has been removed.")
		}

		// A book can be out to at most one customer at a time.
		var otherActive int64
		result := tx.Model(&models.LoanModel{}).
			Where("book_id = ? AND cust_id <> ? AND status = ?", book.ID, customer.ID, models.LoanActive).
			Count(&otherActive)
		if result.Error != nil {
			return apperrors.Wrap("failed to check book availability", result.Error)
		}
		if otherActive > 0 {
			return apperrors.Newf(apperrors.Conflict, "Book '%s' is currently loaned out to another customer.", book.Name)
		}

		var existing models.LoanModel
		result = tx.Where("cust_id = ? AND book_id = ?", customer.ID, book.ID).First(&existing)
		reopen := false
		switch {
		case result.Error == nil:
			if existing.Status == models.LoanActive {
				return apperrors.Newf(apperrors.Conflict, "This book is currently loaned out to this customer '%s'.", customer.Email)
			}
			// Reopen: the closed row is revived, no quota re-check.
			reopen = true
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			var active int64
			countResult := tx.Model(&models.LoanModel{}).
				Where("cust_id = ? AND status = ?", customer.ID, models.LoanActive).
				Count(&active)
			if countResult.Error != nil {
				return apperrors.Wrap("failed to count active loans", countResult.Error)
			}
			if active >= 3 {
				return apperrors.New(apperrors.Conflict, "Customer cannot loan more than 3 books at the same time.")
			}
		default:
			return apperrors.Wrap("failed to look up loan", result.Error)
		}

		// A stored type outside the known set is a data-integrity fault.
		if !book.Type.Valid() {
			return apperrors.New(apperrors.Invalid, "Invalid book type.")
		}

		loanDate := s.now()
		dueDate := loanDate.Add(book.Type.LoanDuration())

		if reopen {
			updates := map[string]any{
				"status":      models.LoanActive,
				"loan_date":   loanDate,
				"return_date": nil,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return apperrors.Wrap("failed to reopen loan", err)
			}
		} else {
			loan := models.LoanModel{
				CustID:   customer.ID,
				BookID:   book.ID,
				LoanDate: loanDate,
				Status:   models.LoanActive,
			}
			if err := tx.Create(&loan).Error; err != nil {
				return apperrors.Wrap("failed to create loan", err)
			}
		}

		receipt = &LoanReceipt{
			BookID:     book.ID,
			CustomerID: customer.ID,
			LoanDate:   loanDate,
			DueDate:    dueDate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// ReturnBook closes the active loan for a book/customer pair. Deleted books
// and customers can still be returned so that history stays consistent.
func (s *LoanService) ReturnBook(bookRef, customerRef string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		book, err := findBookByRef(tx, bookRef)
		if err != nil {
			return err
		}
		customer, err := findCustomerByRef(tx, customerRef)
		if err != nil {
			return err
		}

		var loan models.LoanModel
		result := tx.Where("cust_id = ? AND book_id = ? AND status = ?",
			customer.ID, book.ID, models.LoanActive).First(&loan)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return apperrors.Newf(apperrors.NotFound,
					"No active loan found for customer '%s' and book '%s'.", customerRef, bookRef)
			}
			return apperrors.Wrap("failed to look up loan", result.Error)
		}

		returnDate := s.now()
		updates := map[string]any{
			"status":      models.LoanClosed,
			"return_date": returnDate,
		}
		if err := tx.Model(&loan).Updates(updates).Error; err != nil {
			return apperrors.Wrap("failed to return book", err)
		}
		return nil
	})
}
