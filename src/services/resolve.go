package services

import (
	"errors"
	"strconv"

	"github.com/dopeWeb/Library-Management-System-API/src/apperrors"
	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"gorm.io/gorm"
)

// Entity references arrive from the API layer as a single string and resolve
// by natural key first (book name, customer email), then by primary key when
// the ref is numeric. Natural key wins so that a book titled "1984" is not
// mistaken for the row with id 1984.

func findBookByRef(tx *gorm.DB, ref string) (*models.BookModel, error) {
	var book models.BookModel

	result := tx.Where("name = ?", ref).First(&book)
	if result.Error == nil {
		return &book, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap("failed to look up book", result.Error)
	}

	if id, err := strconv.Atoi(ref); err == nil {
		result = tx.First(&book, id)
		if result.Error == nil {
			return &book, nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap("failed to look up book", result.Error)
		}
	}

	return nil, apperrors.New(apperrors.NotFound, "Book not found.")
}

func findCustomerByRef(tx *gorm.DB, ref string) (*models.CustomerModel, error) {
	var customer models.CustomerModel

	result := tx.Where("email = ?", ref).First(&customer)
	if result.Error == nil {
		return &customer, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap("failed to look up customer", result.Error)
	}

	if id, err := strconv.Atoi(ref); err == nil {
		result = tx.First(&customer, id)
		if result.Error == nil {
			return &customer, nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap("failed to look up customer", result.Error)
		}
	}

	return nil, apperrors.New(apperrors.NotFound, "Customer not found.")
}
