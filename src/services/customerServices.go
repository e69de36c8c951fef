package services

import (
	"errors"

	"github.com/dopeWeb/Library-Management-System-API/src/apperrors"
	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"gorm.io/gorm"
)

type CustomerService struct {
	db *gorm.DB
}

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// GetAllCustomers retrieves all non-deleted Customer records from the database
func (s *CustomerService) GetAllCustomers() ([]models.CustomerModel, error) {
	var customers []models.CustomerModel
	result := s.db.Where("deleted = ?", false).Find(&customers)
	if result.Error != nil {
		return nil, apperrors.Wrap("failed to list customers", result.Error)
	}
	return customers, nil
}

// CreateCustomer registers a new customer. Emails are unique across the
// whole table, deleted rows included; a soft-deleted account must be
// restored rather than re-registered.
func (s *CustomerService) CreateCustomer(customer *models.CustomerModel) (*models.CustomerModel, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CustomerModel
		result := tx.Where("email = ?", customer.Email).First(&existing)
		if result.Error == nil {
			return apperrors.New(apperrors.Conflict, "Customer with this email already exists.")
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return apperrors.Wrap("failed to check customer email", result.Error)
		}

		customer.Deleted = false
		if err := tx.Create(customer).Error; err != nil {
			return apperrors.Wrap("failed to create customer", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// RemoveCustomer soft-deletes a customer. Blocked while they hold any
// active loan; loan history stays intact.
func (s *CustomerService) RemoveCustomer(ref string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		customer, err := findCustomerByRef(tx, ref)
		if err != nil {
			return err
		}
		if customer.Deleted {
			return apperrors.New(apperrors.NotFound, "Customer not found.")
		}

		var active int64
		result := tx.Model(&models.LoanModel{}).
			Where("cust_id = ? AND status = ?", customer.ID, models.LoanActive).
			Count(&active)
		if result.Error != nil {
			return apperrors.Wrap("failed to check active loans", result.Error)
		}
		if active > 0 {
			return apperrors.New(apperrors.Locked, "Cannot remove customer. They have active loans.")
		}

		if err := tx.Model(customer).Update("deleted", true).Error; err != nil {
			return apperrors.Wrap("failed to remove customer", err)
		}
		return nil
	})
}

// RestoreCustomer clears the deleted flag on a soft-deleted customer
func (s *CustomerService) RestoreCustomer(ref string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		customer, err := findCustomerByRef(tx, ref)
		if err != nil {
			return err
		}
		if !customer.Deleted {
			return apperrors.New(apperrors.NotFound, "Deleted customer not found.")
		}

		if err := tx.Model(customer).Update("deleted", false).Error; err != nil {
			return apperrors.Wrap("failed to restore customer", err)
		}
		return nil
	})
}

// FindCustomersByName performs a case-insensitive search among non-deleted customers
func (s *CustomerService) FindCustomersByName(name string) ([]models.CustomerModel, error) {
	var customers []models.CustomerModel
	result := s.db.
		Where("LOWER(name) = LOWER(?) AND deleted = ?", name, false).
		Find(&customers)
	if result.Error != nil {
		return nil, apperrors.Wrap("failed to search customers", result.Error)
	}
	if len(customers) == 0 {
		return nil, apperrors.New(apperrors.NotFound, "No customers found with this name.")
	}
	return customers, nil
}

// GetCustomerID resolves a customer email to its primary key, deleted or not
func (s *CustomerService) GetCustomerID(email string) (int, error) {
	var customer models.CustomerModel
	result := s.db.Where("email = ?", email).First(&customer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, apperrors.New(apperrors.NotFound, "Customer not found.")
		}
		return 0, apperrors.Wrap("failed to look up customer", result.Error)
	}
	return customer.ID, nil
}
