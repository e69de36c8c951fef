package services

import (
	"sort"
	"time"

	"github.com/dopeWeb/Library-Management-System-API/src/apperrors"
	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"gorm.io/gorm"
)

// OverdueLoan is one loan past its due date, joined to its book and customer.
type OverdueLoan struct {
	BookID       int       `json:"book_id"`
	BookName     string    `json:"book_name"`
	CustomerID   int       `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	LoanDate     time.Time `json:"loan_date"`
	DueDate      time.Time `json:"due_date"`
}

type OverdueService struct {
	db *gorm.DB
}

// NewOverdueService creates a new instance of OverdueService
func NewOverdueService(db *gorm.DB) *OverdueService {
	return &OverdueService{db: db}
}

// ListOverdue returns every active loan whose due date has passed by now.
// Read-only; results are sorted by due date so output is deterministic.
func (s *OverdueService) ListOverdue(now time.Time) ([]OverdueLoan, error) {
	var loans []models.LoanModel
	result := s.db.
		Preload("Customer").
		Preload("Book").
		Where("status = ?", models.LoanActive).
		Find(&loans)
	if result.Error != nil {
		return nil, apperrors.Wrap("failed to scan loans", result.Error)
	}

	overdue := []OverdueLoan{}
	for _, loan := range loans {
		if loan.Book == nil || loan.Customer == nil {
			continue
		}
		dueDate := loan.LoanDate.Add(loan.Book.Type.LoanDuration())
		if dueDate.Before(now) {
			overdue = append(overdue, OverdueLoan{
				BookID:       loan.Book.ID,
				BookName:     loan.Book.Name,
				CustomerID:   loan.Customer.ID,
				CustomerName: loan.Customer.Name,
				LoanDate:     loan.LoanDate,
				DueDate:      dueDate,
			})
		}
	}

	sort.Slice(overdue, func(i, j int) bool {
		return overdue[i].DueDate.Before(overdue[j].DueDate)
	})
	return overdue, nil
}
