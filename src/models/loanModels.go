package models

import "time"

// LoanStatus is the lifecycle tag of a loan row. A pair's single row cycles
// between the two values: Active while the book is out, Closed after return.
type LoanStatus string

const (
	LoanActive LoanStatus = "active"
	LoanClosed LoanStatus = "closed"
)

// LoanModel is the lending relationship between a customer and a book.
// At most one row ever exists per (CustID, BookID); reopening a returned
// loan revives the same row instead of inserting a duplicate.
type LoanModel struct {
	CustID     int            `json:"custId" gorm:"column:cust_id;primaryKey"`
	BookID     int            `json:"bookId" gorm:"column:book_id;primaryKey"`
	LoanDate   time.Time      `json:"loanDate" gorm:"not null"`
	ReturnDate *time.Time     `json:"returnDate"`
	Status     LoanStatus     `json:"status" gorm:"type:varchar(10);default:active;not null"`
	Customer   *CustomerModel `json:"customer,omitempty" gorm:"foreignKey:CustID;references:ID"`
	Book       *BookModel     `json:"book,omitempty" gorm:"foreignKey:BookID;references:ID"`
}

func (LoanModel) TableName() string {
	return "loans"
}
