package models

import "time"

// BookType classifies a book by the loan duration it allows.
type BookType int

const (
	FictionLong   BookType = 1 // 10-day loans
	FictionMedium BookType = 2 // 5-day loans
	FictionShort  BookType = 3 // 2-day loans
)

// Valid reports whether t is one of the recognized book types.
func (t BookType) Valid() bool {
	switch t {
	case FictionLong, FictionMedium, FictionShort:
		return true
	}
	return false
}

// LoanDuration returns the maximum loan period for the type.
// Callers must check Valid first; an unrecognized type returns zero.
func (t BookType) LoanDuration() time.Duration {
	switch t {
	case FictionLong:
		return 10 * 24 * time.Hour
	case FictionMedium:
		return 5 * 24 * time.Hour
	case FictionShort:
		return 2 * 24 * time.Hour
	}
	return 0
}

type BookModel struct {
	ID            int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string   `json:"name" gorm:"type:varchar(100);unique;not null"`
	Author        string   `json:"author" gorm:"type:varchar(100);not null"`
	YearPublished int      `json:"yearPublished" gorm:"column:year_published;not null"`
	Type          BookType `json:"type" gorm:"type:integer;not null"`
	Deleted       bool     `json:"deleted" gorm:"type:boolean;default:false;not null"`
}

func (BookModel) TableName() string {
	return "books"
}
