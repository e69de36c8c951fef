package dtos

import "strconv"

// LoanRequest identifies a book/customer pair either by natural key
// (bookName / customerEmail) or by primary key (bookId / customerId).
type LoanRequest struct {
	BookName      string `json:"bookName"`
	BookID        int    `json:"bookId"`
	CustomerEmail string `json:"customerEmail"`
	CustomerID    int    `json:"customerId"`
}

// BookRef returns the book identifier as a service reference, or "" when
// the request names no book.
func (r *LoanRequest) BookRef() string {
	if r.BookName != "" {
		return r.BookName
	}
	if r.BookID != 0 {
		return strconv.Itoa(r.BookID)
	}
	return ""
}

// CustomerRef returns the customer identifier as a service reference, or ""
// when the request names no customer.
func (r *LoanRequest) CustomerRef() string {
	if r.CustomerEmail != "" {
		return r.CustomerEmail
	}
	if r.CustomerID != 0 {
		return strconv.Itoa(r.CustomerID)
	}
	return ""
}
