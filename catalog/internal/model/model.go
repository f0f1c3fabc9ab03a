package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = time.DateOnly

type Book struct {
	ID              int64  `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	ISBN            string `json:"isbn" db:"isbn"`
	TotalCopies     int    `json:"totalCopies" db:"total_copies"`
	AvailableCopies int    `json:"availableCopies" db:"available_copies"`
}

type BorrowRecord struct {
	ID         int64      `json:"id" db:"id"`
	PatronID   string     `json:"patronId" db:"patron_id"`
	BookID     int64      `json:"bookId" db:"book_id"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
}

func (r BorrowRecord) Active() bool {
	return r.ReturnDate == nil
}

// LoanView is a borrow record joined with its book.
type LoanView struct {
	BorrowRecord
	Title  string `db:"title"`
	Author string `db:"author"`
}

// Money is a decimal amount rendered with two decimals in JSON.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d.Round(2)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}

type AddBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int    `json:"totalCopies"`
}

type AddBookResponse struct {
	Book    Book   `json:"book"`
	Message string `json:"message"`
}

type BorrowResponse struct {
	Record  BorrowRecord `json:"record"`
	Message string       `json:"message"`
}

type ReturnResponse struct {
	Record      BorrowRecord `json:"record"`
	DaysOverdue int          `json:"daysOverdue"`
	LateFee     Money        `json:"lateFee"`
	Message     string       `json:"message"`
}

type LateFeeResult struct {
	FeeAmount   Money  `json:"feeAmount"`
	DaysOverdue int    `json:"daysOverdue"`
	Status      string `json:"status"`
}

type PaymentResponse struct {
	TransactionID string `json:"transactionId"`
	Amount        Money  `json:"amount"`
	Message       string `json:"message"`
}

type RefundRequest struct {
	Amount Money `json:"amount"`
}

type RefundResponse struct {
	Message string `json:"message"`
}

type PaymentStatus struct {
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	Amount        Money     `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
	Message       string    `json:"message,omitempty"`
}

const (
	PaymentStatusCompleted = "completed"
	PaymentStatusNotFound  = "not_found"
)

type PatronRequest struct {
	PatronID string `json:"patronId" validate:"patron_id"`
}

type BorrowedBook struct {
	BookID      int64  `json:"bookId"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	BorrowDate  string `json:"borrowDate"`
	DueDate     string `json:"dueDate"`
	IsOverdue   bool   `json:"isOverdue"`
	DaysOverdue int    `json:"daysOverdue"`
}

type HistoryEntry struct {
	BookID     int64   `json:"bookId"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	BorrowDate string  `json:"borrowDate"`
	DueDate    string  `json:"dueDate"`
	ReturnDate *string `json:"returnDate"`
	IsReturned bool    `json:"isReturned"`
}

type PatronStatus struct {
	PatronID           string         `json:"patronId"`
	CurrentlyBorrowed  []BorrowedBook `json:"currentlyBorrowed"`
	TotalLateFees      Money          `json:"totalLateFees"`
	CurrentBorrowCount int            `json:"currentBorrowCount"`
	BorrowingHistory   []HistoryEntry `json:"borrowingHistory"`
}

type SearchType string

const (
	SearchByTitle  SearchType = "title"
	SearchByAuthor SearchType = "author"
	SearchByISBN   SearchType = "isbn"
)

func (t SearchType) Valid() bool {
	switch t {
	case SearchByTitle, SearchByAuthor, SearchByISBN:
		return true
	}
	return false
}
