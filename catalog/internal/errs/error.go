package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindPayment
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPayment:
		return "payment"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is the error type returned by the service layer. Message is safe to
// show to patrons; Err keeps the cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindStorage {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches errors of the same kind and message, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Message: msg} }

func Payment(msg string, cause error) error {
	return &Error{Kind: KindPayment, Message: msg, Err: cause}
}

// Storage hides the store fault behind a generic message.
func Storage(op string, cause error) error {
	return &Error{Kind: KindStorage, Message: "Database error occurred while " + op + ".", Err: cause}
}

// KindOf returns the kind of err, zero when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the patron-facing message of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

var (
	ErrInvalidPatronID   = Validation("Invalid patron ID. Must be exactly 6 digits.")
	ErrTitleRequired     = Validation("Title is required.")
	ErrTitleTooLong      = Validation("Title must be less than 200 characters.")
	ErrAuthorRequired    = Validation("Author is required.")
	ErrAuthorTooLong     = Validation("Author must be less than 100 characters.")
	ErrInvalidISBN       = Validation("ISBN must be exactly 13 digits.")
	ErrInvalidCopies     = Validation("Total copies must be a positive integer.")
	ErrInvalidTxID       = Validation("Invalid transaction ID.")
	ErrRefundNotPositive = Validation("Refund amount must be greater than 0.")
	ErrRefundTooLarge    = Validation("Refund amount exceeds maximum late fee.")

	ErrBookNotFound = NotFound("Book not found.")

	ErrDuplicateISBN   = Conflict("A book with this ISBN already exists.")
	ErrNotAvailable    = Conflict("This book is currently not available.")
	ErrBorrowLimit     = Conflict("You have reached the maximum borrowing limit of 5 books.")
	ErrAlreadyBorrowed = Conflict("You have already borrowed this book.")
	ErrNotBorrowed     = Conflict("This book is not currently borrowed by you or has already been returned.")
	ErrNoFees          = Conflict("No late fees to pay for this book.")
)
