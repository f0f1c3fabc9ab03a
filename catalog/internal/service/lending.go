package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/fee"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/validate"
)

const (
	feeStatusNotBorrowed = "This book is not currently borrowed by you."
	feeStatusNotOverdue  = "Book is not overdue."
)

// Borrow lends one copy of the book to the patron. The record insert and the
// copy decrement commit together or not at all.
func (s *Service) Borrow(ctx context.Context, patronID string, bookID int64, now time.Time) (model.BorrowResponse, error) {
	if !validate.PatronID(patronID) {
		return model.BorrowResponse{}, errs.ErrInvalidPatronID
	}
	now = now.UTC()

	unlock := s.locks.Lock(bookID)
	defer unlock()

	var (
		book model.Book
		rec  model.BorrowRecord
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		book, err = s.loadBookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if book.AvailableCopies <= 0 {
			return errs.ErrNotAvailable
		}

		count, err := s.repo.CountActiveRecords(ctx, patronID)
		if err != nil {
			return s.storageErr("counting active loans", err)
		}
		if count >= MaxActiveLoans {
			return errs.ErrBorrowLimit
		}

		_, err = s.repo.FindActiveRecord(ctx, patronID, bookID)
		switch {
		case err == nil:
			return errs.ErrAlreadyBorrowed
		case !errors.Is(err, repository.ErrNotFound):
			return s.storageErr("checking active loans", err)
		}

		rec = model.BorrowRecord{
			PatronID:   patronID,
			BookID:     bookID,
			BorrowDate: now,
			DueDate:    fee.DueDate(now),
		}
		rec.ID, err = s.repo.CreateBorrowRecord(ctx, rec)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return errs.ErrAlreadyBorrowed
			}
			return s.storageErr("creating borrow record", err)
		}

		if err := s.repo.AdjustAvailableCopies(ctx, bookID, -1); err != nil {
			if errors.Is(err, repository.ErrNoCopies) {
				return errs.ErrNotAvailable
			}
			return s.storageErr("updating book availability", err)
		}
		book.AvailableCopies--
		return nil
	})
	if err != nil {
		return model.BorrowResponse{}, s.txErr("borrowing the book", err)
	}

	s.publish(ctx, kafka.LendingEvent{
		Type:      kafka.EventBookBorrowed,
		PatronID:  patronID,
		BookID:    bookID,
		Timestamp: now,
	})
	return model.BorrowResponse{
		Record: rec,
		Message: fmt.Sprintf("Successfully borrowed \"%s\". Due date: %s.",
			book.Title, rec.DueDate.Format(model.DateLayout)),
	}, nil
}

// Return closes the patron's active loan of the book and reports the late
// fee owed at the moment of return.
func (s *Service) Return(ctx context.Context, patronID string, bookID int64, now time.Time) (model.ReturnResponse, error) {
	if !validate.PatronID(patronID) {
		return model.ReturnResponse{}, errs.ErrInvalidPatronID
	}
	now = now.UTC()

	unlock := s.locks.Lock(bookID)
	defer unlock()

	var (
		book model.Book
		rec  model.BorrowRecord
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		book, err = s.loadBookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}

		rec, err = s.repo.FindActiveRecord(ctx, patronID, bookID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return errs.ErrNotBorrowed
			}
			return s.storageErr("loading the borrow record", err)
		}

		if err := s.repo.FinalizeReturn(ctx, patronID, bookID, now); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return errs.ErrNotBorrowed
			}
			return s.storageErr("updating the return date", err)
		}
		if err := s.repo.AdjustAvailableCopies(ctx, bookID, 1); err != nil {
			return s.storageErr("updating book availability", err)
		}
		rec.ReturnDate = &now
		return nil
	})
	if err != nil {
		return model.ReturnResponse{}, s.txErr("returning the book", err)
	}

	days, amount := fee.Calculate(rec.DueDate, now)
	s.publish(ctx, kafka.LendingEvent{
		Type:      kafka.EventBookReturned,
		PatronID:  patronID,
		BookID:    bookID,
		Amount:    amount.StringFixed(2),
		Timestamp: now,
	})

	msg := fmt.Sprintf("Successfully returned \"%s\". No late fee.", book.Title)
	if amount.IsPositive() {
		msg = fmt.Sprintf("Successfully returned \"%s\". Late fee: %s.", book.Title, fee.Format(amount))
	}
	return model.ReturnResponse{
		Record:      rec,
		DaysOverdue: days,
		LateFee:     model.NewMoney(amount),
		Message:     msg,
	}, nil
}

// LateFee reports what the patron would owe for the book if returned at now.
// Rule failures are narrated in Status; only store faults come back as errors.
func (s *Service) LateFee(ctx context.Context, patronID string, bookID int64, now time.Time) (model.LateFeeResult, error) {
	days, amount, book, err := s.assessLateFee(ctx, patronID, bookID, now)
	if err != nil {
		if errs.IsKind(err, errs.KindStorage) {
			return model.LateFeeResult{}, err
		}
		status := errs.Message(err)
		if errors.Is(err, errs.ErrNotBorrowed) {
			status = feeStatusNotBorrowed
		}
		return model.LateFeeResult{FeeAmount: model.NewMoney(decimal.Zero), Status: status}, nil
	}

	status := feeStatusNotOverdue
	if days > 0 {
		status = fmt.Sprintf("Late fee calculated for \"%s\".", book.Title)
	}
	return model.LateFeeResult{
		FeeAmount:   model.NewMoney(amount),
		DaysOverdue: days,
		Status:      status,
	}, nil
}

func (s *Service) assessLateFee(ctx context.Context, patronID string, bookID int64, now time.Time) (int, decimal.Decimal, model.Book, error) {
	if !validate.PatronID(patronID) {
		return 0, decimal.Zero, model.Book{}, errs.ErrInvalidPatronID
	}
	book, err := s.GetBook(ctx, bookID)
	if err != nil {
		return 0, decimal.Zero, model.Book{}, err
	}
	rec, err := s.repo.FindActiveRecord(ctx, patronID, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, decimal.Zero, book, errs.ErrNotBorrowed
		}
		return 0, decimal.Zero, book, s.storageErr("loading the borrow record", err)
	}
	days, amount := fee.Calculate(rec.DueDate, now.UTC())
	return days, amount, book, nil
}

func (s *Service) loadBookForUpdate(ctx context.Context, bookID int64) (model.Book, error) {
	book, err := s.repo.GetBookForUpdate(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, s.storageErr("loading the book", err)
	}
	return book, nil
}

// txErr passes domain errors through and turns begin/commit failures into
// storage errors.
func (s *Service) txErr(op string, err error) error {
	if errs.KindOf(err) != 0 {
		return err
	}
	return s.storageErr(op, err)
}
