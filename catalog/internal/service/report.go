package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/fee"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/validate"
)

// PatronStatus summarises the patron's current loans, fees owed so far and
// full borrowing history as of now.
func (s *Service) PatronStatus(ctx context.Context, patronID string, now time.Time) (model.PatronStatus, error) {
	if !validate.PatronID(patronID) {
		return model.PatronStatus{}, errs.ErrInvalidPatronID
	}
	now = now.UTC()

	var active, history []model.LoanView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		active, err = s.repo.ListActiveRecords(gctx, patronID)
		return err
	})
	g.Go(func() (err error) {
		history, err = s.repo.ListAllRecords(gctx, patronID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.PatronStatus{}, s.storageErr("retrieving patron status", err)
	}

	st := model.PatronStatus{
		PatronID:           patronID,
		CurrentlyBorrowed:  make([]model.BorrowedBook, 0, len(active)),
		CurrentBorrowCount: len(active),
		BorrowingHistory:   make([]model.HistoryEntry, 0, len(history)),
	}

	total := decimal.Zero
	for _, l := range active {
		days := fee.DaysOverdue(l.DueDate, now)
		total = total.Add(fee.Fee(days))
		st.CurrentlyBorrowed = append(st.CurrentlyBorrowed, model.BorrowedBook{
			BookID:      l.BookID,
			Title:       l.Title,
			Author:      l.Author,
			BorrowDate:  l.BorrowDate.Format(model.DateLayout),
			DueDate:     l.DueDate.Format(model.DateLayout),
			IsOverdue:   now.After(l.DueDate),
			DaysOverdue: days,
		})
	}
	st.TotalLateFees = model.NewMoney(total)

	for _, l := range history {
		e := model.HistoryEntry{
			BookID:     l.BookID,
			Title:      l.Title,
			Author:     l.Author,
			BorrowDate: l.BorrowDate.Format(model.DateLayout),
			DueDate:    l.DueDate.Format(model.DateLayout),
			IsReturned: !l.Active(),
		}
		if l.ReturnDate != nil {
			d := l.ReturnDate.Format(model.DateLayout)
			e.ReturnDate = &d
		}
		st.BorrowingHistory = append(st.BorrowingHistory, e)
	}
	return st, nil
}
