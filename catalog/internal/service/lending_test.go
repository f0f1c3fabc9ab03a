package service_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
)

func TestService_BorrowReturnLateFee(t *testing.T) {
	e := newEnv(t)
	ctx := testCtx(t)
	book := e.addBook(t, "Clean Code", cleanCodeID, 3)

	br, err := e.svc.Borrow(ctx, patron, book.ID, t0)
	require.NoError(t, err)
	require.Equal(t, `Successfully borrowed "Clean Code". Due date: 2024-01-15.`, br.Message)
	require.True(t, br.Record.DueDate.Equal(t0.Add(days(14))))
	require.NotZero(t, br.Record.ID)

	got, err := e.svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.AvailableCopies)

	fee, err := e.svc.LateFee(ctx, patron, book.ID, t0.Add(days(22)))
	require.NoError(t, err)
	require.Equal(t, 8, fee.DaysOverdue)
	require.Equal(t, "4.50", fee.FeeAmount.StringFixed(2))
	require.Equal(t, `Late fee calculated for "Clean Code".`, fee.Status)

	rr, err := e.svc.Return(ctx, patron, book.ID, t0.Add(days(22)))
	require.NoError(t, err)
	require.Equal(t, `Successfully returned "Clean Code". Late fee: $4.50.`, rr.Message)
	require.Equal(t, 8, rr.DaysOverdue)
	require.Equal(t, "4.50", rr.LateFee.StringFixed(2))
	require.NotNil(t, rr.Record.ReturnDate)

	got, err = e.svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.AvailableCopies)

	_, err = e.svc.Return(ctx, patron, book.ID, t0.Add(days(23)))
	require.ErrorIs(t, err, errs.ErrNotBorrowed)

	got, err = e.svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.AvailableCopies)

	fee, err = e.svc.LateFee(ctx, patron, book.ID, t0.Add(days(30)))
	require.NoError(t, err)
	require.Equal(t, "This book is not currently borrowed by you.", fee.Status)
	require.True(t, fee.FeeAmount.IsZero())
}

func TestService_ReturnSameDayNoFee(t *testing.T) {
	e := newEnv(t)
	ctx := testCtx(t)
	book := e.addBook(t, "Clean Code", cleanCodeID, 1)

	_, err := e.svc.Borrow(ctx, patron, book.ID, t0)
	require.NoError(t, err)

	fee, err := e.svc.LateFee(ctx, patron, book.ID, t0.Add(days(14)))
	require.NoError(t, err)
	require.Equal(t, "Book is not overdue.", fee.Status)
	require.Zero(t, fee.DaysOverdue)

	rr, err := e.svc.Return(ctx, patron, book.ID, t0)
	require.NoError(t, err)
	require.Equal(t, `Successfully returned "Clean Code". No late fee.`, rr.Message)
	require.True(t, rr.LateFee.IsZero())
}

func TestService_BorrowRules(t *testing.T) {
	e := newEnv(t)
	ctx := testCtx(t)
	book := e.addBook(t, "Clean Code", cleanCodeID, 1)

	tests := []struct {
		name   string
		patron string
		bookID int64
		err    error
		kind   errs.Kind
	}{
		{name: "short patron", patron: "12345", bookID: book.ID, err: errs.ErrInvalidPatronID, kind: errs.KindValidation},
		{name: "letters in patron", patron: "12a456", bookID: book.ID, err: errs.ErrInvalidPatronID, kind: errs.KindValidation},
		{name: "patron checked before book", patron: "", bookID: 999, err: errs.ErrInvalidPatronID, kind: errs.KindValidation},
		{name: "missing book", patron: patron, bookID: 999, err: errs.ErrBookNotFound, kind: errs.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.svc.Borrow(ctx, tt.patron, tt.bookID, t0)
			require.ErrorIs(t, err, tt.err)
			require.Equal(t, tt.kind, errs.KindOf(err))
		})
	}

	_, err := e.svc.Borrow(ctx, patron, book.ID, t0)
	require.NoError(t, err)

	_, err = e.svc.Borrow(ctx, "654321", book.ID, t0)
	require.ErrorIs(t, err, errs.ErrNotAvailable)

	// single copy already out: the availability check answers first
	_, err = e.svc.Borrow(ctx, patron, book.ID, t0)
	require.ErrorIs(t, err, errs.ErrNotAvailable)

	for _, bad := range []string{"12345", "1234567", ""} {
		_, err = e.svc.Return(ctx, bad, book.ID, t0)
		require.ErrorIs(t, err, errs.ErrInvalidPatronID)
	}
	_, err = e.svc.Return(ctx, patron, 999, t0)
	require.ErrorIs(t, err, errs.ErrBookNotFound)
	_, err = e.svc.Return(ctx, "654321", book.ID, t0)
	require.ErrorIs(t, err, errs.ErrNotBorrowed)
}

func TestService_ReturnByOtherPatronKeepsCopies(t *testing.T) {
	e := newEnv(t)
	ctx := testCtx(t)
	book := e.addBook(t, "Clean Code", cleanCodeID, 3)

	_, err := e.svc.Borrow(ctx, patron, book.ID, t0)
	require.NoError(t, err)

	_, err = e.svc.Return(ctx, "654321", book.ID, t0.Add(days(1)))
	require.ErrorIs(t, err, errs.ErrNotBorrowed)
	require.Equal(t, errs.KindConflict, errs.KindOf(err))

	got, err := e.svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.AvailableCopies)

	st, err := e.svc.PatronStatus(ctx, patron, t0.Add(days(1)))
	require.NoError(t, err)
	require.Equal(t, 1, st.CurrentBorrowCount)
}

func TestService_BorrowDuplicateActiveLoan(t *testing.T) {
	e := newEnv(t)
	ctx := testCtx(t)
	book := e.addBook(t, "Clean Code", cleanCodeID, 2)

	_, err := e.svc.Borrow(ctx, patron, book.ID, t0)
	require.NoError(t, err)

	_, err = e.svc.Borrow(ctx, patron, book.ID, t0)
	require.ErrorIs(t, err, errs.ErrAlreadyBorrowed)

	got, err := e.svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.AvailableCopies)

	st, err := e.svc.PatronStatus(ctx, patron, t0)
	require.NoError(t, err)
	require.Equal(t, 1, st.CurrentBorrowCount)
}

func TestService_BorrowLimit(t *testing.T) {
	e := newEnv(t)
	ctx := testCtx(t)

	ids := make([]int64, 6)
	for i := range ids {
		ids[i] = e.addBook(t, "Book", isbn(i), 1).ID
	}
	for _, id := range ids[:5] {
		_, err := e.svc.Borrow(ctx, patron, id, t0)
		require.NoError(t, err)
	}

	_, err := e.svc.Borrow(ctx, patron, ids[5], t0)
	require.ErrorIs(t, err, errs.ErrBorrowLimit)
	require.Equal(t, "You have reached the maximum borrowing limit of 5 books.", errs.Message(err))

	got, err := e.svc.GetBook(ctx, ids[5])
	require.NoError(t, err)
	require.Equal(t, 1, got.AvailableCopies)

	_, err = e.svc.Return(ctx, patron, ids[0], t0.Add(days(1)))
	require.NoError(t, err)

	_, err = e.svc.Borrow(ctx, patron, ids[5], t0.Add(days(1)))
	require.NoError(t, err)
}

func TestService_BorrowRaceOnLastCopy(t *testing.T) {
	e := newEnv(t)
	ctx := testCtx(t)
	book := e.addBook(t, "Clean Code", cleanCodeID, 1)

	const n = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		errList []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := e.svc.Borrow(ctx, fmt.Sprintf("1000%02d", i), book.ID, t0)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				success++
				return
			}
			errList = append(errList, err)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, success)
	require.Len(t, errList, n-1)
	for _, err := range errList {
		require.ErrorIs(t, err, errs.ErrNotAvailable)
	}

	got, err := e.svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Zero(t, got.AvailableCopies)
}
