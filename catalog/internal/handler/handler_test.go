package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/handler"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/clock"
	"github.com/Astemirdum/library-catalog/pkg/validate"

	service_mocks "github.com/Astemirdum/library-catalog/catalog/internal/handler/mocks"
)

var now = time.Date(2024, 1, 23, 10, 0, 0, 0, time.UTC)

type response struct {
	expectedCode int
	expectedBody string
}

type route struct {
	method, path string
	handler      func(h *handler.Handler) echo.HandlerFunc
}

func serve(t *testing.T, rt route, target, body string, mockBehavior func(r *service_mocks.MockCatalogService)) *httptest.ResponseRecorder {
	t.Helper()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCatalogService(c)
	h := handler.New(svc, clock.NewFixed(now), zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.Add(rt.method, rt.path, rt.handler(h))

	r := httptest.NewRequest(rt.method, target, strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()

	mockBehavior(svc)
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_Borrow(t *testing.T) {
	t.Parallel()
	rt := route{http.MethodPost, "/books/:bookId/borrow", func(h *handler.Handler) echo.HandlerFunc { return h.Borrow }}
	due := now.Add(14 * 24 * time.Hour)

	var tests = []struct {
		name         string
		target, body string
		mockBehavior func(r *service_mocks.MockCatalogService)
		response     response
	}{
		{
			name:   "ok",
			target: "/books/1/borrow",
			body:   `{"patronId":"123456"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					Borrow(context.Background(), "123456", int64(1), now).
					Return(model.BorrowResponse{
						Record:  model.BorrowRecord{ID: 5, PatronID: "123456", BookID: 1, BorrowDate: now, DueDate: due},
						Message: `Successfully borrowed "Clean Code". Due date: 2024-02-06.`,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"record":{"id":5,"patronId":"123456","bookId":1,"borrowDate":"2024-01-23T10:00:00Z","dueDate":"2024-02-06T10:00:00Z"},"message":"Successfully borrowed \"Clean Code\". Due date: 2024-02-06."}`,
			},
		},
		{
			name:         "err. invalid patron",
			target:       "/books/1/borrow",
			body:         `{"patronId":"12345"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid patron ID. Must be exactly 6 digits."}`,
			},
		},
		{
			name:         "err. bad book id",
			target:       "/books/abc/borrow",
			body:         `{"patronId":"123456"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid bookId"}`,
			},
		},
		{
			name:   "err. not found",
			target: "/books/9/borrow",
			body:   `{"patronId":"123456"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().Borrow(context.Background(), "123456", int64(9), now).Return(model.BorrowResponse{}, errs.ErrBookNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Book not found."}`,
			},
		},
		{
			name:   "err. limit",
			target: "/books/1/borrow",
			body:   `{"patronId":"123456"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().Borrow(context.Background(), "123456", int64(1), now).Return(model.BorrowResponse{}, errs.ErrBorrowLimit)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"You have reached the maximum borrowing limit of 5 books."}`,
			},
		},
		{
			name:   "err. storage",
			target: "/books/1/borrow",
			body:   `{"patronId":"123456"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().Borrow(context.Background(), "123456", int64(1), now).
					Return(model.BorrowResponse{}, errs.Storage("borrowing the book", errors.New("db internal")))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"Database error occurred while borrowing the book."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, rt, tt.target, tt.body, tt.mockBehavior)
			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	rt := route{http.MethodPost, "/books/:bookId/return", func(h *handler.Handler) echo.HandlerFunc { return h.Return }}

	w := serve(t, rt, "/books/1/return", `{"patronId":"123456"}`, func(r *service_mocks.MockCatalogService) {
		r.EXPECT().Return(context.Background(), "123456", int64(1), now).
			Return(model.ReturnResponse{}, errs.ErrNotBorrowed)
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, `{"message":"This book is not currently borrowed by you or has already been returned."}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, rt, "/books/1/return", `{"patronId":"123456"}`, func(r *service_mocks.MockCatalogService) {
		r.EXPECT().Return(context.Background(), "123456", int64(1), now).
			Return(model.ReturnResponse{
				DaysOverdue: 8,
				LateFee:     model.NewMoney(decimal.RequireFromString("4.5")),
				Message:     `Successfully returned "Clean Code". Late fee: $4.50.`,
			}, nil)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"daysOverdue":8,"lateFee":4.50,`)
}

func TestHandler_LateFee(t *testing.T) {
	t.Parallel()
	rt := route{http.MethodGet, "/late_fee/:patronId/:bookId", func(h *handler.Handler) echo.HandlerFunc { return h.LateFee }}

	w := serve(t, rt, "/late_fee/123456/1", "", func(r *service_mocks.MockCatalogService) {
		r.EXPECT().LateFee(context.Background(), "123456", int64(1), now).
			Return(model.LateFeeResult{
				FeeAmount:   model.NewMoney(decimal.RequireFromString("4.5")),
				DaysOverdue: 8,
				Status:      `Late fee calculated for "Clean Code".`,
			}, nil)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"feeAmount":4.50,"daysOverdue":8,"status":"Late fee calculated for \"Clean Code\"."}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_PayLateFees(t *testing.T) {
	t.Parallel()
	rt := route{http.MethodPost, "/late_fee/:patronId/:bookId/pay", func(h *handler.Handler) echo.HandlerFunc { return h.PayLateFees }}

	w := serve(t, rt, "/late_fee/123456/1/pay", "", func(r *service_mocks.MockCatalogService) {
		r.EXPECT().PayLateFees(context.Background(), "123456", int64(1), now).
			Return(model.PaymentResponse{}, errs.Payment("Payment failed: Insufficient funds", nil))
	})
	require.Equal(t, http.StatusPaymentRequired, w.Code)
	require.Equal(t, `{"message":"Payment failed: Insufficient funds"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, rt, "/late_fee/123456/1/pay", "", func(r *service_mocks.MockCatalogService) {
		r.EXPECT().PayLateFees(context.Background(), "123456", int64(1), now).
			Return(model.PaymentResponse{
				TransactionID: "txn_123456_1",
				Amount:        model.NewMoney(decimal.RequireFromString("4.5")),
				Message:       "Payment successful! Payment of $4.50 processed successfully",
			}, nil)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"transactionId":"txn_123456_1","amount":4.50,"message":"Payment successful! Payment of $4.50 processed successfully"}`, strings.Trim(w.Body.String(), "\n"))
}

type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "is decimal " + m.want.String() }

func TestHandler_RefundLateFee(t *testing.T) {
	t.Parallel()
	rt := route{http.MethodPost, "/payments/:transactionId/refund", func(h *handler.Handler) echo.HandlerFunc { return h.RefundLateFee }}

	w := serve(t, rt, "/payments/txn_123456_1/refund", `{"amount":4.5}`, func(r *service_mocks.MockCatalogService) {
		r.EXPECT().RefundLateFee(context.Background(), "txn_123456_1", decimalMatcher{decimal.RequireFromString("4.50")}, now).
			Return(model.RefundResponse{Message: "Refund of $4.50 processed successfully"}, nil)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"message":"Refund of $4.50 processed successfully"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, rt, "/payments/bogus/refund", `{"amount":4.5}`, func(r *service_mocks.MockCatalogService) {
		r.EXPECT().RefundLateFee(context.Background(), "bogus", gomock.Any(), now).Return(model.RefundResponse{}, errs.ErrInvalidTxID)
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, rt, "/payments/txn_1/refund", `{"amount":"x"}`, func(r *service_mocks.MockCatalogService) {})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Search(t *testing.T) {
	t.Parallel()
	rt := route{http.MethodGet, "/search", func(h *handler.Handler) echo.HandlerFunc { return h.Search }}

	w := serve(t, rt, "/search?q=clean", "", func(r *service_mocks.MockCatalogService) {
		r.EXPECT().SearchBooks(context.Background(), "clean", model.SearchByTitle).
			Return([]model.Book{{ID: 1, Title: "Clean Code", Author: "Robert C. Martin", ISBN: "9780132350884", TotalCopies: 3, AvailableCopies: 2}}, nil)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[{"id":1,"title":"Clean Code","author":"Robert C. Martin","isbn":"9780132350884","totalCopies":3,"availableCopies":2}]`, strings.Trim(w.Body.String(), "\n"))

	w = serve(t, rt, "/search?q=9780132350884&type=isbn", "", func(r *service_mocks.MockCatalogService) {
		r.EXPECT().SearchBooks(context.Background(), "9780132350884", model.SearchByISBN).Return([]model.Book{}, nil)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_AddBook(t *testing.T) {
	t.Parallel()
	rt := route{http.MethodPost, "/books", func(h *handler.Handler) echo.HandlerFunc { return h.AddBook }}
	req := model.AddBookRequest{Title: "Clean Code", Author: "Robert C. Martin", ISBN: "9780132350884", TotalCopies: 3}

	w := serve(t, rt, "/books", `{"title":"Clean Code","author":"Robert C. Martin","isbn":"9780132350884","totalCopies":3}`, func(r *service_mocks.MockCatalogService) {
		r.EXPECT().AddBook(context.Background(), req, now).Return(model.AddBookResponse{
			Book:    model.Book{ID: 1, Title: req.Title, Author: req.Author, ISBN: req.ISBN, TotalCopies: 3, AvailableCopies: 3},
			Message: `Book "Clean Code" has been successfully added to the catalog.`,
		}, nil)
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(t, rt, "/books", `{"title":"Clean Code","author":"Robert C. Martin","isbn":"9780132350884","totalCopies":3}`, func(r *service_mocks.MockCatalogService) {
		r.EXPECT().AddBook(context.Background(), req, now).Return(model.AddBookResponse{}, errs.ErrDuplicateISBN)
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, `{"message":"A book with this ISBN already exists."}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_PatronStatus(t *testing.T) {
	t.Parallel()
	rt := route{http.MethodGet, "/patrons/:patronId/status", func(h *handler.Handler) echo.HandlerFunc { return h.PatronStatus }}

	w := serve(t, rt, "/patrons/12/status", "", func(r *service_mocks.MockCatalogService) {
		r.EXPECT().PatronStatus(context.Background(), "12", now).Return(model.PatronStatus{}, errs.ErrInvalidPatronID)
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	returned := "2024-01-05"
	w = serve(t, rt, "/patrons/123456/status", "", func(r *service_mocks.MockCatalogService) {
		r.EXPECT().PatronStatus(context.Background(), "123456", now).Return(model.PatronStatus{
			PatronID:          "123456",
			CurrentlyBorrowed: []model.BorrowedBook{},
			TotalLateFees:     model.NewMoney(decimal.Zero),
			BorrowingHistory: []model.HistoryEntry{{
				BookID: 1, Title: "Clean Code", Author: "Robert C. Martin",
				BorrowDate: "2024-01-01", DueDate: "2024-01-15", ReturnDate: &returned, IsReturned: true,
			}},
		}, nil)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"patronId":"123456","currentlyBorrowed":[],"totalLateFees":0.00,"currentBorrowCount":0,"borrowingHistory":[{"bookId":1,"title":"Clean Code","author":"Robert C. Martin","borrowDate":"2024-01-01","dueDate":"2024-01-15","returnDate":"2024-01-05","isReturned":true}]}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Router(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockCatalogService(c)
	svc.EXPECT().ListBooks(gomock.Any()).Return([]model.Book{}, nil)

	e := handler.New(svc, clock.NewFixed(now), zap.NewNop()).NewRouter()

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/books", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(echo.HeaderXRequestID))
}
