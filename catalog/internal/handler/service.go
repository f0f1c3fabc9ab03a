package handler

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	AddBook(ctx context.Context, req model.AddBookRequest, now time.Time) (model.AddBookResponse, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, term string, by model.SearchType) ([]model.Book, error)
	Borrow(ctx context.Context, patronID string, bookID int64, now time.Time) (model.BorrowResponse, error)
	Return(ctx context.Context, patronID string, bookID int64, now time.Time) (model.ReturnResponse, error)
	LateFee(ctx context.Context, patronID string, bookID int64, now time.Time) (model.LateFeeResult, error)
	PayLateFees(ctx context.Context, patronID string, bookID int64, now time.Time) (model.PaymentResponse, error)
	RefundLateFee(ctx context.Context, transactionID string, amount decimal.Decimal, now time.Time) (model.RefundResponse, error)
	VerifyPayment(ctx context.Context, transactionID string) (model.PaymentStatus, error)
	PatronStatus(ctx context.Context, patronID string, now time.Time) (model.PatronStatus, error)
}

var _ CatalogService = (*service.Service)(nil)
