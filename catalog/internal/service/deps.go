package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/payment"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=deps.go -destination=mocks/mock.go

// Gateway is the payment provider. A decline comes back as an unsuccessful
// result; an error means the provider could not be reached or failed.
type Gateway interface {
	ProcessPayment(ctx context.Context, patronID string, amount decimal.Decimal, description string) (payment.ChargeResult, error)
	RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal) (payment.RefundResult, error)
	VerifyPaymentStatus(ctx context.Context, transactionID string) (model.PaymentStatus, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event kafka.LendingEvent) error
}

var (
	_ Gateway        = (*payment.Sandbox)(nil)
	_ Gateway        = (*payment.Client)(nil)
	_ EventPublisher = kafka.NewNopPublisher()
)
