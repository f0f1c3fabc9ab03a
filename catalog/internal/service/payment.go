package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/fee"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/payment"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
)

// PayLateFees charges the fee currently owed for the patron's active loan of
// the book. Nothing reaches the gateway unless there is a positive fee.
func (s *Service) PayLateFees(ctx context.Context, patronID string, bookID int64, now time.Time) (model.PaymentResponse, error) {
	_, amount, book, err := s.assessLateFee(ctx, patronID, bookID, now)
	if err != nil {
		if errors.Is(err, errs.ErrNotBorrowed) {
			return model.PaymentResponse{}, errs.ErrNoFees
		}
		return model.PaymentResponse{}, err
	}
	if !amount.IsPositive() {
		return model.PaymentResponse{}, errs.ErrNoFees
	}

	res, err := s.gateway.ProcessPayment(ctx, patronID, amount, fmt.Sprintf("Late fees for '%s'", book.Title))
	if err != nil {
		s.log.Error("ProcessPayment", zap.String("patronId", patronID), zap.Int64("bookId", bookID), zap.Error(err))
		return model.PaymentResponse{}, errs.Payment("Payment processing error: "+err.Error(), err)
	}
	if !res.Success {
		return model.PaymentResponse{}, errs.Payment("Payment failed: "+res.Message, nil)
	}

	s.publish(ctx, kafka.LendingEvent{
		Type:          kafka.EventLateFeePaid,
		PatronID:      patronID,
		BookID:        bookID,
		Amount:        amount.StringFixed(2),
		TransactionID: res.TransactionID,
		Timestamp:     now.UTC(),
	})
	return model.PaymentResponse{
		TransactionID: res.TransactionID,
		Amount:        model.NewMoney(amount),
		Message:       "Payment successful! " + res.Message,
	}, nil
}

// RefundLateFee returns part or all of an earlier late-fee payment.
func (s *Service) RefundLateFee(ctx context.Context, transactionID string, amount decimal.Decimal, now time.Time) (model.RefundResponse, error) {
	switch {
	case !payment.ValidTransactionID(transactionID):
		return model.RefundResponse{}, errs.ErrInvalidTxID
	case !amount.IsPositive():
		return model.RefundResponse{}, errs.ErrRefundNotPositive
	case amount.GreaterThan(fee.MaxFee):
		return model.RefundResponse{}, errs.ErrRefundTooLarge
	}

	res, err := s.gateway.RefundPayment(ctx, transactionID, amount)
	if err != nil {
		s.log.Error("RefundPayment", zap.String("tx", transactionID), zap.Error(err))
		return model.RefundResponse{}, errs.Payment("Refund processing error: "+err.Error(), err)
	}
	if !res.Success {
		return model.RefundResponse{}, errs.Payment("Refund failed: "+res.Message, nil)
	}

	s.publish(ctx, kafka.LendingEvent{
		Type:          kafka.EventLateFeeRefunded,
		Amount:        amount.StringFixed(2),
		TransactionID: transactionID,
		Timestamp:     now.UTC(),
	})
	return model.RefundResponse{Message: res.Message}, nil
}

func (s *Service) VerifyPayment(ctx context.Context, transactionID string) (model.PaymentStatus, error) {
	st, err := s.gateway.VerifyPaymentStatus(ctx, transactionID)
	if err != nil {
		s.log.Error("VerifyPaymentStatus", zap.String("tx", transactionID), zap.Error(err))
		return model.PaymentStatus{}, errs.Payment("Payment verification error: "+err.Error(), err)
	}
	return st, nil
}
