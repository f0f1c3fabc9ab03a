package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/clock"
	"github.com/Astemirdum/library-catalog/pkg/validate"
)

var chargeLimit = decimal.NewFromInt(1000)

// Sandbox is an in-process provider with the same acceptance rules as the
// real one. Nothing leaves the process.
type Sandbox struct {
	log   *zap.Logger
	clock clock.Clock

	mu     sync.Mutex
	lastTS int64
	txs    map[string]model.PaymentStatus
}

func NewSandbox(clk clock.Clock, log *zap.Logger) *Sandbox {
	return &Sandbox{
		log:   log.Named("sandbox"),
		clock: clk,
		txs:   make(map[string]model.PaymentStatus),
	}
}

func (s *Sandbox) ProcessPayment(_ context.Context, patronID string, amount decimal.Decimal, description string) (ChargeResult, error) {
	switch {
	case !amount.IsPositive():
		return ChargeResult{Message: "Invalid amount: must be greater than 0"}, nil
	case amount.GreaterThan(chargeLimit):
		return ChargeResult{Message: "Payment declined: amount exceeds limit"}, nil
	case !validate.PatronID(patronID):
		return ChargeResult{Message: "Invalid patron ID format"}, nil
	}

	now := s.clock.Now()
	s.mu.Lock()
	ts := now.UnixNano()
	if ts <= s.lastTS {
		ts = s.lastTS + 1
	}
	s.lastTS = ts
	txID := fmt.Sprintf("%s%s_%d", TransactionPrefix, patronID, ts)
	s.txs[txID] = model.PaymentStatus{
		TransactionID: txID,
		Status:        model.PaymentStatusCompleted,
		Amount:        model.NewMoney(amount),
		Timestamp:     now,
	}
	s.mu.Unlock()

	s.log.Info("charge", zap.String("tx", txID), zap.String("amount", amount.StringFixed(2)), zap.String("description", description))
	return ChargeResult{
		Success:       true,
		TransactionID: txID,
		Message:       fmt.Sprintf("Payment of $%s processed successfully", amount.StringFixed(2)),
	}, nil
}

func (s *Sandbox) RefundPayment(_ context.Context, transactionID string, amount decimal.Decimal) (RefundResult, error) {
	if !ValidTransactionID(transactionID) {
		return RefundResult{Message: "Invalid transaction ID"}, nil
	}
	if !amount.IsPositive() {
		return RefundResult{Message: "Invalid refund amount"}, nil
	}
	refundID := "refund_" + uuid.NewString()
	s.log.Info("refund", zap.String("tx", transactionID), zap.String("refund", refundID), zap.String("amount", amount.StringFixed(2)))
	return RefundResult{
		Success: true,
		Message: fmt.Sprintf("Refund of $%s processed successfully. Refund ID: %s", amount.StringFixed(2), refundID),
	}, nil
}

func (s *Sandbox) VerifyPaymentStatus(_ context.Context, transactionID string) (model.PaymentStatus, error) {
	s.mu.Lock()
	st, ok := s.txs[transactionID]
	s.mu.Unlock()
	if !ok || !ValidTransactionID(transactionID) {
		return model.PaymentStatus{
			TransactionID: transactionID,
			Status:        model.PaymentStatusNotFound,
			Message:       "Transaction not found",
		}, nil
	}
	return st, nil
}
