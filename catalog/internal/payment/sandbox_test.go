package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/clock"
)

func TestSandbox_ProcessPayment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSandbox(clock.NewFixed(now), zap.NewNop())

	tests := []struct {
		name     string
		patronID string
		amount   decimal.Decimal
		success  bool
		message  string
	}{
		{name: "ok", patronID: "123456", amount: decimal.RequireFromString("4.5"), success: true, message: "Payment of $4.50 processed successfully"},
		{name: "zero", patronID: "123456", amount: decimal.Zero, message: "Invalid amount: must be greater than 0"},
		{name: "negative", patronID: "123456", amount: decimal.NewFromInt(-5), message: "Invalid amount: must be greater than 0"},
		{name: "over limit", patronID: "123456", amount: decimal.RequireFromString("1000.01"), message: "Payment declined: amount exceeds limit"},
		{name: "at limit", patronID: "123456", amount: decimal.NewFromInt(1000), success: true, message: "Payment of $1000.00 processed successfully"},
		{name: "bad patron", patronID: "12345", amount: decimal.NewFromInt(1), message: "Invalid patron ID format"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.ProcessPayment(ctx, tt.patronID, tt.amount, "Late fees for 'Dune'")
			require.NoError(t, err)
			require.Equal(t, tt.success, res.Success)
			require.Equal(t, tt.message, res.Message)
			if tt.success {
				require.True(t, strings.HasPrefix(res.TransactionID, "txn_"+tt.patronID+"_"))
			} else {
				require.Empty(t, res.TransactionID)
			}
		})
	}
}

func TestSandbox_UniqueTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewSandbox(clock.NewFixed(time.Unix(1700000000, 0)), zap.NewNop())

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		res, err := s.ProcessPayment(ctx, "654321", decimal.NewFromInt(1), "")
		require.NoError(t, err)
		require.True(t, res.Success)
		_, dup := seen[res.TransactionID]
		require.False(t, dup, res.TransactionID)
		seen[res.TransactionID] = struct{}{}
	}
}

func TestSandbox_RefundAndVerify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSandbox(clock.NewFixed(now), zap.NewNop())

	charge, err := s.ProcessPayment(ctx, "123456", decimal.RequireFromString("10.5"), "")
	require.NoError(t, err)

	st, err := s.VerifyPaymentStatus(ctx, charge.TransactionID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusCompleted, st.Status)
	require.Equal(t, "10.50", st.Amount.StringFixed(2))
	require.Equal(t, now, st.Timestamp)

	st, err = s.VerifyPaymentStatus(ctx, "bogus")
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusNotFound, st.Status)
	require.Equal(t, "Transaction not found", st.Message)

	st, err = s.VerifyPaymentStatus(ctx, "txn_999999_1")
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusNotFound, st.Status)

	ref, err := s.RefundPayment(ctx, charge.TransactionID, decimal.NewFromInt(5))
	require.NoError(t, err)
	require.True(t, ref.Success)
	require.True(t, strings.HasPrefix(ref.Message, "Refund of $5.00 processed successfully"))

	ref, err = s.RefundPayment(ctx, "abc", decimal.NewFromInt(5))
	require.NoError(t, err)
	require.False(t, ref.Success)
	require.Equal(t, "Invalid transaction ID", ref.Message)
}
