package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/config"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
)

func newTestClient(url string) *Client {
	return NewClient(config.Payment{
		BaseURL: url,
		APIKey:  "secret",
		Timeout: time.Second,
		CB: circuit_breaker.Config{
			RecordLength:     2,
			Timeout:          time.Minute,
			Percentile:       1,
			RecoveryRequests: 1,
		},
	}, zap.NewNop())
}

func TestClient_ProcessPayment(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payments", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req struct {
			PatronID    string          `json:"patron_id"`
			Amount      decimal.Decimal `json:"amount"`
			Description string          `json:"description"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Amount.GreaterThan(decimal.NewFromInt(10)) {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"success":false,"message":"Insufficient funds"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"transaction_id":"txn_123456_1","message":"ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx := context.Background()

	res, err := c.ProcessPayment(ctx, "123456", decimal.RequireFromString("4.5"), "Late fees for 'Dune'")
	require.NoError(t, err)
	require.Equal(t, ChargeResult{Success: true, TransactionID: "txn_123456_1", Message: "ok"}, res)

	res, err = c.ProcessPayment(ctx, "123456", decimal.NewFromInt(11), "")
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, "Insufficient funds", res.Message)
}

func TestClient_ServerErrorOpensBreaker(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.RefundPayment(ctx, "txn_1", decimal.NewFromInt(1))
		require.True(t, errors.Is(err, ErrUnavailable), err)
	}
	require.Equal(t, circuit_breaker.Open, c.CB().State())

	_, err := c.RefundPayment(ctx, "txn_1", decimal.NewFromInt(1))
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_VerifyPaymentStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/payments/txn_123456_42", r.URL.Path)
		_, _ = w.Write([]byte(`{"transaction_id":"txn_123456_42","status":"completed","amount":10.5,"timestamp":"2024-03-01T12:00:00Z"}`))
	}))
	defer srv.Close()

	st, err := newTestClient(srv.URL).VerifyPaymentStatus(context.Background(), "txn_123456_42")
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusCompleted, st.Status)
	require.Equal(t, "10.50", st.Amount.StringFixed(2))
	require.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), st.Timestamp.UTC())
}
