package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/config"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
)

// Client talks to the payment provider over HTTP. Transport failures and 5xx
// answers count against the circuit breaker; 4xx answers are declines.
type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	apiKey  string
	cb      circuit_breaker.CircuitBreaker
}

func NewClient(cfg config.Payment, log *zap.Logger) *Client {
	return &Client{
		log:     log.Named("payment"),
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		cb:      circuit_breaker.New(cfg.CB),
	}
}

func (c *Client) CB() circuit_breaker.CircuitBreaker {
	return c.cb
}

type chargeRequest struct {
	PatronID    string      `json:"patron_id"`
	Amount      model.Money `json:"amount"`
	Description string      `json:"description"`
}

type refundRequest struct {
	Amount model.Money `json:"amount"`
}

// statusResponse is the provider's payment status body.
type statusResponse struct {
	TransactionID string      `json:"transaction_id"`
	Status        string      `json:"status"`
	Amount        model.Money `json:"amount"`
	Timestamp     time.Time   `json:"timestamp"`
	Message       string      `json:"message"`
}

func (c *Client) ProcessPayment(ctx context.Context, patronID string, amount decimal.Decimal, description string) (ChargeResult, error) {
	var res ChargeResult
	err := c.do(ctx, http.MethodPost, "/v1/payments", chargeRequest{
		PatronID:    patronID,
		Amount:      model.NewMoney(amount),
		Description: description,
	}, &res)
	return res, err
}

func (c *Client) RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal) (RefundResult, error) {
	var res RefundResult
	err := c.do(ctx, http.MethodPost, "/v1/payments/"+url.PathEscape(transactionID)+"/refund", refundRequest{
		Amount: model.NewMoney(amount),
	}, &res)
	return res, err
}

func (c *Client) VerifyPaymentStatus(ctx context.Context, transactionID string) (model.PaymentStatus, error) {
	var resp statusResponse
	err := c.do(ctx, http.MethodGet, "/v1/payments/"+url.PathEscape(transactionID), nil, &resp)
	if err != nil {
		return model.PaymentStatus{}, err
	}
	if resp.TransactionID == "" {
		resp.TransactionID = transactionID
	}
	return model.PaymentStatus{
		TransactionID: resp.TransactionID,
		Status:        resp.Status,
		Amount:        resp.Amount,
		Timestamp:     resp.Timestamp,
		Message:       resp.Message,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	return c.cb.Call(func() error {
		var rd *bytes.Buffer
		if body != nil {
			rd = bytes.NewBuffer(nil)
			if err := json.NewEncoder(rd).Encode(body); err != nil {
				return errors.Wrap(err, "encode request")
			}
		}
		var req *http.Request
		var err error
		if rd != nil {
			req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
		} else {
			req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
		}
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			c.log.Warn("provider request", zap.String("path", path), zap.Error(err))
			return errors.Wrap(ErrUnavailable, err.Error())
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return errors.Wrap(ErrUnavailable, fmt.Sprintf("status %d", resp.StatusCode))
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "decode %s response (status %d)", path, resp.StatusCode)
		}
		return nil
	})
}
