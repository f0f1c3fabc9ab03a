// Package payment holds the adapters for the external payment provider.
package payment

import (
	"strings"

	"github.com/pkg/errors"
)

const TransactionPrefix = "txn_"

// ChargeResult is the provider's answer to a charge. Success false is a
// decline and Message carries the provider's reason.
type ChargeResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

type RefundResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

var ErrUnavailable = errors.New("payment provider unavailable")

func ValidTransactionID(id string) bool {
	return strings.HasPrefix(id, TransactionPrefix)
}
