// Package fee holds the late-fee schedule. Every code path that prices an
// overdue loan goes through Calculate so return, fee query and patron status
// can never disagree.
package fee

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// LoanPeriod is the time between borrow and due date.
	LoanPeriod = 14 * 24 * time.Hour
	// FirstTierDays are charged at FirstTierRate, later days at SecondTierRate.
	FirstTierDays = 7

	day = 24 * time.Hour
)

var (
	FirstTierRate  = decimal.RequireFromString("0.50")
	SecondTierRate = decimal.RequireFromString("1.00")
	// MaxFee caps the fee of a single loan.
	MaxFee = decimal.RequireFromString("15.00")
)

// Fee maps whole overdue days to the penalty. Negative input is treated as zero.
func Fee(daysOverdue int) decimal.Decimal {
	if daysOverdue <= 0 {
		return decimal.Zero
	}
	first := daysOverdue
	if first > FirstTierDays {
		first = FirstTierDays
	}
	amount := FirstTierRate.Mul(decimal.NewFromInt(int64(first)))
	if rest := daysOverdue - FirstTierDays; rest > 0 {
		amount = amount.Add(SecondTierRate.Mul(decimal.NewFromInt(int64(rest))))
	}
	return decimal.Min(amount, MaxFee)
}

// DaysOverdue counts whole days elapsed past due; zero when now <= due.
func DaysOverdue(due, now time.Time) int {
	if !now.After(due) {
		return 0
	}
	return int(now.Sub(due) / day)
}

// Calculate returns the overdue days and the fee for a loan due at due, as of now.
func Calculate(due, now time.Time) (int, decimal.Decimal) {
	days := DaysOverdue(due, now)
	return days, Fee(days)
}

// DueDate is the due instant of a loan started at borrowedAt.
func DueDate(borrowedAt time.Time) time.Time {
	return borrowedAt.Add(LoanPeriod)
}

// Format renders an amount the way it is shown to patrons.
func Format(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
