package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// IDGenerator returns a fresh unique identifier on every call.
type IDGenerator func() string

// RoundCents rounds half away from zero to two decimal places.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// DateOnly drops the time of day, keeping t's location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalendarDate keeps t's year, month and day and places them at midnight in
// loc without converting the instant. Values read from DATE columns go
// through here, never through In.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// AddMonths moves t forward by the given number of calendar months. When the
// target month is shorter, the day is clamped to its last day, so Jan 31 + 1
// month is Feb 28 (or 29).
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := time.Date(target.Year(), target.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > lastDay {
		d = lastDay
	}
	hh, mm, ss := t.Clock()
	return time.Date(target.Year(), target.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// NextPeriod is the conventional start of the next monthly period for a bill due on dueDate.
func NextPeriod(dueDate time.Time) time.Time {
	return AddMonths(dueDate, 1)
}

// SignedAmount returns the transaction amount as a cash flow: positive for
// income, negative for expenses.
func SignedAmount(txn domain.FinancialTransaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.TransactionIncome:
		return txn.Amount, nil
	case domain.TransactionExpense:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s' for transaction %s", txn.Type, txn.ID)
	}
}

// NetCashFlow sums the signed amounts of paid transactions.
func NetCashFlow(txns []domain.FinancialTransaction) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, txn := range txns {
		if txn.Status != domain.TransactionPaid {
			continue
		}
		signed, err := SignedAmount(txn)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(signed)
	}
	return sum, nil
}
