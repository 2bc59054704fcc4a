package accounting

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInstallmentCount is returned when a plan is requested with fewer than one installment.
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 1")
	// ErrInvalidSettlementAmount is returned when a settlement total is negative.
	ErrInvalidSettlementAmount = errors.New("settlement amount must not be negative")
	// ErrInvalidRecurrencePeriod is returned when a duplicated bill would not move forward in time.
	ErrInvalidRecurrencePeriod = errors.New("next period must be after the original due date")
)

// InvalidInstallmentCountError carries the rejected count.
type InvalidInstallmentCountError struct {
	Count int
}

func (e *InvalidInstallmentCountError) Error() string {
	return fmt.Sprintf("%s: got %d", ErrInvalidInstallmentCount, e.Count)
}

func (e *InvalidInstallmentCountError) Unwrap() []error {
	return []error{ErrInvalidInstallmentCount, apperrors.ErrValidation}
}

// InvalidSettlementAmountError carries the order whose total was rejected.
type InvalidSettlementAmountError struct {
	OrderID string
	Total   decimal.Decimal
}

func (e *InvalidSettlementAmountError) Error() string {
	return fmt.Sprintf("%s: order %s has total %s", ErrInvalidSettlementAmount, e.OrderID, e.Total.StringFixed(2))
}

func (e *InvalidSettlementAmountError) Unwrap() []error {
	return []error{ErrInvalidSettlementAmount, apperrors.ErrValidation}
}

// InvalidRecurrencePeriodError carries the bill and the dates involved.
type InvalidRecurrencePeriodError struct {
	BillID          string
	DueDate         string
	NextPeriodStart string
}

func (e *InvalidRecurrencePeriodError) Error() string {
	return fmt.Sprintf("%s: bill %s is due %s, next period starts %s", ErrInvalidRecurrencePeriod, e.BillID, e.DueDate, e.NextPeriodStart)
}

func (e *InvalidRecurrencePeriodError) Unwrap() []error {
	return []error{ErrInvalidRecurrencePeriod, apperrors.ErrValidation}
}
