package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialTransaction is a row of the financial_transactions table.
type FinancialTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType string          `db:"transaction_type"`
	PaymentMethod   string          `db:"payment_method"`
	Status          string          `db:"status"`
	DueDate         *time.Time      `db:"due_date"`
	PaymentDate     *time.Time      `db:"payment_date"`
	RelatedID       string          `db:"related_id"`
	Notes           string          `db:"notes"`
	AuditFields
}
