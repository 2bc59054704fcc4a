package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes income from expenses.
type TransactionType string

const (
	TransactionIncome  TransactionType = "receita"
	TransactionExpense TransactionType = "despesa"
)

// TransactionStatus is the settlement status of a financial transaction.
type TransactionStatus string

const (
	TransactionPaid    TransactionStatus = "pago"
	TransactionPending TransactionStatus = "pendente"
)

// CategoryServices is the category every service order settlement is booked under.
const CategoryServices = "serviços"

// FinancialTransaction is a single receivable or payable entry.
type FinancialTransaction struct {
	ID            string
	Date          time.Time
	Description   string
	Category      string
	Amount        decimal.Decimal
	Type          TransactionType
	PaymentMethod PaymentMethod
	Status        TransactionStatus
	DueDate       *time.Time
	PaymentDate   *time.Time
	RelatedID     string
	Notes         string
	AuditFields
}

// InstallmentLine is one entry of an installment schedule. Index is 1-based.
type InstallmentLine struct {
	Index   int
	DueDate time.Time
	Amount  decimal.Decimal
}
