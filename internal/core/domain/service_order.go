package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrderStatus tracks a repair job through the workshop.
type ServiceOrderStatus string

const (
	OrderOpen       ServiceOrderStatus = "aberta"
	OrderInProgress ServiceOrderStatus = "em_andamento"
	OrderCompleted  ServiceOrderStatus = "concluida"
	OrderCancelled  ServiceOrderStatus = "cancelada"
)

// IsValid reports whether s is a known order status.
func (s ServiceOrderStatus) IsValid() bool {
	switch s {
	case OrderOpen, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// ServiceOrder is a bicycle repair job for a customer.
type ServiceOrder struct {
	ID                   string
	CustomerID           string
	Bicycle              string
	ProblemDescription   string
	Status               ServiceOrderStatus
	TotalPrice           decimal.Decimal
	PaymentMethod        *PaymentMethod
	DownPayment          *decimal.Decimal
	InstallmentCount     *int
	FirstInstallmentDate *time.Time
	CompletedAt          *time.Time
	AuditFields
}

// ServiceOrderSettlement is the payment information captured when an order
// is completed. It is the input of the transaction deriver.
type ServiceOrderSettlement struct {
	OrderID              string
	CustomerLabel        string
	TotalPrice           decimal.Decimal
	PaymentMethod        PaymentMethod
	CreatedAt            time.Time
	DownPayment          *decimal.Decimal
	InstallmentCount     *int
	FirstInstallmentDate *time.Time
}
