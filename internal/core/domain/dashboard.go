package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates the shop's financial position over a period.
type DashboardSummary struct {
	From               time.Time
	To                 time.Time
	ReceivedRevenue    decimal.Decimal
	PendingReceivables decimal.Decimal
	PaidExpenses       decimal.Decimal
	PendingBills       decimal.Decimal
	OverdueBills       decimal.Decimal
	OrdersByStatus     map[ServiceOrderStatus]int
}

// Balance is received revenue minus paid expenses.
func (d DashboardSummary) Balance() decimal.Decimal {
	return d.ReceivedRevenue.Sub(d.PaidExpenses)
}
