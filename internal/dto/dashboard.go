package dto

import (
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardParams bounds the dashboard period; both default to the current month.
type DashboardParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type DashboardResponse struct {
	From               string                            `json:"from"`
	To                 string                            `json:"to"`
	ReceivedRevenue    decimal.Decimal                   `json:"receivedRevenue"`
	PendingReceivables decimal.Decimal                   `json:"pendingReceivables"`
	PaidExpenses       decimal.Decimal                   `json:"paidExpenses"`
	PendingBills       decimal.Decimal                   `json:"pendingBills"`
	OverdueBills       decimal.Decimal                   `json:"overdueBills"`
	Balance            decimal.Decimal                   `json:"balance"`
	OrdersByStatus     map[domain.ServiceOrderStatus]int `json:"ordersByStatus"`
}

func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		From:               s.From.Format(DateLayout),
		To:                 s.To.Format(DateLayout),
		ReceivedRevenue:    s.ReceivedRevenue,
		PendingReceivables: s.PendingReceivables,
		PaidExpenses:       s.PaidExpenses,
		PendingBills:       s.PendingBills,
		OverdueBills:       s.OverdueBills,
		Balance:            s.Balance(),
		OrdersByStatus:     s.OrdersByStatus,
	}
}
