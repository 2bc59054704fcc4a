package dto

import (
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceOrderRequest opens a repair job.
type CreateServiceOrderRequest struct {
	CustomerID         string          `json:"customerID" binding:"required"`
	Bicycle            string          `json:"bicycle" binding:"required"`
	ProblemDescription string          `json:"problemDescription"`
	TotalPrice         decimal.Decimal `json:"totalPrice" binding:"gte=0"`
}

// UpdateServiceOrderStatusRequest moves an order between open states.
// Completion goes through the complete endpoint instead.
type UpdateServiceOrderStatusRequest struct {
	Status domain.ServiceOrderStatus `json:"status" binding:"required,oneof=aberta em_andamento cancelada"`
}

// CompleteServiceOrderRequest carries the settlement terms agreed with the customer.
type CompleteServiceOrderRequest struct {
	PaymentMethod        domain.PaymentMethod `json:"paymentMethod" binding:"required,paymentmethod"`
	TotalPrice           *decimal.Decimal     `json:"totalPrice" binding:"omitempty,gte=0"`
	DownPayment          *decimal.Decimal     `json:"downPayment" binding:"omitempty,gte=0"`
	InstallmentCount     *int                 `json:"installmentCount" binding:"omitempty,min=1,max=48"`
	FirstInstallmentDate string               `json:"firstInstallmentDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListServiceOrdersParams defines query parameters for listing orders.
type ListServiceOrdersParams struct {
	Status     domain.ServiceOrderStatus `form:"status" binding:"omitempty,oneof=aberta em_andamento concluida cancelada"`
	CustomerID string                    `form:"customerID"`
	Limit      int                       `form:"limit,default=20"`
	Offset     int                       `form:"offset,default=0"`
}

type ServiceOrderResponse struct {
	ServiceOrderID       string                    `json:"serviceOrderID"`
	CustomerID           string                    `json:"customerID"`
	Bicycle              string                    `json:"bicycle"`
	ProblemDescription   string                    `json:"problemDescription"`
	Status               domain.ServiceOrderStatus `json:"status"`
	TotalPrice           decimal.Decimal           `json:"totalPrice"`
	PaymentMethod        *domain.PaymentMethod     `json:"paymentMethod,omitempty"`
	DownPayment          *decimal.Decimal          `json:"downPayment,omitempty"`
	InstallmentCount     *int                      `json:"installmentCount,omitempty"`
	FirstInstallmentDate *string                   `json:"firstInstallmentDate,omitempty"`
	CompletedAt          *time.Time                `json:"completedAt,omitempty"`
	CreatedAt            time.Time                 `json:"createdAt"`
	CreatedBy            string                    `json:"createdBy"`
}

// CompleteServiceOrderResponse returns the closed order with the receivables generated for it.
type CompleteServiceOrderResponse struct {
	ServiceOrder ServiceOrderResponse  `json:"serviceOrder"`
	Transactions []TransactionResponse `json:"transactions"`
}

func ToServiceOrderResponse(o *domain.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ServiceOrderID:       o.ID,
		CustomerID:           o.CustomerID,
		Bicycle:              o.Bicycle,
		ProblemDescription:   o.ProblemDescription,
		Status:               o.Status,
		TotalPrice:           o.TotalPrice,
		PaymentMethod:        o.PaymentMethod,
		DownPayment:          o.DownPayment,
		InstallmentCount:     o.InstallmentCount,
		FirstInstallmentDate: formatDatePtr(o.FirstInstallmentDate),
		CompletedAt:          o.CompletedAt,
		CreatedAt:            o.CreatedAt,
		CreatedBy:            o.CreatedBy,
	}
}

func ToServiceOrderResponses(orders []domain.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, len(orders))
	for i := range orders {
		out[i] = ToServiceOrderResponse(&orders[i])
	}
	return out
}
