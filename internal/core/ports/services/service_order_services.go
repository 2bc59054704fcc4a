package services

import (
	"context"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
)

type ServiceOrderReaderSvc interface {
	GetServiceOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error)
	ListServiceOrders(ctx context.Context, params dto.ListServiceOrdersParams) ([]domain.ServiceOrder, error)
}

type ServiceOrderWriterSvc interface {
	CreateServiceOrder(ctx context.Context, req dto.CreateServiceOrderRequest, userID string) (*domain.ServiceOrder, error)
	UpdateServiceOrderStatus(ctx context.Context, orderID string, status domain.ServiceOrderStatus, userID string) (*domain.ServiceOrder, error)
}

// ServiceOrderSettlementSvc closes orders and books their receivables.
type ServiceOrderSettlementSvc interface {
	// CompleteServiceOrder marks the order as concluida and records the
	// financial transactions derived from the settlement terms. A second call
	// for the same order fails with apperrors.ErrDuplicate.
	CompleteServiceOrder(ctx context.Context, orderID string, req dto.CompleteServiceOrderRequest, userID string) (*domain.ServiceOrder, []domain.FinancialTransaction, error)
}

type ServiceOrderSvcFacade interface {
	ServiceOrderReaderSvc
	ServiceOrderWriterSvc
	ServiceOrderSettlementSvc
}
