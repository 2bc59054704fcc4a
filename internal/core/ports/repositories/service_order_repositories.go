package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
)

// ServiceOrderListFilter narrows a service order listing.
type ServiceOrderListFilter struct {
	Status     domain.ServiceOrderStatus
	CustomerID string
	Limit      int
	Offset     int
}

type ServiceOrderReader interface {
	FindServiceOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error)
	ListServiceOrders(ctx context.Context, filter ServiceOrderListFilter) ([]domain.ServiceOrder, error)
}

type ServiceOrderWriter interface {
	SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error
	UpdateServiceOrderStatus(ctx context.Context, orderID string, status domain.ServiceOrderStatus, updatedAt time.Time, updatedBy string) error
}

// ServiceOrderSettler persists the completion of an order.
type ServiceOrderSettler interface {
	// SaveSettlement stores the completed order and its generated transactions
	// in one database transaction. The order row is only updated while it is
	// not yet completed; if it already is, nothing is written and
	// apperrors.ErrDuplicate is returned, so receivables are generated at most
	// once per order.
	SaveSettlement(ctx context.Context, order domain.ServiceOrder, txns []domain.FinancialTransaction) error
}

type ServiceOrderRepositoryFacade interface {
	ServiceOrderReader
	ServiceOrderWriter
	ServiceOrderSettler
}
