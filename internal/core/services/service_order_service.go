package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/accounting"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/pagination"
)

type serviceOrderService struct {
	BaseService
	orderRepo    portsrepo.ServiceOrderRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewServiceOrderService creates a new ServiceOrderService.
func NewServiceOrderService(
	orderRepo portsrepo.ServiceOrderRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	opts ...ServiceOption,
) portssvc.ServiceOrderSvcFacade {
	return &serviceOrderService{
		BaseService:  newBaseService(opts...),
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

var _ portssvc.ServiceOrderSvcFacade = (*serviceOrderService)(nil)

func (s *serviceOrderService) GetServiceOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	order, err := s.orderRepo.FindServiceOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service order %s: %w", orderID, err)
	}
	return order, nil
}

func (s *serviceOrderService) ListServiceOrders(ctx context.Context, params dto.ListServiceOrdersParams) ([]domain.ServiceOrder, error) {
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	orders, err := s.orderRepo.ListServiceOrders(ctx, portsrepo.ServiceOrderListFilter{
		Status:     params.Status,
		CustomerID: params.CustomerID,
		Limit:      pagination.ClampLimit(params.Limit),
		Offset:     offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list service orders")
		return nil, fmt.Errorf("failed to list service orders: %w", err)
	}
	return orders, nil
}

func (s *serviceOrderService) CreateServiceOrder(ctx context.Context, req dto.CreateServiceOrderRequest, userID string) (*domain.ServiceOrder, error) {
	if req.TotalPrice.IsNegative() {
		return nil, fmt.Errorf("%w: total price cannot be negative", apperrors.ErrValidation)
	}
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, fmt.Errorf("failed to verify customer: %w", err)
	}

	now := s.Now()
	order := domain.ServiceOrder{
		ID:                 s.NewID(),
		CustomerID:         req.CustomerID,
		Bicycle:            strings.TrimSpace(req.Bicycle),
		ProblemDescription: req.ProblemDescription,
		Status:             domain.OrderOpen,
		TotalPrice:         accounting.RoundCents(req.TotalPrice),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.orderRepo.SaveServiceOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save service order")
		return nil, fmt.Errorf("failed to create service order: %w", err)
	}
	s.LogInfo(ctx, "Service order opened", slog.String("service_order_id", order.ID))
	return &order, nil
}

func (s *serviceOrderService) UpdateServiceOrderStatus(ctx context.Context, orderID string, status domain.ServiceOrderStatus, userID string) (*domain.ServiceOrder, error) {
	if !status.IsValid() || status == domain.OrderCompleted {
		return nil, fmt.Errorf("%w: status %q cannot be set directly", apperrors.ErrValidation, status)
	}

	order, err := s.orderRepo.FindServiceOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service order %s: %w", orderID, err)
	}
	if order.Status == domain.OrderCompleted {
		return nil, fmt.Errorf("%w: service order %s is already completed", apperrors.ErrValidation, orderID)
	}

	now := s.Now()
	if err := s.orderRepo.UpdateServiceOrderStatus(ctx, orderID, status, now, userID); err != nil {
		s.LogError(ctx, err, "Failed to update service order status", slog.String("service_order_id", orderID))
		return nil, fmt.Errorf("failed to update service order status: %w", err)
	}
	order.Status = status
	order.LastUpdatedAt = now
	order.LastUpdatedBy = userID
	return order, nil
}

func (s *serviceOrderService) CompleteServiceOrder(ctx context.Context, orderID string, req dto.CompleteServiceOrderRequest, userID string) (*domain.ServiceOrder, []domain.FinancialTransaction, error) {
	logger := s.GetLogger(ctx).With(slog.String("service_order_id", orderID))

	if !req.PaymentMethod.IsValid() {
		return nil, nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}

	order, err := s.orderRepo.FindServiceOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load service order %s: %w", orderID, err)
	}
	switch order.Status {
	case domain.OrderCompleted:
		return nil, nil, apperrors.NewConflictError(fmt.Sprintf("service order %s is already completed", orderID))
	case domain.OrderCancelled:
		return nil, nil, fmt.Errorf("%w: service order %s is cancelled", apperrors.ErrValidation, orderID)
	}

	customerLabel := order.CustomerID
	customer, err := s.customerRepo.FindCustomerByID(ctx, order.CustomerID)
	switch {
	case err == nil:
		customerLabel = customer.Name
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Customer of service order not found, using its id as label", slog.String("customer_id", order.CustomerID))
	default:
		return nil, nil, fmt.Errorf("failed to load customer of service order: %w", err)
	}

	total := order.TotalPrice
	if req.TotalPrice != nil {
		total = accounting.RoundCents(*req.TotalPrice)
	}

	settlement := domain.ServiceOrderSettlement{
		OrderID:       order.ID,
		CustomerLabel: customerLabel,
		TotalPrice:    total,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     order.CreatedAt.In(s.Location()),
	}
	if req.PaymentMethod == domain.PaymentStoreCredit {
		first, err := dto.ParseDate(req.FirstInstallmentDate, s.Location())
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if (req.InstallmentCount == nil) != (first == nil) {
			return nil, nil, fmt.Errorf("%w: installmentCount and firstInstallmentDate must be given together", apperrors.ErrValidation)
		}
		if req.DownPayment != nil && req.DownPayment.GreaterThan(total) {
			return nil, nil, fmt.Errorf("%w: down payment exceeds the total price", apperrors.ErrValidation)
		}
		settlement.DownPayment = req.DownPayment
		settlement.InstallmentCount = req.InstallmentCount
		settlement.FirstInstallmentDate = first
	}

	txns, err := accounting.DeriveSettlementTransactions(settlement, s.Today(), s.NewID)
	if err != nil {
		logger.Warn("Rejected settlement terms", slog.String("error", err.Error()))
		return nil, nil, err
	}

	now := s.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	for i := range txns {
		txns[i].AuditFields = audit
	}

	method := req.PaymentMethod
	order.Status = domain.OrderCompleted
	order.TotalPrice = total
	order.PaymentMethod = &method
	order.DownPayment = settlement.DownPayment
	order.InstallmentCount = settlement.InstallmentCount
	order.FirstInstallmentDate = settlement.FirstInstallmentDate
	order.CompletedAt = &now
	order.LastUpdatedAt = now
	order.LastUpdatedBy = userID

	if err := s.orderRepo.SaveSettlement(ctx, *order, txns); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, nil, apperrors.NewAppError(http.StatusConflict, fmt.Sprintf("service order %s is already completed", orderID), err)
		}
		s.LogError(ctx, err, "Failed to persist settlement", slog.String("service_order_id", orderID))
		return nil, nil, fmt.Errorf("failed to complete service order: %w", err)
	}

	logger.Info("Service order completed",
		slog.String("payment_method", string(req.PaymentMethod)),
		slog.Int("transactions", len(txns)),
		slog.String("total", total.StringFixed(2)))
	return order, txns, nil
}
