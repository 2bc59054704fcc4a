package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/pagination"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade, opts ...ServiceOption) portssvc.CustomerSvcFacade {
	return &customerService{
		BaseService:  newBaseService(opts...),
		customerRepo: repo,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error) {
	limit := pagination.ClampLimit(params.Limit)
	filter := portsrepo.CustomerListFilter{
		Search: strings.TrimSpace(params.Search),
		// one extra row tells us whether there is a next page
		Limit: limit + 1,
	}
	if params.NextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(params.NextToken, 2)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		filter.AfterName, filter.AfterID = fields[0], fields[1]
	}

	customers, err := s.customerRepo.ListCustomers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	var nextToken *string
	if len(customers) > limit {
		customers = customers[:limit]
		last := customers[limit-1]
		token := pagination.EncodeMultiFieldToken(last.Name, last.ID)
		nextToken = &token
	}
	resp := dto.ToListCustomersResponse(customers, nextToken)
	return &resp, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}

	now := s.Now()
	customer := domain.Customer{
		ID:       s.NewID(),
		Name:     name,
		Phone:    strings.TrimSpace(req.Phone),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Document: strings.TrimSpace(req.Document),
		Notes:    req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer")
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.ID))
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer %s: %w", customerID, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: customer name cannot be empty", apperrors.ErrValidation)
		}
		customer.Name = name
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		customer.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Document != nil {
		customer.Document = strings.TrimSpace(*req.Document)
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	customer.LastUpdatedAt = s.Now()
	customer.LastUpdatedBy = userID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}
