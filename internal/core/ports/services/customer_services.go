package services

import (
	"context"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
)

type CustomerReaderSvc interface {
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error)
}

type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)
}

type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
