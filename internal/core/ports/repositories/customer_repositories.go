package repositories

import (
	"context"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
)

// CustomerListFilter narrows a customer listing. Customers are ordered by
// name then id; AfterName/AfterID resume after a previous page.
type CustomerListFilter struct {
	Search    string
	Limit     int
	AfterName string
	AfterID   string
}

type CustomerReader interface {
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, filter CustomerListFilter) ([]domain.Customer, error)
}

type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
