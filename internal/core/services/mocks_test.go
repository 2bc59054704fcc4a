package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func userOrNil(args mock.Arguments) (*domain.User, error) {
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return userOrNil(m.Called(ctx, userID))
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return userOrNil(m.Called(ctx, username))
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return userOrNil(m.Called(ctx, email))
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	return userOrNil(m.Called(ctx, authProvider, providerUserID))
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	var c *domain.Customer
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Customer)
	}
	return c, args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, filter portsrepo.CustomerListFilter) ([]domain.Customer, error) {
	args := m.Called(ctx, filter)
	var cs []domain.Customer
	if args.Get(0) != nil {
		cs = args.Get(0).([]domain.Customer)
	}
	return cs, args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

// --- Mock ServiceOrderRepository ---
type MockServiceOrderRepository struct {
	mock.Mock
}

var _ portsrepo.ServiceOrderRepositoryFacade = (*MockServiceOrderRepository)(nil)

func (m *MockServiceOrderRepository) FindServiceOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, orderID)
	var o *domain.ServiceOrder
	if args.Get(0) != nil {
		o = args.Get(0).(*domain.ServiceOrder)
	}
	return o, args.Error(1)
}

func (m *MockServiceOrderRepository) ListServiceOrders(ctx context.Context, filter portsrepo.ServiceOrderListFilter) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, filter)
	var os []domain.ServiceOrder
	if args.Get(0) != nil {
		os = args.Get(0).([]domain.ServiceOrder)
	}
	return os, args.Error(1)
}

func (m *MockServiceOrderRepository) SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockServiceOrderRepository) UpdateServiceOrderStatus(ctx context.Context, orderID string, status domain.ServiceOrderStatus, updatedAt time.Time, updatedBy string) error {
	return m.Called(ctx, orderID, status, updatedAt, updatedBy).Error(0)
}

func (m *MockServiceOrderRepository) SaveSettlement(ctx context.Context, order domain.ServiceOrder, txns []domain.FinancialTransaction) error {
	return m.Called(ctx, order, txns).Error(0)
}

// --- Mock FinancialTransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.FinancialTransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error) {
	args := m.Called(ctx, transactionID)
	var t *domain.FinancialTransaction
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.FinancialTransaction)
	}
	return t, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.FinancialTransaction, *string, error) {
	args := m.Called(ctx, filter)
	var ts []domain.FinancialTransaction
	if args.Get(0) != nil {
		ts = args.Get(0).([]domain.FinancialTransaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return ts, next, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, txn domain.FinancialTransaction) error {
	return m.Called(ctx, txn).Error(0)
}

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

var _ portsrepo.BillRepositoryFacade = (*MockBillRepository)(nil)

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	var b *domain.Bill
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Bill)
	}
	return b, args.Error(1)
}

func (m *MockBillRepository) ListBills(ctx context.Context, filter portsrepo.BillListFilter) ([]domain.Bill, error) {
	args := m.Called(ctx, filter)
	var bs []domain.Bill
	if args.Get(0) != nil {
		bs = args.Get(0).([]domain.Bill)
	}
	return bs, args.Error(1)
}

func (m *MockBillRepository) FindPendingBills(ctx context.Context) ([]domain.Bill, error) {
	args := m.Called(ctx)
	var bs []domain.Bill
	if args.Get(0) != nil {
		bs = args.Get(0).([]domain.Bill)
	}
	return bs, args.Error(1)
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *MockBillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *MockBillRepository) MarkBillsOverdue(ctx context.Context, billIDs []string, updatedAt time.Time, updatedBy string) (int64, error) {
	args := m.Called(ctx, billIDs, updatedAt, updatedBy)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock DashboardRepository ---
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetDashboardSummary(ctx context.Context, from, to time.Time) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, from, to)
	var s *domain.DashboardSummary
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.DashboardSummary)
	}
	return s, args.Error(1)
}
