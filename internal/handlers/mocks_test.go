package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
)

// --- Mock ServiceOrderService ---
type MockServiceOrderService struct {
	mock.Mock
}

func (m *MockServiceOrderService) GetServiceOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderService) ListServiceOrders(ctx context.Context, params dto.ListServiceOrdersParams) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderService) CreateServiceOrder(ctx context.Context, req dto.CreateServiceOrderRequest, userID string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderService) UpdateServiceOrderStatus(ctx context.Context, orderID string, status domain.ServiceOrderStatus, userID string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, orderID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderService) CompleteServiceOrder(ctx context.Context, orderID string, req dto.CompleteServiceOrderRequest, userID string) (*domain.ServiceOrder, []domain.FinancialTransaction, error) {
	args := m.Called(ctx, orderID, req, userID)
	var order *domain.ServiceOrder
	if v := args.Get(0); v != nil {
		order = v.(*domain.ServiceOrder)
	}
	var txns []domain.FinancialTransaction
	if v := args.Get(1); v != nil {
		txns = v.([]domain.FinancialTransaction)
	}
	return order, txns, args.Error(2)
}

var _ portssvc.ServiceOrderSvcFacade = (*MockServiceOrderService)(nil)

// --- Mock BillService ---
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) ListBills(ctx context.Context, params dto.ListBillsParams) ([]domain.Bill, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillService) CreateBill(ctx context.Context, req dto.CreateBillRequest, userID string) (*domain.Bill, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) PayBill(ctx context.Context, billID string, req dto.PayBillRequest, userID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) CancelBill(ctx context.Context, billID string, userID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) DuplicateBill(ctx context.Context, billID string, req dto.DuplicateBillRequest, userID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) SweepOverdue(ctx context.Context, userID string) (*accounting.SweepResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.SweepResult), args.Error(1)
}

var _ portssvc.BillSvcFacade = (*MockBillService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateOAuthUser(ctx context.Context, name, email, authProvider, providerUserID string, emailVerified bool) (*domain.User, error) {
	args := m.Called(ctx, name, email, authProvider, providerUserID, emailVerified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)
