package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/platform/clock"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillServiceTestSuite struct {
	suite.Suite
	mockBillRepo *MockBillRepository
	service      portssvc.BillSvcFacade
	ctx          context.Context
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockBillRepository)
	suite.service = services.NewBillService(suite.mockBillRepo, testOptions()...)
	suite.ctx = context.Background()
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var saoPaulo = time.FixedZone("BRT", -3*60*60)

// businessZoneService runs on a clock west of UTC while the repository hands
// back dates as UTC midnight, the way DATE columns are scanned.
func (suite *BillServiceTestSuite) businessZoneService(now time.Time) portssvc.BillSvcFacade {
	return services.NewBillService(suite.mockBillRepo,
		services.WithClock(clock.Fixed{T: now}),
		services.WithIDGenerator(sequentialIDs()),
	)
}

// --- CreateBill Tests ---

func (suite *BillServiceTestSuite) TestCreateBill_SalaryUsesNetAmount() {
	suite.mockBillRepo.On("SaveBill", mock.Anything, mock.MatchedBy(func(b domain.Bill) bool {
		return b.Kind == domain.BillSalary && b.Salary != nil && b.Amount.Equal(dec("2350.50"))
	})).Return(nil).Once()

	bill, err := suite.service.CreateBill(suite.ctx, dto.CreateBillRequest{
		Description: "Salário março - Pedro",
		Kind:        domain.BillSalary,
		DueDate:     "2024-04-05",
		Recurring:   true,
		Salary: &dto.SalaryRequest{
			EmployeeName: "Pedro",
			BaseSalary:   dec("2200"),
			Bonuses:      dec("300.50"),
			Deductions:   dec("150"),
		},
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("id-1", bill.ID)
	suite.Equal(domain.BillPending, bill.Status)
	suite.Equal(day(2024, 4, 5), bill.DueDate)
	suite.Equal("salários", bill.Category)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_SalaryWithoutDetails() {
	_, err := suite.service.CreateBill(suite.ctx, dto.CreateBillRequest{
		Description: "Salário",
		Kind:        domain.BillSalary,
		DueDate:     "2024-04-05",
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateBill_GenericRequiresAmount() {
	_, err := suite.service.CreateBill(suite.ctx, dto.CreateBillRequest{
		Description: "Aluguel",
		Kind:        domain.BillGeneric,
		DueDate:     "2024-04-05",
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- DuplicateBill Tests ---

func (suite *BillServiceTestSuite) TestDuplicateBill_DefaultsToNextMonth() {
	original := &domain.Bill{
		ID:          "bill-jan",
		Description: "Aluguel",
		Kind:        domain.BillGeneric,
		Amount:      dec("1800"),
		DueDate:     day(2024, 1, 31),
		Status:      domain.BillPaid,
		Recurring:   true,
	}
	paidOn := day(2024, 1, 30)
	original.PaymentDate = &paidOn
	suite.mockBillRepo.On("FindBillByID", mock.Anything, "bill-jan").Return(original, nil).Once()
	suite.mockBillRepo.On("SaveBill", mock.Anything, mock.AnythingOfType("domain.Bill")).Return(nil).Once()

	dup, err := suite.service.DuplicateBill(suite.ctx, "bill-jan", dto.DuplicateBillRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("id-1", dup.ID)
	suite.Equal(day(2024, 2, 29), dup.DueDate)
	suite.Equal(domain.BillPending, dup.Status)
	suite.Nil(dup.PaymentDate)
	suite.Require().NotNil(dup.ParentBillID)
	suite.Equal("bill-jan", *dup.ParentBillID)
	suite.True(dup.Amount.Equal(original.Amount))
	suite.Equal(testNow, dup.CreatedAt)
	suite.Equal("user-1", dup.CreatedBy)
}

func (suite *BillServiceTestSuite) TestDuplicateBill_ExplicitDateMustBeLater() {
	original := &domain.Bill{ID: "bill-1", DueDate: day(2024, 3, 15), Status: domain.BillPending}
	suite.mockBillRepo.On("FindBillByID", mock.Anything, "bill-1").Return(original, nil).Once()

	_, err := suite.service.DuplicateBill(suite.ctx, "bill-1", dto.DuplicateBillRequest{NextDueDate: "2024-03-15"}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, accounting.ErrInvalidRecurrencePeriod)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestDuplicateBill_CopiesSalary() {
	original := &domain.Bill{
		ID:      "sal-1",
		Kind:    domain.BillSalary,
		DueDate: day(2024, 3, 5),
		Salary:  &domain.SalaryDetails{EmployeeName: "Pedro", BaseSalary: dec("2000")},
	}
	suite.mockBillRepo.On("FindBillByID", mock.Anything, "sal-1").Return(original, nil).Once()
	suite.mockBillRepo.On("SaveBill", mock.Anything, mock.Anything).Return(nil).Once()

	dup, err := suite.service.DuplicateBill(suite.ctx, "sal-1", dto.DuplicateBillRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(dup.Salary)
	suite.NotSame(original.Salary, dup.Salary)
	suite.Equal("Pedro", dup.Salary.EmployeeName)
}

func (suite *BillServiceTestSuite) TestDuplicateBill_SameCalendarDayInBusinessZone() {
	svc := suite.businessZoneService(time.Date(2024, 3, 10, 10, 0, 0, 0, saoPaulo))
	original := &domain.Bill{ID: "bill-1", DueDate: day(2024, 3, 15), Status: domain.BillPending}
	suite.mockBillRepo.On("FindBillByID", mock.Anything, "bill-1").Return(original, nil).Once()

	_, err := svc.DuplicateBill(suite.ctx, "bill-1", dto.DuplicateBillRequest{NextDueDate: "2024-03-15"}, "user-1")

	suite.ErrorIs(err, accounting.ErrInvalidRecurrencePeriod)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestDuplicateBill_NextMonthInBusinessZone() {
	svc := suite.businessZoneService(time.Date(2024, 3, 10, 10, 0, 0, 0, saoPaulo))
	original := &domain.Bill{ID: "bill-1", DueDate: day(2024, 3, 15), Status: domain.BillPaid}
	suite.mockBillRepo.On("FindBillByID", mock.Anything, "bill-1").Return(original, nil).Once()
	suite.mockBillRepo.On("SaveBill", mock.Anything, mock.AnythingOfType("domain.Bill")).Return(nil).Once()

	dup, err := svc.DuplicateBill(suite.ctx, "bill-1", dto.DuplicateBillRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 4, 15, 0, 0, 0, 0, saoPaulo), dup.DueDate)
	suite.Equal(day(2024, 3, 15), original.DueDate, "loaded bill must not be modified")
}

// --- SweepOverdue Tests ---

func (suite *BillServiceTestSuite) TestSweepOverdue_PersistsOnlyChanged() {
	pending := []domain.Bill{
		{ID: "late", Status: domain.BillPending, DueDate: day(2024, 3, 9)},
		{ID: "today", Status: domain.BillPending, DueDate: day(2024, 3, 10)},
		{ID: "nodate", Status: domain.BillPending},
		{ID: "older", Status: domain.BillPending, DueDate: day(2024, 1, 1)},
	}
	suite.mockBillRepo.On("FindPendingBills", mock.Anything).Return(pending, nil).Once()
	suite.mockBillRepo.On("MarkBillsOverdue", mock.Anything, []string{"late", "older"}, testNow, "user-1").Return(int64(2), nil).Once()

	result, err := suite.service.SweepOverdue(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"late", "older"}, result.Changed)
	suite.Equal([]string{"nodate"}, result.Skipped)
	suite.Equal(domain.BillPending, pending[0].Status, "input must not be mutated")
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestSweepOverdue_DueTodayInBusinessZone() {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, saoPaulo)
	svc := suite.businessZoneService(now)
	suite.mockBillRepo.On("FindPendingBills", mock.Anything).Return([]domain.Bill{
		{ID: "today", Status: domain.BillPending, DueDate: day(2024, 3, 10)},
		{ID: "late", Status: domain.BillPending, DueDate: day(2024, 3, 9)},
	}, nil).Once()
	suite.mockBillRepo.On("MarkBillsOverdue", mock.Anything, []string{"late"}, now, "user-1").Return(int64(1), nil).Once()

	result, err := svc.SweepOverdue(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"late"}, result.Changed)
	suite.Equal(domain.BillPending, result.Bills[0].Status)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestSweepOverdue_NothingToDo() {
	suite.mockBillRepo.On("FindPendingBills", mock.Anything).Return([]domain.Bill{
		{ID: "future", Status: domain.BillPending, DueDate: day(2024, 5, 1)},
	}, nil).Once()

	result, err := suite.service.SweepOverdue(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.Empty(result.Changed)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "MarkBillsOverdue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestSweepOverdue_RepoError() {
	suite.mockBillRepo.On("FindPendingBills", mock.Anything).Return(nil, apperrors.ErrInternal).Once()

	result, err := suite.service.SweepOverdue(suite.ctx, "user-1")

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInternal)
}

// --- PayBill / CancelBill Tests ---

func (suite *BillServiceTestSuite) TestPayBill_DefaultsToToday() {
	bill := &domain.Bill{ID: "b1", Status: domain.BillOverdue, DueDate: day(2024, 3, 1)}
	suite.mockBillRepo.On("FindBillByID", mock.Anything, "b1").Return(bill, nil).Once()
	suite.mockBillRepo.On("UpdateBill", mock.Anything, mock.MatchedBy(func(b domain.Bill) bool {
		return b.Status == domain.BillPaid && b.PaymentDate != nil && b.PaymentDate.Equal(day(2024, 3, 10))
	})).Return(nil).Once()

	paid, err := suite.service.PayBill(suite.ctx, "b1", dto.PayBillRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.BillPaid, paid.Status)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestPayBill_AlreadyPaid() {
	suite.mockBillRepo.On("FindBillByID", mock.Anything, "b2").Return(&domain.Bill{ID: "b2", Status: domain.BillPaid}, nil).Once()

	_, err := suite.service.PayBill(suite.ctx, "b2", dto.PayBillRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BillServiceTestSuite) TestCancelBill_Success() {
	suite.mockBillRepo.On("FindBillByID", mock.Anything, "b3").Return(&domain.Bill{ID: "b3", Status: domain.BillPending}, nil).Once()
	suite.mockBillRepo.On("UpdateBill", mock.Anything, mock.Anything).Return(nil).Once()

	bill, err := suite.service.CancelBill(suite.ctx, "b3", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.BillCancelled, bill.Status)
	suite.Equal("user-1", bill.LastUpdatedBy)
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
