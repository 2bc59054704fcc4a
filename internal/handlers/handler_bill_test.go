package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/accounting"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockBillService *MockBillService
	token           string
}

func (suite *BillHandlerTestSuite) SetupTest() {
	suite.mockBillService = new(MockBillService)
	suite.router = newTestRouter(suite.T(), &portssvc.ServiceContainer{Bill: suite.mockBillService})
	suite.token = generateTestToken(suite.T(), "user-1")
}

func (suite *BillHandlerTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BillHandlerTestSuite) TestCreate_Salary() {
	salary := &domain.SalaryDetails{
		EmployeeName: "Ana",
		BaseSalary:   decimal.NewFromInt(2000),
		Bonuses:      decimal.NewFromInt(300),
		Deductions:   decimal.NewFromInt(150),
	}
	created := &domain.Bill{
		ID:          "b-1",
		Description: "Salário março",
		Kind:        domain.BillSalary,
		Amount:      salary.NetSalary(),
		DueDate:     time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		Status:      domain.BillPending,
		Salary:      salary,
	}
	suite.mockBillService.On("CreateBill", mock.Anything, mock.MatchedBy(func(req dto.CreateBillRequest) bool {
		return req.Kind == domain.BillSalary && req.Salary != nil && req.Salary.EmployeeName == "Ana"
	}), "user-1").Return(created, nil).Once()

	body := `{"description":"Salário março","kind":"salario","dueDate":"2024-04-05",
		"salary":{"employeeName":"Ana","baseSalary":"2000","bonuses":"300","deductions":"150"}}`
	w := suite.do(http.MethodPost, "/api/v1/bills", body)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.BillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Salary)
	suite.True(resp.Salary.NetSalary.Equal(decimal.NewFromInt(2150)))
	suite.Require().NotNil(resp.DueDate)
	suite.Equal("2024-04-05", *resp.DueDate)
}

func (suite *BillHandlerTestSuite) TestCreate_SalaryWithoutBreakdown() {
	body := `{"description":"Salário","kind":"salario","dueDate":"2024-04-05"}`
	w := suite.do(http.MethodPost, "/api/v1/bills", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBillService.AssertNotCalled(suite.T(), "CreateBill", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillHandlerTestSuite) TestDuplicate_DefaultPeriod() {
	parent := "b-1"
	suite.mockBillService.On("DuplicateBill", mock.Anything, "b-1", dto.DuplicateBillRequest{}, "user-1").
		Return(&domain.Bill{
			ID:           "b-2",
			Status:       domain.BillPending,
			DueDate:      time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			ParentBillID: &parent,
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/bills/b-1/duplicate", "")

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.BillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("b-2", resp.BillID)
	suite.Require().NotNil(resp.ParentBillID)
	suite.Equal("b-1", *resp.ParentBillID)
	suite.mockBillService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestDuplicate_PeriodNotAfterOriginal() {
	err := &accounting.InvalidRecurrencePeriodError{
		BillID:          "b-1",
		DueDate:         "2024-03-01",
		NextPeriodStart: "2024-02-01",
	}
	suite.mockBillService.On("DuplicateBill", mock.Anything, "b-1",
		dto.DuplicateBillRequest{NextDueDate: "2024-02-01"}, "user-1").Return(nil, err).Once()

	w := suite.do(http.MethodPost, "/api/v1/bills/b-1/duplicate", `{"nextDueDate":"2024-02-01"}`)

	suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (suite *BillHandlerTestSuite) TestSweepOverdue() {
	suite.mockBillService.On("SweepOverdue", mock.Anything, "user-1").Return(&accounting.SweepResult{
		AsOf:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Changed: []string{"b-1", "b-3"},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/bills/sweep-overdue", "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.SweepOverdueResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-03-10", resp.AsOf)
	suite.Equal([]string{"b-1", "b-3"}, resp.Changed)
	suite.NotNil(resp.Skipped)
	suite.Empty(resp.Skipped)
}

func (suite *BillHandlerTestSuite) TestPay_WithDate() {
	paid := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	suite.mockBillService.On("PayBill", mock.Anything, "b-1", dto.PayBillRequest{PaymentDate: "2024-03-08"}, "user-1").
		Return(&domain.Bill{ID: "b-1", Status: domain.BillPaid, PaymentDate: &paid}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/bills/b-1/pay", `{"paymentDate":"2024-03-08"}`)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), `"paymentDate":"2024-03-08"`)
}

func (suite *BillHandlerTestSuite) TestGet_NotFound() {
	suite.mockBillService.On("GetBillByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/bills/nope", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BillHandlerTestSuite) TestList_RejectsUnknownStatus() {
	w := suite.do(http.MethodGet, "/api/v1/bills?status=quitado", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBillService.AssertNotCalled(suite.T(), "ListBills", mock.Anything, mock.Anything)
}

func TestBillHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BillHandlerTestSuite))
}
