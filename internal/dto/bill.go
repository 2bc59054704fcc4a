package dto

import (
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// SalaryRequest is the payroll part of a bill of kind "salario".
type SalaryRequest struct {
	EmployeeName string          `json:"employeeName" binding:"required"`
	BaseSalary   decimal.Decimal `json:"baseSalary" binding:"gte=0"`
	Bonuses      decimal.Decimal `json:"bonuses" binding:"gte=0"`
	Deductions   decimal.Decimal `json:"deductions" binding:"gte=0"`
}

// CreateBillRequest creates a generic bill or a salary entry. For salaries
// Amount is ignored and computed from the salary breakdown.
type CreateBillRequest struct {
	Description string           `json:"description" binding:"required"`
	Category    string           `json:"category"`
	Kind        domain.BillKind  `json:"kind" binding:"required,oneof=conta salario"`
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,gte=0"`
	DueDate     string           `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Recurring   bool             `json:"recurring"`
	Salary      *SalaryRequest   `json:"salary" binding:"required_if=Kind salario"`
	Notes       string           `json:"notes"`
}

// PayBillRequest optionally backdates the payment.
type PayBillRequest struct {
	PaymentDate string `json:"paymentDate" binding:"omitempty,datetime=2006-01-02"`
}

// DuplicateBillRequest optionally overrides the next due date; by default it
// is one month after the original.
type DuplicateBillRequest struct {
	NextDueDate string `json:"nextDueDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListBillsParams defines query parameters for listing bills.
type ListBillsParams struct {
	Status domain.BillStatus `form:"status" binding:"omitempty,billstatus"`
	Kind   domain.BillKind   `form:"kind" binding:"omitempty,oneof=conta salario"`
	From   string            `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string            `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit  int               `form:"limit,default=50"`
	Offset int               `form:"offset,default=0"`
}

type SalaryResponse struct {
	EmployeeName string          `json:"employeeName"`
	BaseSalary   decimal.Decimal `json:"baseSalary"`
	Bonuses      decimal.Decimal `json:"bonuses"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"netSalary"`
}

type BillResponse struct {
	BillID          string            `json:"billID"`
	Description     string            `json:"description"`
	Category        string            `json:"category"`
	Kind            domain.BillKind   `json:"kind"`
	Amount          decimal.Decimal   `json:"amount"`
	AmountFormatted string            `json:"amountFormatted"`
	DueDate         *string           `json:"dueDate"`
	PaymentDate     *string           `json:"paymentDate,omitempty"`
	Status          domain.BillStatus `json:"status"`
	Recurring       bool              `json:"recurring"`
	ParentBillID    *string           `json:"parentBillID,omitempty"`
	Salary          *SalaryResponse   `json:"salary,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// SweepOverdueResponse reports which bills became overdue and which could not be evaluated.
type SweepOverdueResponse struct {
	AsOf    string   `json:"asOf"`
	Changed []string `json:"changed"`
	Skipped []string `json:"skipped"`
}

func ToBillResponse(b *domain.Bill) BillResponse {
	var due *string
	if !b.DueDate.IsZero() {
		due = formatDatePtr(&b.DueDate)
	}
	resp := BillResponse{
		BillID:          b.ID,
		Description:     b.Description,
		Category:        b.Category,
		Kind:            b.Kind,
		Amount:          b.Amount,
		AmountFormatted: utils.FormatBRL(b.Amount),
		DueDate:         due,
		PaymentDate:     formatDatePtr(b.PaymentDate),
		Status:          b.Status,
		Recurring:       b.Recurring,
		ParentBillID:    b.ParentBillID,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
	}
	if b.Salary != nil {
		resp.Salary = &SalaryResponse{
			EmployeeName: b.Salary.EmployeeName,
			BaseSalary:   b.Salary.BaseSalary,
			Bonuses:      b.Salary.Bonuses,
			Deductions:   b.Salary.Deductions,
			NetSalary:    b.Salary.NetSalary(),
		}
	}
	return resp
}

func ToBillResponses(bills []domain.Bill) []BillResponse {
	out := make([]BillResponse, len(bills))
	for i := range bills {
		out[i] = ToBillResponse(&bills[i])
	}
	return out
}
