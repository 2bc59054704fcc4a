package services

import (
	"context"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/accounting"
)

type BillReaderSvc interface {
	GetBillByID(ctx context.Context, billID string) (*domain.Bill, error)
	ListBills(ctx context.Context, params dto.ListBillsParams) ([]domain.Bill, error)
}

type BillWriterSvc interface {
	CreateBill(ctx context.Context, req dto.CreateBillRequest, userID string) (*domain.Bill, error)
	PayBill(ctx context.Context, billID string, req dto.PayBillRequest, userID string) (*domain.Bill, error)
	CancelBill(ctx context.Context, billID string, userID string) (*domain.Bill, error)
}

// BillRecurrenceSvc handles the periodic side of bills and payroll.
type BillRecurrenceSvc interface {
	// DuplicateBill creates the next occurrence of a bill, due one month
	// later unless req overrides the date.
	DuplicateBill(ctx context.Context, billID string, req dto.DuplicateBillRequest, userID string) (*domain.Bill, error)
	// SweepOverdue marks pending bills whose due date has passed as atrasado.
	SweepOverdue(ctx context.Context, userID string) (*accounting.SweepResult, error)
}

type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
	BillRecurrenceSvc
}
