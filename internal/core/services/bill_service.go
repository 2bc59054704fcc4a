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
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/accounting"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/pagination"
)

type billService struct {
	BaseService
	billRepo portsrepo.BillRepositoryFacade
}

// NewBillService creates a new BillService.
func NewBillService(repo portsrepo.BillRepositoryFacade, opts ...ServiceOption) portssvc.BillSvcFacade {
	return &billService{
		BaseService: newBaseService(opts...),
		billRepo:    repo,
	}
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

func (s *billService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill %s: %w", billID, err)
	}
	return bill, nil
}

func (s *billService) ListBills(ctx context.Context, params dto.ListBillsParams) ([]domain.Bill, error) {
	loc := s.Location()
	from, err := dto.ParseDate(params.From, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	to, err := dto.ParseDate(params.To, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	filter := portsrepo.BillListFilter{
		Kind:   params.Kind,
		From:   from,
		To:     to,
		Limit:  pagination.ClampLimit(params.Limit),
		Offset: max(params.Offset, 0),
	}
	if params.Status != "" {
		filter.Statuses = []domain.BillStatus{params.Status}
	}

	bills, err := s.billRepo.ListBills(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills")
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest, userID string) (*domain.Bill, error) {
	dueDate, err := dto.ParseDate(req.DueDate, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if dueDate == nil {
		return nil, fmt.Errorf("%w: due date is required", apperrors.ErrValidation)
	}

	now := s.Now()
	bill := domain.Bill{
		ID:          s.NewID(),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Kind:        req.Kind,
		DueDate:     *dueDate,
		Status:      domain.BillPending,
		Recurring:   req.Recurring,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	switch req.Kind {
	case domain.BillSalary:
		if req.Salary == nil {
			return nil, fmt.Errorf("%w: salary details are required for salary bills", apperrors.ErrValidation)
		}
		salary := &domain.SalaryDetails{
			EmployeeName: strings.TrimSpace(req.Salary.EmployeeName),
			BaseSalary:   accounting.RoundCents(req.Salary.BaseSalary),
			Bonuses:      accounting.RoundCents(req.Salary.Bonuses),
			Deductions:   accounting.RoundCents(req.Salary.Deductions),
		}
		if salary.NetSalary().IsNegative() {
			return nil, fmt.Errorf("%w: deductions exceed base salary plus bonuses", apperrors.ErrValidation)
		}
		bill.Salary = salary
		bill.Amount = salary.NetSalary()
		if bill.Category == "" {
			bill.Category = "salários"
		}
	case domain.BillGeneric:
		if req.Amount == nil {
			return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
		}
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
		}
		bill.Amount = accounting.RoundCents(*req.Amount)
	default:
		return nil, fmt.Errorf("%w: unknown bill kind %q", apperrors.ErrValidation, req.Kind)
	}

	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to save bill")
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}
	s.LogInfo(ctx, "Bill created", slog.String("bill_id", bill.ID), slog.String("kind", string(bill.Kind)))
	return &bill, nil
}

func (s *billService) PayBill(ctx context.Context, billID string, req dto.PayBillRequest, userID string) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill %s: %w", billID, err)
	}
	if !bill.IsOpen() {
		return nil, fmt.Errorf("%w: bill %s is %s and cannot be paid", apperrors.ErrValidation, billID, bill.Status)
	}

	paidOn := s.Today()
	if d, err := dto.ParseDate(req.PaymentDate, s.Location()); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	} else if d != nil {
		paidOn = *d
	}

	bill.Status = domain.BillPaid
	bill.PaymentDate = &paidOn
	return s.update(ctx, bill, userID)
}

func (s *billService) CancelBill(ctx context.Context, billID string, userID string) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill %s: %w", billID, err)
	}
	if !bill.IsOpen() {
		return nil, fmt.Errorf("%w: bill %s is %s and cannot be cancelled", apperrors.ErrValidation, billID, bill.Status)
	}
	bill.Status = domain.BillCancelled
	return s.update(ctx, bill, userID)
}

func (s *billService) DuplicateBill(ctx context.Context, billID string, req dto.DuplicateBillRequest, userID string) (*domain.Bill, error) {
	original, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill %s: %w", billID, err)
	}

	next, err := dto.ParseDate(req.NextDueDate, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	source := *original
	if !source.DueDate.IsZero() {
		source.DueDate = s.BusinessDate(source.DueDate)
	}
	if next == nil {
		if source.DueDate.IsZero() {
			return nil, fmt.Errorf("%w: bill %s has no due date to advance from", apperrors.ErrValidation, billID)
		}
		d := accounting.NextPeriod(source.DueDate)
		next = &d
	}

	dup, err := accounting.DuplicateBill(source, *next, s.NewID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	dup.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.billRepo.SaveBill(ctx, dup); err != nil {
		s.LogError(ctx, err, "Failed to save duplicated bill", slog.String("parent_bill_id", billID))
		return nil, fmt.Errorf("failed to duplicate bill: %w", err)
	}
	s.LogInfo(ctx, "Bill duplicated for next period",
		slog.String("bill_id", dup.ID),
		slog.String("parent_bill_id", billID),
		slog.Time("due_date", dup.DueDate))
	return &dup, nil
}

func (s *billService) SweepOverdue(ctx context.Context, userID string) (*accounting.SweepResult, error) {
	pending, err := s.billRepo.FindPendingBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load pending bills")
		return nil, fmt.Errorf("failed to load pending bills: %w", err)
	}

	asOf := s.Today()
	result := accounting.SweepOverdue(pending, asOf)
	if len(result.Skipped) > 0 {
		s.GetLogger(ctx).Warn("Pending bills without due date were skipped", slog.Any("bill_ids", result.Skipped))
	}
	if len(result.Changed) == 0 {
		return &result, nil
	}

	n, err := s.billRepo.MarkBillsOverdue(ctx, result.Changed, s.Now(), userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to mark bills overdue", slog.Int("count", len(result.Changed)))
		return nil, fmt.Errorf("failed to mark bills overdue: %w", err)
	}
	if int(n) != len(result.Changed) {
		// another request paid or cancelled some of them in between
		s.LogInfo(ctx, "Overdue sweep updated fewer rows than planned", slog.Int64("updated", n), slog.Int("planned", len(result.Changed)))
	}
	s.LogInfo(ctx, "Overdue sweep finished", slog.Int64("updated", n), slog.Time("as_of", asOf))
	return &result, nil
}

func (s *billService) update(ctx context.Context, bill *domain.Bill, userID string) (*domain.Bill, error) {
	bill.LastUpdatedAt = s.Now()
	bill.LastUpdatedBy = userID
	if err := s.billRepo.UpdateBill(ctx, *bill); err != nil {
		s.LogError(ctx, err, "Failed to update bill", slog.String("bill_id", bill.ID))
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}
	return bill, nil
}
