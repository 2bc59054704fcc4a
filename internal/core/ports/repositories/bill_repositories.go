package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
)

// BillListFilter narrows a bill listing, ordered by due date.
type BillListFilter struct {
	Statuses []domain.BillStatus
	Kind     domain.BillKind
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

type BillReader interface {
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)
	ListBills(ctx context.Context, filter BillListFilter) ([]domain.Bill, error)
	// FindPendingBills returns every bill in status pendente, including those without a due date.
	FindPendingBills(ctx context.Context) ([]domain.Bill, error)
}

type BillWriter interface {
	SaveBill(ctx context.Context, bill domain.Bill) error
	UpdateBill(ctx context.Context, bill domain.Bill) error
	// MarkBillsOverdue moves the given pending bills to atrasado in one batch
	// and returns how many rows changed.
	MarkBillsOverdue(ctx context.Context, billIDs []string, updatedAt time.Time, updatedBy string) (int64, error)
}

type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
