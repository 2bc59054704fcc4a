package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
)

// TransactionListFilter narrows a transaction listing. Results are ordered by
// transaction date then creation time, newest first; the After* fields form
// the cursor of the previous page.
type TransactionListFilter struct {
	Status         domain.TransactionStatus
	Type           domain.TransactionType
	RelatedID      string
	From           *time.Time
	To             *time.Time
	Limit          int
	AfterDate      *time.Time
	AfterCreatedAt *time.Time
}

type FinancialTransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error)
	// ListTransactions returns one page and the cursor of the next one, nil on the last page.
	ListTransactions(ctx context.Context, filter TransactionListFilter) ([]domain.FinancialTransaction, *string, error)
}

type FinancialTransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error
	UpdateTransactionStatus(ctx context.Context, txn domain.FinancialTransaction) error
}

type FinancialTransactionRepositoryFacade interface {
	FinancialTransactionReader
	FinancialTransactionWriter
}
