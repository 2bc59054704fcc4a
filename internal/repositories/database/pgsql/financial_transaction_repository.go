package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/bikeshop_backoffice/internal/models"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/mapping"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFinancialTransactionRepository struct {
	BaseRepository
}

func newPgxFinancialTransactionRepository(pool *pgxpool.Pool) portsrepo.FinancialTransactionRepositoryFacade {
	return &PgxFinancialTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FinancialTransactionRepositoryFacade = (*PgxFinancialTransactionRepository)(nil)

const transactionColumns = `transaction_id, transaction_date, description, category, amount, transaction_type, payment_method,
	status, due_date, payment_date, related_id, notes, created_at, created_by, last_updated_at, last_updated_by`

const insertTransactionQuery = `
	INSERT INTO financial_transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
`

func transactionArgs(m models.FinancialTransaction) []any {
	return []any{
		m.TransactionID,
		m.TransactionDate,
		m.Description,
		m.Category,
		m.Amount,
		m.TransactionType,
		m.PaymentMethod,
		m.Status,
		m.DueDate,
		m.PaymentDate,
		m.RelatedID,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func queueInsertTransaction(batch *pgx.Batch, m models.FinancialTransaction) {
	batch.Queue(insertTransactionQuery, transactionArgs(m)...)
}

func scanTransaction(row pgx.Row) (models.FinancialTransaction, error) {
	var m models.FinancialTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionDate,
		&m.Description,
		&m.Category,
		&m.Amount,
		&m.TransactionType,
		&m.PaymentMethod,
		&m.Status,
		&m.DueDate,
		&m.PaymentDate,
		&m.RelatedID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxFinancialTransactionRepository) SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	_, err := r.Pool.Exec(ctx, insertTransactionQuery, transactionArgs(mapping.ToModelFinancialTransaction(txn))...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, txn.ID)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxFinancialTransactionRepository) UpdateTransactionStatus(ctx context.Context, txn domain.FinancialTransaction) error {
	query := `
		UPDATE financial_transactions
		SET status = $2, payment_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, txn.ID, string(txn.Status), txn.PaymentDate, txn.LastUpdatedAt, txn.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFinancialTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM financial_transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find transaction "+transactionID)
	}
	txn := mapping.ToDomainFinancialTransaction(m)
	return &txn, nil
}

// ListTransactions returns transactions newest first, paginated on (transaction_date, created_at).
func (r *PgxFinancialTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.FinancialTransaction, *string, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, vals ...any) {
		args = append(args, vals...)
		conds = append(conds, cond)
	}
	if filter.Status != "" {
		add(fmt.Sprintf("status = $%d", len(args)+1), string(filter.Status))
	}
	if filter.Type != "" {
		add(fmt.Sprintf("transaction_type = $%d", len(args)+1), string(filter.Type))
	}
	if filter.RelatedID != "" {
		add(fmt.Sprintf("related_id = $%d", len(args)+1), filter.RelatedID)
	}
	if filter.From != nil {
		add(fmt.Sprintf("transaction_date >= $%d", len(args)+1), *filter.From)
	}
	if filter.To != nil {
		add(fmt.Sprintf("transaction_date <= $%d", len(args)+1), *filter.To)
	}
	if filter.AfterDate != nil && filter.AfterCreatedAt != nil {
		add(fmt.Sprintf("(transaction_date, created_at) < ($%d, $%d)", len(args)+1, len(args)+2), *filter.AfterDate, *filter.AfterCreatedAt)
	}

	limit := pagination.ClampLimit(filter.Limit)
	query := `SELECT ` + transactionColumns + ` FROM financial_transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	ms := []models.FinancialTransaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var nextToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextToken = &token
	}
	return mapping.ToDomainFinancialTransactionSlice(ms), nextToken, nil
}
