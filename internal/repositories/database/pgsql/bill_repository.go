package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/bikeshop_backoffice/internal/models"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBillRepository struct {
	BaseRepository
}

func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, description, category, bill_kind, amount, due_date, payment_date, status, recurring,
	parent_bill_id, employee_name, base_salary, bonuses, deductions, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBill(row pgx.Row) (models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID,
		&m.Description,
		&m.Category,
		&m.BillKind,
		&m.Amount,
		&m.DueDate,
		&m.PaymentDate,
		&m.Status,
		&m.Recurring,
		&m.ParentBillID,
		&m.EmployeeName,
		&m.BaseSalary,
		&m.Bonuses,
		&m.Deductions,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBillRepository) queryBills(ctx context.Context, query string, args ...any) ([]domain.Bill, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	ms := []models.Bill{}
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", err)
	}
	return mapping.ToDomainBillSlice(ms), nil
}

func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BillID,
		m.Description,
		m.Category,
		m.BillKind,
		m.Amount,
		m.DueDate,
		m.PaymentDate,
		m.Status,
		m.Recurring,
		m.ParentBillID,
		m.EmployeeName,
		m.BaseSalary,
		m.Bonuses,
		m.Deductions,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bill %s", apperrors.ErrDuplicate, m.BillID)
		}
		return fmt.Errorf("failed to save bill: %w", err)
	}
	return nil
}

func (r *PgxBillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := `
		UPDATE bills
		SET description = $2, category = $3, amount = $4, due_date = $5, payment_date = $6, status = $7,
			recurring = $8, employee_name = $9, base_salary = $10, bonuses = $11, deductions = $12, notes = $13,
			last_updated_at = $14, last_updated_by = $15
		WHERE bill_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BillID,
		m.Description,
		m.Category,
		m.Amount,
		m.DueDate,
		m.PaymentDate,
		m.Status,
		m.Recurring,
		m.EmployeeName,
		m.BaseSalary,
		m.Bonuses,
		m.Deductions,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill %s: %w", bill.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`
	m, err := scanBill(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find bill "+billID)
	}
	bill := mapping.ToDomainBill(m)
	return &bill, nil
}

func (r *PgxBillRepository) ListBills(ctx context.Context, filter portsrepo.BillListFilter) ([]domain.Bill, error) {
	var (
		conds []string
		args  []any
	)
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, statuses)
		conds = append(conds, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		conds = append(conds, fmt.Sprintf("bill_kind = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("due_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("due_date <= $%d", len(args)))
	}

	query := `SELECT ` + billColumns + ` FROM bills`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY due_date NULLS LAST, bill_id LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	return r.queryBills(ctx, query, args...)
}

func (r *PgxBillRepository) FindPendingBills(ctx context.Context) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE status = 'pendente' ORDER BY due_date NULLS LAST, bill_id;`
	return r.queryBills(ctx, query)
}

// MarkBillsOverdue only touches rows that are still pending, so a bill paid
// between the read and this write is left alone.
func (r *PgxBillRepository) MarkBillsOverdue(ctx context.Context, billIDs []string, updatedAt time.Time, updatedBy string) (int64, error) {
	if len(billIDs) == 0 {
		return 0, nil
	}
	query := `
		UPDATE bills
		SET status = 'atrasado', last_updated_at = $2, last_updated_by = $3
		WHERE bill_id = ANY($1) AND status = 'pendente';
	`
	tag, err := r.Pool.Exec(ctx, query, billIDs, updatedAt, updatedBy)
	if err != nil {
		return 0, fmt.Errorf("failed to mark %d bills overdue: %w", len(billIDs), err)
	}
	return tag.RowsAffected(), nil
}
