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

type PgxServiceOrderRepository struct {
	BaseRepository
}

func newPgxServiceOrderRepository(pool *pgxpool.Pool) portsrepo.ServiceOrderRepositoryFacade {
	return &PgxServiceOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ServiceOrderRepositoryFacade = (*PgxServiceOrderRepository)(nil)

const serviceOrderColumns = `service_order_id, customer_id, bicycle, problem_description, status, total_price,
	payment_method, down_payment, installment_count, first_installment_date, completed_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanServiceOrder(row pgx.Row) (models.ServiceOrder, error) {
	var m models.ServiceOrder
	err := row.Scan(
		&m.ServiceOrderID,
		&m.CustomerID,
		&m.Bicycle,
		&m.ProblemDescription,
		&m.Status,
		&m.TotalPrice,
		&m.PaymentMethod,
		&m.DownPayment,
		&m.InstallmentCount,
		&m.FirstInstallmentDate,
		&m.CompletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxServiceOrderRepository) SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	m := mapping.ToModelServiceOrder(order)
	query := `
		INSERT INTO service_orders (` + serviceOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ServiceOrderID,
		m.CustomerID,
		m.Bicycle,
		m.ProblemDescription,
		m.Status,
		m.TotalPrice,
		m.PaymentMethod,
		m.DownPayment,
		m.InstallmentCount,
		m.FirstInstallmentDate,
		m.CompletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: service order %s", apperrors.ErrDuplicate, m.ServiceOrderID)
		}
		return fmt.Errorf("failed to save service order: %w", err)
	}
	return nil
}

func (r *PgxServiceOrderRepository) FindServiceOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE service_order_id = $1;`
	m, err := scanServiceOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find service order "+orderID)
	}
	order := mapping.ToDomainServiceOrder(m)
	return &order, nil
}

func (r *PgxServiceOrderRepository) ListServiceOrders(ctx context.Context, filter portsrepo.ServiceOrderListFilter) ([]domain.ServiceOrder, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conds = append(conds, fmt.Sprintf("customer_id = $%d", len(args)))
	}

	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC, service_order_id LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query service orders: %w", err)
	}
	defer rows.Close()

	ms := []models.ServiceOrder{}
	for rows.Next() {
		m, err := scanServiceOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service order row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service order rows: %w", err)
	}
	return mapping.ToDomainServiceOrderSlice(ms), nil
}

func (r *PgxServiceOrderRepository) UpdateServiceOrderStatus(ctx context.Context, orderID string, status domain.ServiceOrderStatus, updatedAt time.Time, updatedBy string) error {
	query := `
		UPDATE service_orders
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE service_order_id = $1 AND status <> 'concluida';
	`
	tag, err := r.Pool.Exec(ctx, query, orderID, string(status), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of service order %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		// either missing or completed concurrently
		if _, err := r.FindServiceOrderByID(ctx, orderID); err != nil {
			return err
		}
		return fmt.Errorf("%w: service order %s is already completed", apperrors.ErrValidation, orderID)
	}
	return nil
}

// completeServiceOrderQuery only matches orders that are neither completed
// nor cancelled, so a concurrent cancel or completion leaves zero rows.
const completeServiceOrderQuery = `
		UPDATE service_orders
		SET status = $2, total_price = $3, payment_method = $4, down_payment = $5, installment_count = $6,
			first_installment_date = $7, completed_at = $8, last_updated_at = $9, last_updated_by = $10
		WHERE service_order_id = $1 AND status NOT IN ('concluida', 'cancelada');
	`

// SaveSettlement writes the completed order and its receivables in one
// transaction. The conditional update acts as the at-most-once guard.
func (r *PgxServiceOrderRepository) SaveSettlement(ctx context.Context, order domain.ServiceOrder, txns []domain.FinancialTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	m := mapping.ToModelServiceOrder(order)
	tag, err := tx.Exec(ctx, completeServiceOrderQuery,
		m.ServiceOrderID,
		m.Status,
		m.TotalPrice,
		m.PaymentMethod,
		m.DownPayment,
		m.InstallmentCount,
		m.FirstInstallmentDate,
		m.CompletedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return internalError("failed to complete service order "+order.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: service order %s was already settled or cancelled", apperrors.ErrDuplicate, order.ID)
	}

	if len(txns) > 0 {
		batch := &pgx.Batch{}
		for _, t := range mapping.ToModelFinancialTransactionSlice(txns) {
			queueInsertTransaction(batch, t)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: settlement transactions for order %s", apperrors.ErrDuplicate, order.ID)
			}
			return internalError("failed to insert settlement transactions for order "+order.ID, err)
		}
	}

	return r.Commit(ctx, tx)
}
