package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxDashboardRepository struct {
	BaseRepository
}

func newPgxDashboardRepository(pool *pgxpool.Pool) portsrepo.DashboardRepository {
	return &PgxDashboardRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

const dashboardTransactionsQuery = `
	SELECT
		COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'receita' AND status = 'pago'
			AND COALESCE(payment_date, transaction_date) BETWEEN $1 AND $2), 0),
		COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'receita' AND status = 'pendente'
			AND COALESCE(due_date, transaction_date) BETWEEN $1 AND $2), 0),
		COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'despesa' AND status = 'pago'
			AND COALESCE(payment_date, transaction_date) BETWEEN $1 AND $2), 0)
	FROM financial_transactions;
`

// overdue bills are counted up to the end of the period regardless of how old they are
const dashboardBillsQuery = `
	SELECT
		COALESCE(SUM(amount) FILTER (WHERE status = 'pago' AND payment_date BETWEEN $1 AND $2), 0),
		COALESCE(SUM(amount) FILTER (WHERE status = 'pendente' AND due_date BETWEEN $1 AND $2), 0),
		COALESCE(SUM(amount) FILTER (WHERE status = 'atrasado' AND due_date <= $2), 0)
	FROM bills;
`

const dashboardOrdersQuery = `
	SELECT status, COUNT(*)
	FROM service_orders
	WHERE created_at::date BETWEEN $1 AND $2
	GROUP BY status;
`

// GetDashboardSummary runs the three aggregate queries in a single batch.
func (r *PgxDashboardRepository) GetDashboardSummary(ctx context.Context, from, to time.Time) (*domain.DashboardSummary, error) {
	batch := &pgx.Batch{}
	batch.Queue(dashboardTransactionsQuery, from, to)
	batch.Queue(dashboardBillsQuery, from, to)
	batch.Queue(dashboardOrdersQuery, from, to)

	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()

	summary := &domain.DashboardSummary{
		From:           from,
		To:             to,
		OrdersByStatus: map[domain.ServiceOrderStatus]int{},
	}

	var paidDespesas, paidBills decimal.Decimal
	if err := br.QueryRow().Scan(&summary.ReceivedRevenue, &summary.PendingReceivables, &paidDespesas); err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}
	if err := br.QueryRow().Scan(&paidBills, &summary.PendingBills, &summary.OverdueBills); err != nil {
		return nil, fmt.Errorf("failed to aggregate bills: %w", err)
	}
	summary.PaidExpenses = paidDespesas.Add(paidBills)

	rows, err := br.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to count service orders: %w", err)
	}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan service order count: %w", err)
		}
		summary.OrdersByStatus[domain.ServiceOrderStatus(status)] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service order counts: %w", err)
	}

	return summary, nil
}
