package pgsql

import (
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		ServiceOrderRepo: newPgxServiceOrderRepository(dbPool),
		TransactionRepo:  newPgxFinancialTransactionRepository(dbPool),
		BillRepo:         newPgxBillRepository(dbPool),
		DashboardRepo:    newPgxDashboardRepository(dbPool),
	}
}
