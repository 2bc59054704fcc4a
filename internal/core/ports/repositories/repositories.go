package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	CustomerRepo     CustomerRepositoryFacade
	ServiceOrderRepo ServiceOrderRepositoryFacade
	TransactionRepo  FinancialTransactionRepositoryFacade
	BillRepo         BillRepositoryFacade
	DashboardRepo    DashboardRepository
}
