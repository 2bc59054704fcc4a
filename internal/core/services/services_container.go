package services

import (
	portsrepo "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/platform/config"
)

// NewServiceContainer creates and initializes all application services.
// opts are applied to every service, which is how main injects the
// business clock.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo, opts...),
		Token:        NewTokenService(cfg, opts...),
		GoogleOAuth:  NewGoogleOAuthService(cfg),
		Customer:     NewCustomerService(repos.CustomerRepo, opts...),
		ServiceOrder: NewServiceOrderService(repos.ServiceOrderRepo, repos.CustomerRepo, opts...),
		Transaction:  NewFinancialTransactionService(repos.TransactionRepo, opts...),
		Bill:         NewBillService(repos.BillRepo, opts...),
		Dashboard:    NewDashboardService(repos.DashboardRepo, opts...),
	}
}
