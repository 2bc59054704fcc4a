package services

// ServiceContainer holds instances of all the application services.
// Handlers only ever see these interfaces.
type ServiceContainer struct {
	User         UserSvcFacade
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
	Customer     CustomerSvcFacade
	ServiceOrder ServiceOrderSvcFacade
	Transaction  FinancialTransactionSvcFacade
	Bill         BillSvcFacade
	Dashboard    DashboardSvc
}
