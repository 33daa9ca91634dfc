package services

// ServiceContainer bundles all service facades for injection into handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	Expense      ExpenseSvcFacade
	Currency     CurrencySvcFacade
	Reporting    ReportingSvcFacade
	RateProvider RateProviderSvc
	GoogleOAuth  GoogleOAuthSvcFacade
}
