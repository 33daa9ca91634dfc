package services

import (
	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/platform/config"
)

// NewServiceContainer wires every service facade with its dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, rateProvider portssvc.RateProviderSvc) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)
	currencyService := NewCurrencyService(repos.CurrencyRepo)
	expenseService := NewExpenseService(repos.ExpenseRepo, currencyService)
	reportingService := NewReportingService(repos.ExpenseRepo, rateProvider,
		WithBaseCurrency(cfg.BaseCurrency),
		WithStrictCurrencyMode(cfg.StrictCurrencyMode),
	)

	return &portssvc.ServiceContainer{
		User:         userService,
		Expense:      expenseService,
		Currency:     currencyService,
		Reporting:    reportingService,
		RateProvider: rateProvider,
		GoogleOAuth:  NewGoogleOAuthService(cfg, userService),
	}
}
