package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	UserRepo     UserRepository
	ExpenseRepo  ExpenseRepository
	CurrencyRepo CurrencyRepository
}
