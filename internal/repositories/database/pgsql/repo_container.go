package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories against a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(pool),
		ExpenseRepo:  newPgxExpenseRepository(pool),
		CurrencyRepo: newPgxCurrencyRepository(pool),
	}
}
