package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
	"github.com/spendtrack/spendtrack_backend/internal/models"
)

type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{db: db}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepository
var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

func toModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:    d.ExpenseID,
		OwnerUserID:  d.OwnerUserID,
		Description:  d.Description,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		Date:         d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
}

func toDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		OwnerUserID:  m.OwnerUserID,
		Description:  m.Description,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Date:         m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)
	query := `
        INSERT INTO expenses (expense_id, owner_user_id, description, amount, currency_code, date,
                              created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		m.ExpenseID,
		m.OwnerUserID,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

const expenseColumns = `expense_id, owner_user_id, description, amount, currency_code, date,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.OwnerUserID,
		&m.Description,
		&m.Amount,
		&m.CurrencyCode,
		&m.Date,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	e := toDomainExpense(m)
	return &e, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1 AND deleted_at IS NULL;`
	expense, err := scanExpense(r.db.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	return expense, nil
}

func (r *PgxExpenseRepository) FindExpensesByOwner(ctx context.Context, ownerUserID string, filter portsrepo.ListExpensesFilter) ([]domain.Expense, error) {
	// A non-positive limit returns every row. Postgres treats a NULL
	// limit as LIMIT ALL.
	var limit any
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	// The search term matches description, the amount rendered as text, and
	// the date rendered as YYYY-MM-DD, all case-insensitively.
	query := `
        SELECT ` + expenseColumns + `
        FROM expenses
        WHERE owner_user_id = $1
          AND deleted_at IS NULL
          AND ($2 = ''
               OR description ILIKE '%' || $2 || '%'
               OR amount::text ILIKE '%' || $2 || '%'
               OR to_char(date, 'YYYY-MM-DD') ILIKE '%' || $2 || '%')
        ORDER BY date DESC, created_at DESC
        LIMIT $3 OFFSET $4;
    `
	rows, err := r.db.Query(ctx, query, ownerUserID, filter.Search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *expense)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return expenses, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)
	query := `
        UPDATE expenses
        SET description = $1, amount = $2, currency_code = $3, date = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE expense_id = $7 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.Date,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ExpenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update expense query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) MarkExpenseDeleted(ctx context.Context, expenseID string, deletedAt time.Time, deletedBy string) error {
	query := `
        UPDATE expenses
        SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE expense_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, deletedBy, expenseID)
	if err != nil {
		return fmt.Errorf("failed to mark expense as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
