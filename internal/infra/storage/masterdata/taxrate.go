package masterdata

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/petfit/booking-service/internal/domain"
	"github.com/petfit/booking-service/pkg/dbmetrics"
	"github.com/petfit/booking-service/pkg/psqlbuilder"
)

var taxRateColumns = []string{
	"id",
	"name",
	"percent",
	"is_active",
	"created_at",
	"updated_at",
}

// CreateTaxRate создает налоговую ставку
func (r *Repository) CreateTaxRate(ctx context.Context, t *domain.TaxRate) (*domain.TaxRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tax_rates").
		Columns("name", "percent", "is_active").
		Values(t.Name, t.Percent, t.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTaxRate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTaxRate - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetTaxRateByID получает налоговую ставку по ID
func (r *Repository) GetTaxRateByID(ctx context.Context, id int64) (*domain.TaxRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(taxRateColumns...).
		From("tax_rates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTaxRateByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTaxRate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTaxRateByID - scan tax rate: %v", ErrScanRow, err)
	}

	return t, nil
}

// ListTaxRates возвращает все налоговые ставки
func (r *Repository) ListTaxRates(ctx context.Context) ([]*domain.TaxRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(taxRateColumns...).
		From("tax_rates").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTaxRates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTaxRates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	taxRates := make([]*domain.TaxRate, 0)
	for rows.Next() {
		t, err := scanTaxRate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListTaxRates - scan row: %v", ErrScanRow, err)
		}
		taxRates = append(taxRates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTaxRates - rows error: %v", ErrScanRow, err)
	}

	return taxRates, nil
}

// UpdateTaxRate обновляет налоговую ставку
func (r *Repository) UpdateTaxRate(ctx context.Context, t *domain.TaxRate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tax_rates").
		Set("name", t.Name).
		Set("percent", t.Percent).
		Set("is_active", t.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTaxRate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTaxRate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTaxRate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteTaxRate удаляет налоговую ставку
func (r *Repository) DeleteTaxRate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tax_rates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteTaxRate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteTaxRate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteTaxRate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanTaxRate(row rowScanner) (*domain.TaxRate, error) {
	var t domain.TaxRate
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Percent,
		&t.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
