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

var sessionTypeColumns = []string{
	"id",
	"name",
	"description",
	"is_active",
	"created_at",
	"updated_at",
}

// CreateSessionType создает тип занятия
func (r *Repository) CreateSessionType(ctx context.Context, st *domain.SessionType) (*domain.SessionType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("session_types").
		Columns("name", "description", "is_active").
		Values(st.Name, st.Description, st.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSessionType - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&st.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSessionType - execute insert: %v", ErrExecQuery, err)
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time

	return st, nil
}

// GetSessionTypeByID получает тип занятия по ID
func (r *Repository) GetSessionTypeByID(ctx context.Context, id int64) (*domain.SessionType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionTypeColumns...).
		From("session_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSessionTypeByID - build select query: %v", ErrBuildQuery, err)
	}

	st, err := scanSessionType(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSessionTypeByID - scan session type: %v", ErrScanRow, err)
	}

	return st, nil
}

// ListSessionTypes возвращает все типы занятий
func (r *Repository) ListSessionTypes(ctx context.Context) ([]*domain.SessionType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionTypeColumns...).
		From("session_types").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSessionTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSessionTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessionTypes := make([]*domain.SessionType, 0)
	for rows.Next() {
		st, err := scanSessionType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSessionTypes - scan row: %v", ErrScanRow, err)
		}
		sessionTypes = append(sessionTypes, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSessionTypes - rows error: %v", ErrScanRow, err)
	}

	return sessionTypes, nil
}

// UpdateSessionType обновляет тип занятия
func (r *Repository) UpdateSessionType(ctx context.Context, st *domain.SessionType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_types").
		Set("name", st.Name).
		Set("description", st.Description).
		Set("is_active", st.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": st.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSessionType - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSessionType - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSessionType - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteSessionType удаляет тип занятия
func (r *Repository) DeleteSessionType(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("session_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteSessionType - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSessionType - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSessionType - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanSessionType(row rowScanner) (*domain.SessionType, error) {
	var st domain.SessionType
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&st.ID,
		&st.Name,
		&st.Description,
		&st.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time

	return &st, nil
}
