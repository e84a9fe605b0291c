package subscriptionbooking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/petfit/booking-service/internal/domain"
	"github.com/petfit/booking-service/pkg/dbmetrics"
	"github.com/petfit/booking-service/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

// joinedColumns колонки бронирования плюс данные подписки
var joinedColumns = []string{
	"sb.id",
	"sb.subscription_id",
	"sb.customer_id",
	"sb.status",
	"sb.created_at",
	"sb.updated_at",
	"s.id",
	"s.name",
	"s.category_id",
	"s.session_type_id",
	"s.trainer_id",
	"s.location_id",
	"s.price",
	"s.media_url",
	"s.description",
	"s.is_single_class",
	"s.start_date",
	"s.end_date",
	"s.start_time",
	"s.end_time",
	"s.is_active",
	"s.is_expired",
}

// Repository репозиторий бронирований подписок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований подписок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) joinedSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(joinedColumns...).
		From("subscription_bookings sb").
		Join("subscriptions s ON s.id = sb.subscription_id")
}

// Create создает бронирование подписки.
// Уникальный индекс (subscription_id, customer_id) превращает повторную
// попытку в ErrDuplicateBooking даже при гонке двух запросов.
func (r *Repository) Create(ctx context.Context, b *domain.SubscriptionBooking) (*domain.SubscriptionBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("subscription_bookings").
		Columns("subscription_id", "customer_id", "status").
		Values(b.SubscriptionID, b.CustomerID, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID вместе с данными подписки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SubscriptionBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.joinedSelect().
		Where(squirrel.Eq{"sb.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanJoined(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByCustomerAndSubscription возвращает бронирование пары
// (клиент, подписка), независимо от статуса
func (r *Repository) GetByCustomerAndSubscription(ctx context.Context, customerID, subscriptionID int64) (*domain.SubscriptionBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.joinedSelect().
		Where(squirrel.Eq{
			"sb.customer_id":     customerID,
			"sb.subscription_id": subscriptionID,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerAndSubscription - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanJoined(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerAndSubscription - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByCustomer возвращает бронирования клиента вместе с данными подписок
func (r *Repository) GetByCustomer(ctx context.Context, customerID int64) ([]*domain.SubscriptionBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.joinedSelect().
		Where(squirrel.Eq{"sb.customer_id": customerID}).
		OrderBy("sb.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanJoinedRows(rows)
}

// GetBySubscription возвращает бронирования конкретной подписки
// (список записавшихся клиентов)
func (r *Repository) GetBySubscription(ctx context.Context, subscriptionID int64) ([]*domain.SubscriptionBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.joinedSelect().
		Where(squirrel.Eq{"sb.subscription_id": subscriptionID}).
		OrderBy("sb.created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySubscription - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySubscription - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanJoinedRows(rows)
}

// GetAll возвращает все бронирования подписок
func (r *Repository) GetAll(ctx context.Context) ([]*domain.SubscriptionBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.joinedSelect().
		OrderBy("sb.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanJoinedRows(rows)
}

// GetExpired возвращает активные бронирования истёкших подписок
func (r *Repository) GetExpired(ctx context.Context) ([]*domain.SubscriptionBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.joinedSelect().
		Where(squirrel.Eq{
			"s.is_expired": true,
			"sb.status":    domain.SubscriptionBookingActive,
		}).
		OrderBy("sb.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetExpired - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExpired - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanJoinedRows(rows)
}

// UpdateStatus меняет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.SubscriptionBookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("subscription_bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJoined(row rowScanner) (*domain.SubscriptionBooking, error) {
	var b domain.SubscriptionBooking
	var s domain.Subscription
	var bCreatedAt, bUpdatedAt sql.NullTime
	var endDate sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.SubscriptionID,
		&b.CustomerID,
		&b.Status,
		&bCreatedAt,
		&bUpdatedAt,
		&s.ID,
		&s.Name,
		&s.CategoryID,
		&s.SessionTypeID,
		&s.TrainerID,
		&s.LocationID,
		&s.Price,
		&s.MediaURL,
		&s.Description,
		&s.IsSingleClass,
		&s.StartDate,
		&endDate,
		&s.StartTime,
		&s.EndTime,
		&s.IsActive,
		&s.IsExpired,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = bCreatedAt.Time
	b.UpdatedAt = bUpdatedAt.Time
	if endDate.Valid {
		s.EndDate = &endDate.Time
	}
	b.Subscription = &s

	return &b, nil
}

func scanJoinedRows(rows *sql.Rows) ([]*domain.SubscriptionBooking, error) {
	bookings := make([]*domain.SubscriptionBooking, 0)

	for rows.Next() {
		b, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanJoinedRows - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanJoinedRows - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
