package subscription

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/petfit/booking-service/internal/domain"
	"github.com/petfit/booking-service/pkg/dbmetrics"
	"github.com/petfit/booking-service/pkg/psqlbuilder"
)

// reviewsJoin подзапрос с агрегатами отзывов по подпискам
const reviewsJoin = `(
	SELECT subscription_id, COUNT(*) AS total_reviews, AVG(rating) AS average_rating
	FROM subscription_reviews
	GROUP BY subscription_id
) rv ON rv.subscription_id = s.id`

var subscriptionColumns = []string{
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
	"s.created_by",
	"s.updated_by",
	"s.created_at",
	"s.updated_at",
	"COALESCE(rv.total_reviews, 0)",
	"COALESCE(rv.average_rating, 0)",
}

// Repository репозиторий для работы с подписками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(subscriptionColumns...).
		From("subscriptions s").
		LeftJoin(reviewsJoin)
}

// Create создает новую подписку
func (r *Repository) Create(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("subscriptions").
		Columns(
			"name",
			"category_id",
			"session_type_id",
			"trainer_id",
			"location_id",
			"price",
			"media_url",
			"description",
			"is_single_class",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"is_active",
			"created_by",
		).
		Values(
			s.Name,
			s.CategoryID,
			s.SessionTypeID,
			s.TrainerID,
			s.LocationID,
			s.Price,
			s.MediaURL,
			s.Description,
			s.IsSingleClass,
			s.StartDate,
			s.EndDate,
			s.StartTime,
			s.EndTime,
			s.IsActive,
			s.CreatedBy,
		).
		Suffix("RETURNING id, is_expired, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.IsExpired, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает подписку по ID с агрегатами отзывов
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSubscription(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan subscription: %v", ErrScanRow, err)
	}

	return s, nil
}

// Update обновляет подписку
func (r *Repository) Update(ctx context.Context, s *domain.Subscription) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("subscriptions").
		Set("name", s.Name).
		Set("category_id", s.CategoryID).
		Set("session_type_id", s.SessionTypeID).
		Set("trainer_id", s.TrainerID).
		Set("location_id", s.LocationID).
		Set("price", s.Price).
		Set("media_url", s.MediaURL).
		Set("description", s.Description).
		Set("is_single_class", s.IsSingleClass).
		Set("start_date", s.StartDate).
		Set("end_date", s.EndDate).
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("is_active", s.IsActive).
		// Перенос дат вперёд снимает флаг истечения до следующего прогона sweep
		Set("is_expired", false).
		Set("updated_by", s.UpdatedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

// Delete удаляет подписку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("subscriptions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

// List возвращает подписки по фильтру с пагинацией и сортировкой
func (r *Repository) List(ctx context.Context, filter domain.SubscriptionFilter) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.applyFilter(r.baseSelect(), filter)
	selectBuilder = r.applySort(selectBuilder, filter)

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
		if filter.Page > 1 {
			selectBuilder = selectBuilder.Offset(uint64((filter.Page - 1) * filter.Limit))
		}
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

// Count возвращает общее количество подписок, подходящих под фильтр
func (r *Repository) Count(ctx context.Context, filter domain.SubscriptionFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.applyFilter(psqlbuilder.Select("COUNT(*)").From("subscriptions s"), filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// SearchByName ищет подписки по подстроке имени (case-insensitive)
func (r *Repository) SearchByName(ctx context.Context, keyword string) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.ILike{"s.name": "%" + keyword + "%"}).
		OrderBy("s.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SearchByName - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchByName - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

// GetByTrainer возвращает подписки тренера, опционально фильтруя по истечению
func (r *Repository) GetByTrainer(ctx context.Context, trainerID int64, isExpired *bool) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect().
		Where(squirrel.Eq{"s.trainer_id": trainerID}).
		OrderBy("s.created_at DESC")

	if isExpired != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.is_expired": *isExpired})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrainer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrainer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

// GetByLocation возвращает подписки по адресной записи
func (r *Repository) GetByLocation(ctx context.Context, locationID int64) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"s.location_id": locationID}).
		OrderBy("s.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

// GetByDateWindow возвращает подписки, чей период действия
// [start_date, effective_end] пересекается с окном [From, To]
func (r *Repository) GetByDateWindow(ctx context.Context, window domain.DateWindow) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.LtOrEq{"s.start_date": window.To}).
		Where(squirrel.Expr("COALESCE(s.end_date, s.start_date) >= ?", window.From)).
		OrderBy("s.start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

// GetNearby возвращает подписки, чья локация находится в пределах radiusMeters
// от точки (lat, lon). Расстояние считается формулой гаверсинусов в SQL.
func (r *Repository) GetNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	distance := `6371000 * 2 * asin(sqrt(
		power(sin(radians((l.latitude - ?) / 2)), 2) +
		cos(radians(?)) * cos(radians(l.latitude)) *
		power(sin(radians((l.longitude - ?) / 2)), 2)
	))`

	query, args, err := r.baseSelect().
		Join("locations l ON l.id = s.location_id").
		Where(squirrel.Expr(distance+" <= ?", lat, lat, lon, radiusMeters)).
		OrderBy("s.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetNearby - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetNearby - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

// MarkExpired проставляет is_expired подпискам, чья последняя дата раньше now.
// Идемпотентно: повторный прогон с тем же now ничего не меняет.
func (r *Repository) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("subscriptions").
		Set("is_expired", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"is_expired": false}).
		Where(squirrel.Expr("COALESCE(end_date, start_date) < ?", now)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkExpired - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkExpired - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) applyFilter(b squirrel.SelectBuilder, filter domain.SubscriptionFilter) squirrel.SelectBuilder {
	if filter.IsExpired != nil {
		b = b.Where(squirrel.Eq{"s.is_expired": *filter.IsExpired})
	}
	if filter.IsSingleClass != nil {
		b = b.Where(squirrel.Eq{"s.is_single_class": *filter.IsSingleClass})
	}
	if filter.MinPrice != nil {
		b = b.Where(squirrel.GtOrEq{"s.price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		b = b.Where(squirrel.LtOrEq{"s.price": *filter.MaxPrice})
	}
	if len(filter.CategoryIDs) > 0 {
		b = b.Where(squirrel.Eq{"s.category_id": filter.CategoryIDs})
	}
	if len(filter.SessionTypeIDs) > 0 {
		b = b.Where(squirrel.Eq{"s.session_type_id": filter.SessionTypeIDs})
	}
	if len(filter.TrainerIDs) > 0 {
		b = b.Where(squirrel.Eq{"s.trainer_id": filter.TrainerIDs})
	}
	if len(filter.LocationIDs) > 0 {
		b = b.Where(squirrel.Eq{"s.location_id": filter.LocationIDs})
	}
	return b
}

func (r *Repository) applySort(b squirrel.SelectBuilder, filter domain.SubscriptionFilter) squirrel.SelectBuilder {
	direction := "DESC"
	if filter.Order == "asc" {
		direction = "ASC"
	}

	switch filter.SortBy {
	case domain.SortByPrice:
		return b.OrderBy("s.price " + direction)
	case domain.SortByRating:
		return b.OrderBy("COALESCE(rv.average_rating, 0) " + direction)
	default:
		return b.OrderBy("s.created_at " + direction)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubscription(row rowScanner) (*domain.Subscription, error) {
	var s domain.Subscription
	var endDate, createdAt, updatedAt sql.NullTime

	err := row.Scan(
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
		&s.CreatedBy,
		&s.UpdatedBy,
		&createdAt,
		&updatedAt,
		&s.TotalReviews,
		&s.AverageRating,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		s.EndDate = &endDate.Time
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func scanSubscriptions(rows *sql.Rows) ([]*domain.Subscription, error) {
	subscriptions := make([]*domain.Subscription, 0)

	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSubscriptions - scan row: %v", ErrScanRow, err)
		}
		subscriptions = append(subscriptions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSubscriptions - rows error: %v", ErrScanRow, err)
	}

	return subscriptions, nil
}
