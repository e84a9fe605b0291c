package timeslot

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

var slotColumns = []string{
	"id",
	"groomer_id",
	"booking_date",
	"start_time",
	"end_time",
	"is_booked",
	"customer_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с временными слотами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// BookedCommitmentsFor возвращает обязательства из занятых слотов грумера
// на дату, исключая сам подтверждаемый слот.
// Внутри транзакции добавляет FOR UPDATE для защиты скана от гонки.
func (r *Repository) BookedCommitmentsFor(ctx context.Context, groomerID int64, date time.Time, excludeSlotID int64) ([]domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("groomer_id", "start_time", "end_time").
		From("time_slots").
		Where(squirrel.Eq{
			"groomer_id":   groomerID,
			"booking_date": date,
			"is_booked":    true,
		}).
		Where(squirrel.NotEq{"id": excludeSlotID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BookedCommitmentsFor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedCommitmentsFor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	commitments := make([]domain.Commitment, 0)
	for rows.Next() {
		var c domain.Commitment
		if err := rows.Scan(&c.GroomerID, &c.Interval.Start, &c.Interval.End); err != nil {
			return nil, fmt.Errorf("%w: BookedCommitmentsFor - scan row: %v", ErrScanRow, err)
		}
		c.Source = domain.SourceTimeSlot
		commitments = append(commitments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedCommitmentsFor - rows error: %v", ErrScanRow, err)
	}

	return commitments, nil
}

// ConfirmIfFree атомарно подтверждает слот: назначает клиента и грумера
// и поднимает is_booked одним условным UPDATE. Если слот уже занят
// (условие is_booked = false не прошло), возвращает ErrAlreadyBooked —
// читатель никогда не увидит is_booked = true без клиента.
func (r *Repository) ConfirmIfFree(ctx context.Context, slotID, customerID, groomerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("customer_id", customerID).
		Set("groomer_id", groomerID).
		Set("is_booked", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID, "is_booked": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ConfirmIfFree - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ConfirmIfFree - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ConfirmIfFree - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyBooked
	}

	return nil
}

// ListFree возвращает свободные слоты грумера на дату, по возрастанию времени начала
func (r *Repository) ListFree(ctx context.Context, groomerID int64, date time.Time) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{
			"groomer_id":   groomerID,
			"booking_date": date,
			"is_booked":    false,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFree - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFree - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListFree - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFree - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var s domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.GroomerID,
		&s.BookingDate,
		&s.StartTime,
		&s.EndTime,
		&s.IsBooked,
		&s.CustomerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
