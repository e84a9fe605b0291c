package orderline

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/petfit/booking-service/internal/domain"
	"github.com/petfit/booking-service/pkg/dbmetrics"
	"github.com/petfit/booking-service/pkg/psqlbuilder"
)

// Repository read-only репозиторий строк заказов из старого order-флоу.
// Сервис только читает эти записи как источник занятости грумеров;
// запись в order_lines ведёт внешний процесс.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория строк заказов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CommitmentsForDate возвращает обязательства грумера на указанную дату
// из строк заказов старого флоу
func (r *Repository) CommitmentsForDate(ctx context.Context, groomerID int64, date time.Time) ([]domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("groomer_id", "slot_start_time", "slot_end_time").
		From("order_lines").
		Where(squirrel.Eq{"groomer_id": groomerID, "booking_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CommitmentsForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CommitmentsForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	commitments := make([]domain.Commitment, 0)
	for rows.Next() {
		var c domain.Commitment
		if err := rows.Scan(&c.GroomerID, &c.Interval.Start, &c.Interval.End); err != nil {
			return nil, fmt.Errorf("%w: CommitmentsForDate - scan row: %v", ErrScanRow, err)
		}
		c.Source = domain.SourceOrderLine
		commitments = append(commitments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CommitmentsForDate - rows error: %v", ErrScanRow, err)
	}

	return commitments, nil
}
