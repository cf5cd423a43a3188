package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	"github.com/avikez/SAS-AppointmentService/pkg/dbmetrics"
	"github.com/avikez/SAS-AppointmentService/pkg/psqlbuilder"
	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

// Postgres код ошибки нарушения уникальности
const pqUniqueViolation = "23505"

// Repository репозиторий календарных правил: недельное расписание
// рабочих часов и заблокированные даты
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория календарных правил
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListHours получает все строки недельного расписания в порядке дней недели
func (r *Repository) ListHours(ctx context.Context) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "start_time", "end_time", "active").
		From("business_hours").
		OrderBy("weekday ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHours, 0)
	for rows.Next() {
		var h domain.BusinessHours
		if err := rows.Scan(&h.ID, &h.Weekday, &h.StartTime, &h.EndTime, &h.Active); err != nil {
			return nil, fmt.Errorf("%w: ListHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetActiveHoursForWeekday получает активную строку расписания для дня недели
// (0=воскресенье .. 6=суббота, см. domain.StoredWeekday).
//
// Уникальность weekday в таблице не enforced: при нескольких активных
// строках детерминированно берется первая по id. Это зафиксированная
// неоднозначность данных, а не фича.
func (r *Repository) GetActiveHoursForWeekday(ctx context.Context, weekday int) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "start_time", "end_time", "active").
		From("business_hours").
		Where(squirrel.Eq{"weekday": weekday, "active": true}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveHoursForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.BusinessHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.Weekday, &h.StartTime, &h.EndTime, &h.Active)
	if err == sql.ErrNoRows {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveHoursForWeekday - scan row: %v", ErrScanRow, err)
	}

	return &h, nil
}

// UpdateHours обновляет строку расписания. Поля перечислены явно,
// массовое присваивание из входных данных не используется.
func (r *Repository) UpdateHours(ctx context.Context, id int64, startTime, endTime types.TimeString, active bool) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("business_hours").
		Set("start_time", startTime).
		Set("end_time", endTime).
		Set("active", active).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, weekday, start_time, end_time, active").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateHours - build update query: %v", ErrBuildQuery, err)
	}

	var h domain.BusinessHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.Weekday, &h.StartTime, &h.EndTime, &h.Active)
	if err == sql.ErrNoRows {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateHours - scan row: %v", ErrScanRow, err)
	}

	return &h, nil
}

// GetBlockedDate получает блокировку для конкретной даты.
// Отсутствие блокировки - нормальный случай (ErrBlockedDateNotFound).
func (r *Repository) GetBlockedDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "blocked_date", "reason").
		From("blocked_dates").
		Where(squirrel.Eq{"blocked_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDate - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.BlockedDate
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.Date, &b.Reason)
	if err == sql.ErrNoRows {
		return nil, ErrBlockedDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDate - scan row: %v", ErrScanRow, err)
	}

	return &b, nil
}

// ListBlockedDates получает все заблокированные даты в хронологическом порядке
func (r *Repository) ListBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "blocked_date", "reason").
		From("blocked_dates").
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocked := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var b domain.BlockedDate
		if err := rows.Scan(&b.ID, &b.Date, &b.Reason); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedDates - scan row: %v", ErrScanRow, err)
		}
		blocked = append(blocked, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return blocked, nil
}

// CreateBlockedDate блокирует дату. Уникальность даты enforced на уровне БД,
// повторная блокировка возвращает ErrDateAlreadyBlocked.
func (r *Repository) CreateBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("blocked_date", "reason").
		Values(blocked.Date, blocked.Reason).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDateAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: CreateBlockedDate - execute insert: %v", ErrExecQuery, err)
	}

	return blocked, nil
}

// DeleteBlockedDate снимает блокировку даты
func (r *Repository) DeleteBlockedDate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}
