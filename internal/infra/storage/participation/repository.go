package participation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// participationColumns полный набор колонок таблицы participations
var participationColumns = []string{
	"reservation_id",
	"guest_id",
	"confirmed",
	"attended",
	"notified",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с приглашениями гостей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория приглашений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое приглашение.
// Повторное приглашение того же гостя возвращает ErrParticipationExists.
func (r *Repository) Create(ctx context.Context, p *domain.GuestParticipation) (*domain.GuestParticipation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("participations").
		Columns(
			"reservation_id",
			"guest_id",
			"confirmed",
			"attended",
			"notified",
			"notes",
		).
		Values(
			p.ReservationID,
			p.GuestID,
			p.Confirmed,
			p.Attended,
			p.Notified,
			p.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrParticipationExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// Get получает приглашение по паре (бронирование, гость)
func (r *Repository) Get(ctx context.Context, reservationID, guestID int64) (*domain.GuestParticipation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(participationColumns...).
		From("participations").
		Where(squirrel.Eq{
			"reservation_id": reservationID,
			"guest_id":       guestID,
		})

	// Внутри транзакции блокируем строку: подтверждение гостя
	// проверяет флаг confirmed по свежему состоянию
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanParticipation(row)
	if err == sql.ErrNoRows {
		return nil, ErrParticipationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan participation: %v", ErrScanRow, err)
	}

	return p, nil
}

// Exists проверяет существование приглашения
func (r *Repository) Exists(ctx context.Context, reservationID, guestID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("participations").
		Where(squirrel.Eq{
			"reservation_id": reservationID,
			"guest_id":       guestID,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Update обновляет флаги и заметки приглашения
func (r *Repository) Update(ctx context.Context, p *domain.GuestParticipation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("participations").
		Set("confirmed", p.Confirmed).
		Set("attended", p.Attended).
		Set("notified", p.Notified).
		Set("notes", p.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"reservation_id": p.ReservationID,
			"guest_id":       p.GuestID,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Update")
}

// Delete удаляет приглашение
func (r *Repository) Delete(ctx context.Context, reservationID, guestID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("participations").
		Where(squirrel.Eq{
			"reservation_id": reservationID,
			"guest_id":       guestID,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

// ListByReservation получает приглашения бронирования.
// При onlyConfirmed=true возвращает только подтверждённых гостей.
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64, onlyConfirmed bool) ([]*domain.GuestParticipation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(participationColumns...).
		From("participations").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("created_at ASC")

	if onlyConfirmed {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"confirmed": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanParticipations(rows)
}

// ListByGuest получает все приглашения гостя
func (r *Repository) ListByGuest(ctx context.Context, guestID int64) ([]*domain.GuestParticipation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(participationColumns...).
		From("participations").
		Where(squirrel.Eq{"guest_id": guestID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByGuest - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGuest - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanParticipations(rows)
}

// CountByReservation считает приглашения бронирования.
// Внутри транзакции блокирует строки - проверка лимита приглашений
// выполняется по зафиксированному количеству.
func (r *Repository) CountByReservation(ctx context.Context, reservationID int64) (*domain.GuestCounts, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE confirmed)",
		"COUNT(*) FILTER (WHERE attended)",
	).
		From("participations").
		Where(squirrel.Eq{"reservation_id": reservationID})

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByReservation - build select query: %v", ErrBuildQuery, err)
	}

	var counts domain.GuestCounts
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&counts.Total,
		&counts.Confirmed,
		&counts.Attended,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByReservation - execute query: %v", ErrExecQuery, err)
	}

	return &counts, nil
}

// execExpectingRow выполняет запрос и требует ровно одну затронутую строку
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrParticipationNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanParticipation сканирует одну строку в приглашение
func scanParticipation(row rowScanner) (*domain.GuestParticipation, error) {
	var p domain.GuestParticipation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ReservationID,
		&p.GuestID,
		&p.Confirmed,
		&p.Attended,
		&p.Notified,
		&p.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// scanParticipations сканирует результаты запроса в слайс приглашений
func scanParticipations(rows *sql.Rows) ([]*domain.GuestParticipation, error) {
	participations := make([]*domain.GuestParticipation, 0)

	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanParticipations - scan row: %v", ErrScanRow, err)
		}
		participations = append(participations, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanParticipations - rows error: %v", ErrScanRow, err)
	}

	return participations, nil
}
