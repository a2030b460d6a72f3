package association

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

// associationColumns полный набор колонок таблицы reservation_courts
var associationColumns = []string{
	"reservation_id",
	"court_id",
	"discipline_id",
	"amount",
	"confirmed_guest_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со связками бронирование-корт-дисциплина
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория связок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую связку.
// Дубликат по тройке ключей возвращает ErrAssociationExists.
func (r *Repository) Create(ctx context.Context, assoc *domain.CourtAssociation) (*domain.CourtAssociation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_courts").
		Columns(
			"reservation_id",
			"court_id",
			"discipline_id",
			"amount",
			"confirmed_guest_count",
		).
		Values(
			assoc.ReservationID,
			assoc.CourtID,
			assoc.DisciplineID,
			assoc.Amount,
			assoc.ConfirmedGuestCount,
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
			return nil, ErrAssociationExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	assoc.CreatedAt = createdAt.Time
	assoc.UpdatedAt = updatedAt.Time

	return assoc, nil
}

// GetByKey получает связку по тройке (бронирование, корт, дисциплина)
func (r *Repository) GetByKey(ctx context.Context, key domain.AssociationKey) (*domain.CourtAssociation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(associationColumns...).
		From("reservation_courts").
		Where(squirrel.Eq{
			"reservation_id": key.ReservationID,
			"court_id":       key.CourtID,
			"discipline_id":  key.DisciplineID,
		})

	// Внутри транзакции блокируем строку: инкремент счётчика гостей
	// идёт по проверенному состоянию
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	assoc, err := scanAssociation(row)
	if err == sql.ErrNoRows {
		return nil, ErrAssociationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan association: %v", ErrScanRow, err)
	}

	return assoc, nil
}

// Exists проверяет существование связки по тройке ключей
func (r *Repository) Exists(ctx context.Context, key domain.AssociationKey) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("reservation_courts").
		Where(squirrel.Eq{
			"reservation_id": key.ReservationID,
			"court_id":       key.CourtID,
			"discipline_id":  key.DisciplineID,
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

// ListByReservation получает все связки бронирования
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.CourtAssociation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(associationColumns...).
		From("reservation_courts").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("court_id ASC, discipline_id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
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

	return scanAssociations(rows)
}

// ListByCourt получает все связки по корту
func (r *Repository) ListByCourt(ctx context.Context, courtID int64) ([]*domain.CourtAssociation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(associationColumns...).
		From("reservation_courts").
		Where(squirrel.Eq{"court_id": courtID}).
		OrderBy("reservation_id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourt - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourt - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAssociations(rows)
}

// IncrementConfirmedGuests атомарно увеличивает счётчик подтверждённых гостей.
// Счётчик монотонный: при удалении гостя он не уменьшается.
func (r *Repository) IncrementConfirmedGuests(ctx context.Context, key domain.AssociationKey) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservation_courts").
		Set("confirmed_guest_count", squirrel.Expr("confirmed_guest_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"reservation_id": key.ReservationID,
			"court_id":       key.CourtID,
			"discipline_id":  key.DisciplineID,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementConfirmedGuests - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "IncrementConfirmedGuests")
}

// Delete удаляет связку по тройке ключей
func (r *Repository) Delete(ctx context.Context, key domain.AssociationKey) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservation_courts").
		Where(squirrel.Eq{
			"reservation_id": key.ReservationID,
			"court_id":       key.CourtID,
			"discipline_id":  key.DisciplineID,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

// DeleteByReservation удаляет все связки бронирования
func (r *Repository) DeleteByReservation(ctx context.Context, reservationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservation_courts").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByReservation - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByReservation - execute query: %v", ErrExecQuery, err)
	}

	return nil
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
		return ErrAssociationNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAssociation сканирует одну строку в связку
func scanAssociation(row rowScanner) (*domain.CourtAssociation, error) {
	var assoc domain.CourtAssociation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&assoc.ReservationID,
		&assoc.CourtID,
		&assoc.DisciplineID,
		&assoc.Amount,
		&assoc.ConfirmedGuestCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	assoc.CreatedAt = createdAt.Time
	assoc.UpdatedAt = updatedAt.Time

	return &assoc, nil
}

// scanAssociations сканирует результаты запроса в слайс связок
func scanAssociations(rows *sql.Rows) ([]*domain.CourtAssociation, error) {
	associations := make([]*domain.CourtAssociation, 0)

	for rows.Next() {
		assoc, err := scanAssociation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAssociations - scan row: %v", ErrScanRow, err)
		}
		associations = append(associations, assoc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAssociations - rows error: %v", ErrScanRow, err)
	}

	return associations, nil
}
