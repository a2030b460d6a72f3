package credential

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// credentialColumns полный набор колонок таблицы credentials
var credentialColumns = []string{
	"id",
	"code",
	"reservation_id",
	"person_id",
	"is_client",
	"image_url",
	"description",
	"generated_at",
	"expires_at",
	"active",
}

// Repository репозиторий для работы с пропусками (QR-учётными данными)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пропусков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый пропуск
func (r *Repository) Create(ctx context.Context, c *domain.Credential) (*domain.Credential, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("credentials").
		Columns(
			"code",
			"reservation_id",
			"person_id",
			"is_client",
			"image_url",
			"description",
			"generated_at",
			"expires_at",
			"active",
		).
		Values(
			c.Code,
			c.ReservationID,
			c.PersonID,
			c.IsClient,
			c.ImageURL,
			c.Description,
			c.GeneratedAt,
			c.ExpiresAt,
			c.Active,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetByCode получает пропуск по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Credential, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(credentialColumns...).
		From("credentials").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	c, err := scanCredential(row)
	if err == sql.ErrNoRows {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan credential: %v", ErrScanRow, err)
	}

	return c, nil
}

// GetActiveByReservationAndPerson получает активный пропуск участника бронирования.
// Повторная выдача возвращает существующий пропуск вместо создания нового.
func (r *Repository) GetActiveByReservationAndPerson(ctx context.Context, reservationID, personID int64) (*domain.Credential, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(credentialColumns...).
		From("credentials").
		Where(squirrel.Eq{
			"reservation_id": reservationID,
			"person_id":      personID,
			"active":         true,
		}).
		OrderBy("generated_at DESC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByReservationAndPerson - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	c, err := scanCredential(row)
	if err == sql.ErrNoRows {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByReservationAndPerson - scan credential: %v", ErrScanRow, err)
	}

	return c, nil
}

// ListByReservation получает все пропуска бронирования
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Credential, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(credentialColumns...).
		From("credentials").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("generated_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCredentials(rows)
}

// ListByPerson получает все пропуска участника
func (r *Repository) ListByPerson(ctx context.Context, personID int64) ([]*domain.Credential, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(credentialColumns...).
		From("credentials").
		Where(squirrel.Eq{"person_id": personID}).
		OrderBy("generated_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByPerson - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPerson - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCredentials(rows)
}

// UpdateImageURL сохраняет URL отрендеренного QR-изображения
func (r *Repository) UpdateImageURL(ctx context.Context, id int64, imageURL string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("credentials").
		Set("image_url", imageURL).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateImageURL - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateImageURL - execute query: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateImageURL - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

// Deactivate отзывает пропуск
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("credentials").
		Set("active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute query: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

// DeactivateByReservation отзывает все пропуска бронирования.
// Используется при отмене бронирования, отсутствие пропусков не ошибка.
func (r *Repository) DeactivateByReservation(ctx context.Context, reservationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("credentials").
		Set("active", false).
		Where(squirrel.Eq{"reservation_id": reservationID, "active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeactivateByReservation - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeactivateByReservation - execute query: %v", ErrExecQuery, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCredential сканирует одну строку в пропуск
func scanCredential(row rowScanner) (*domain.Credential, error) {
	var c domain.Credential

	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.ReservationID,
		&c.PersonID,
		&c.IsClient,
		&c.ImageURL,
		&c.Description,
		&c.GeneratedAt,
		&c.ExpiresAt,
		&c.Active,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// scanCredentials сканирует результаты запроса в слайс пропусков
func scanCredentials(rows *sql.Rows) ([]*domain.Credential, error) {
	credentials := make([]*domain.Credential, 0)

	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCredentials - scan row: %v", ErrScanRow, err)
		}
		credentials = append(credentials, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCredentials - rows error: %v", ErrScanRow, err)
	}

	return credentials, nil
}
