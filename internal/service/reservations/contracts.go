package reservations

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string, notes *string) error
	Delete(ctx context.Context, id int64) error
	ListByClient(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// AssociationRepository интерфейс репозитория связок бронирование-корт
type AssociationRepository interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.CourtAssociation, error)
	DeleteByReservation(ctx context.Context, reservationID int64) error
}

// CredentialRepository интерфейс репозитория пропусков
type CredentialRepository interface {
	DeactivateByReservation(ctx context.Context, reservationID int64) error
}

// PersonServiceClient интерфейс клиента PersonService
type PersonServiceClient interface {
	GetPerson(ctx context.Context, personID int64) (*personservice.Person, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
