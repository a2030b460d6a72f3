package guests

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// AssociationRepository интерфейс репозитория связок бронирование-корт
type AssociationRepository interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.CourtAssociation, error)
	IncrementConfirmedGuests(ctx context.Context, key domain.AssociationKey) error
}

// ParticipationRepository интерфейс репозитория приглашений
type ParticipationRepository interface {
	Create(ctx context.Context, p *domain.GuestParticipation) (*domain.GuestParticipation, error)
	Get(ctx context.Context, reservationID, guestID int64) (*domain.GuestParticipation, error)
	Update(ctx context.Context, p *domain.GuestParticipation) error
	Delete(ctx context.Context, reservationID, guestID int64) error
	ListByReservation(ctx context.Context, reservationID int64, onlyConfirmed bool) ([]*domain.GuestParticipation, error)
	ListByGuest(ctx context.Context, guestID int64) ([]*domain.GuestParticipation, error)
	CountByReservation(ctx context.Context, reservationID int64) (*domain.GuestCounts, error)
}

// PersonServiceClient интерфейс клиента PersonService
type PersonServiceClient interface {
	GetPerson(ctx context.Context, personID int64) (*personservice.Person, error)
}

// FacilityServiceClient интерфейс клиента FacilityService
type FacilityServiceClient interface {
	GetCourt(ctx context.Context, courtID int64) (*facilityservice.Court, error)
}

// CredentialIssuer выдаёт пропуск участнику бронирования.
// Вызывается после подтверждения гостя, ошибка выдачи не фатальна.
type CredentialIssuer interface {
	IssueForPerson(ctx context.Context, reservationID, personID int64) error
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
