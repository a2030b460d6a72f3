package credentials

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
}

// ParticipationRepository интерфейс репозитория приглашений
type ParticipationRepository interface {
	Get(ctx context.Context, reservationID, guestID int64) (*domain.GuestParticipation, error)
}

// CredentialRepository интерфейс репозитория пропусков
type CredentialRepository interface {
	Create(ctx context.Context, c *domain.Credential) (*domain.Credential, error)
	GetByCode(ctx context.Context, code string) (*domain.Credential, error)
	GetActiveByReservationAndPerson(ctx context.Context, reservationID, personID int64) (*domain.Credential, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Credential, error)
	ListByPerson(ctx context.Context, personID int64) ([]*domain.Credential, error)
	UpdateImageURL(ctx context.Context, id int64, imageURL string) error
	Deactivate(ctx context.Context, id int64) error
}

// FacilityServiceClient интерфейс клиента FacilityService
type FacilityServiceClient interface {
	GetCourt(ctx context.Context, courtID int64) (*facilityservice.Court, error)
}

// PersonServiceClient интерфейс клиента PersonService
type PersonServiceClient interface {
	GetPerson(ctx context.Context, personID int64) (*personservice.Person, error)
}

// QREncoderClient интерфейс клиента рендеринга QR-изображений
type QREncoderClient interface {
	Encode(ctx context.Context, content string, fileName string) (string, error)
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
