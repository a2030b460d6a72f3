package associations

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// AssociationRepository интерфейс репозитория связок бронирование-корт
type AssociationRepository interface {
	Create(ctx context.Context, assoc *domain.CourtAssociation) (*domain.CourtAssociation, error)
	GetByKey(ctx context.Context, key domain.AssociationKey) (*domain.CourtAssociation, error)
	Exists(ctx context.Context, key domain.AssociationKey) (bool, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.CourtAssociation, error)
	ListByCourt(ctx context.Context, courtID int64) ([]*domain.CourtAssociation, error)
	Delete(ctx context.Context, key domain.AssociationKey) error
}

// FacilityServiceClient интерфейс клиента FacilityService
type FacilityServiceClient interface {
	GetCourt(ctx context.Context, courtID int64) (*facilityservice.Court, error)
	GetDiscipline(ctx context.Context, disciplineID int64) (*facilityservice.Discipline, error)
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
