package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// AssociationRepository интерфейс репозитория связок бронирование-корт
type AssociationRepository interface {
	Create(ctx context.Context, assoc *domain.CourtAssociation) (*domain.CourtAssociation, error)
}

// FacilityServiceClient интерфейс клиента для FacilityService
type FacilityServiceClient interface {
	GetCourt(ctx context.Context, courtID int64) (*facilityservice.Court, error)
	GetDiscipline(ctx context.Context, disciplineID int64) (*facilityservice.Discipline, error)
}

// PersonServiceClient интерфейс клиента для PersonService
type PersonServiceClient interface {
	GetPerson(ctx context.Context, personID int64) (*personservice.Person, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
