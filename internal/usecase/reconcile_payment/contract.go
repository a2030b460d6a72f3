package reconcile_payment

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdatePaymentState(ctx context.Context, id int64, totalPaid, balance float64, fullyPaid bool) error
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// AssociationRepository интерфейс репозитория связок бронирование-корт
type AssociationRepository interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.CourtAssociation, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	SumConfirmedByReservation(ctx context.Context, reservationID int64) (float64, error)
}

// ParticipationRepository интерфейс репозитория приглашений
type ParticipationRepository interface {
	ListByReservation(ctx context.Context, reservationID int64, onlyConfirmed bool) ([]*domain.GuestParticipation, error)
}

// CredentialIssuer выдаёт пропуска участникам после подтверждения оплаты.
// Ошибки выдачи не откатывают сверку.
type CredentialIssuer interface {
	IssueForPerson(ctx context.Context, reservationID, personID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
