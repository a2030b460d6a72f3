package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in_progress"
	StatusCompleted  ReservationStatus = "completed"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// Reservation represents a court reservation made by a client
type Reservation struct {
	ID              int64
	ClientID        int64
	ReservationDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int // derived: EndTime - StartTime
	Status          ReservationStatus
	Notes           *string

	// Payment reconciliation snapshot (see usecase/reconcile_payment)
	TotalPaid float64
	Balance   float64
	FullyPaid bool

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its court slot:
// guests can be confirmed and hard deletion is forbidden.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed || r.Status == StatusInProgress
}

// IsModifiable returns true if the reservation may still be edited
// and new guests invited.
func (r *Reservation) IsModifiable() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the reservation may be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status != StatusCancelled && r.Status != StatusCompleted && r.Status != StatusNoShow
}

// IsTerminal returns true if no further transitions are possible
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled || r.Status == StatusNoShow
}

// BlocksCourt returns true if the reservation occupies its time interval
// for availability purposes
func (r *Reservation) BlocksCourt() bool {
	return r.Status != StatusCancelled && r.Status != StatusNoShow
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	CourtID         *int64             // Фильтр по корту (через association)
	ClientID        *int64             // Фильтр по клиенту
	Date            *time.Time         // Конкретная дата
	StartDate       *time.Time         // Начало периода
	EndDate         *time.Time         // Конец периода
	Status          *ReservationStatus // Фильтр по статусу
	IncludeInactive bool               // Включать ли отменённые и no-show
}
