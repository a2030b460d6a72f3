package domain

import "math"

// Booking rules
const (
	SlotDurationMinutes   = 30  // fixed size of a bookable slot
	MinDurationMinutes    = 30  // minimum reservation length
	MaxAdvanceMonths      = 3   // how far ahead a reservation may be placed
	MaxNotesLength        = 500
	MaxCancelReasonLength = 500
)

// Payment reconciliation
const (
	// SettlementTolerance допуск при сравнении оплаченной суммы с начисленной
	SettlementTolerance = 0.01
)

// Credential issuance
const (
	CredentialTTLDays = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие корт
// Используются при расчёте свободных слотов и проверке пересечений
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses статусы, занимающие корт
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}

// Round2 rounds a monetary amount to 2 decimals
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
