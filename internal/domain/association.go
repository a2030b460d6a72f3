package domain

import "time"

// CourtAssociation binds a reservation to exactly one (court, discipline)
// pair and carries the computed cost of the booked interval.
// The key is ternary, but the business flow creates at most one
// association per reservation.
type CourtAssociation struct {
	ReservationID int64
	CourtID       int64
	DisciplineID  int64

	Amount               float64 // court hourly rate x booked hours, 2 decimals
	ConfirmedGuestCount  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssociationKey composite key of a court association
type AssociationKey struct {
	ReservationID int64
	CourtID       int64
	DisciplineID  int64
}

// Key returns the composite key of the association
func (a *CourtAssociation) Key() AssociationKey {
	return AssociationKey{
		ReservationID: a.ReservationID,
		CourtID:       a.CourtID,
		DisciplineID:  a.DisciplineID,
	}
}
