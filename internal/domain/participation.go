package domain

import "time"

// GuestParticipation is a guest's invitation record for a reservation,
// keyed by (reservation, guest).
type GuestParticipation struct {
	ReservationID int64
	GuestID       int64

	Confirmed bool
	Attended  bool
	Notified  bool
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestCounts aggregate counters for a reservation's guest list
type GuestCounts struct {
	Total     int64
	Confirmed int64
	Attended  int64
}

// MaxGuests returns the guest capacity ceiling for a court:
// one seat is always reserved for the paying client.
func MaxGuests(courtCapacity int) int {
	if courtCapacity <= 1 {
		return 0
	}
	return courtCapacity - 1
}
