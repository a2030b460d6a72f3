package domain

import "time"

// Credential is a time-bounded entry token (QR) for a reservation
// participant. At most one active credential exists per
// (reservation, person) pair.
type Credential struct {
	ID            int64
	Code          string // opaque unique code
	ReservationID int64
	PersonID      int64
	IsClient      bool // true when the owner is the paying client
	ImageURL      *string
	Description   *string

	GeneratedAt time.Time
	ExpiresAt   time.Time // GeneratedAt + CredentialTTLDays
	Active      bool
}

// IsExpired returns true if the credential is past its expiry at the given moment
func (c *Credential) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// IsValid returns true if the credential is active and not expired
func (c *Credential) IsValid(now time.Time) bool {
	return c.Active && !c.IsExpired(now)
}

// CredentialPayload is the structured record embedded in the encoded
// credential. Field order is fixed so the encoded form is deterministic.
type CredentialPayload struct {
	ReservationID   int64   `json:"reservationId"`
	CourtID         int64   `json:"courtId"`
	CourtName       string  `json:"courtName"`
	ClientName      string  `json:"clientName"`
	ParticipantName string  `json:"participantName"`
	Date            string  `json:"date"`      // YYYY-MM-DD
	StartTime       string  `json:"startTime"` // HH:MM
	EndTime         string  `json:"endTime"`   // HH:MM
	Amount          float64 `json:"amount"`
}
