package domain

import "time"

// PaymentStatus represents the settlement state of a payment record
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
)

// Payment is a ledger record for a reservation. Records are appended by the
// external payments component; this service only reads confirmed ones
// during reconciliation.
type Payment struct {
	ID            int64
	ReservationID int64
	ClientID      int64
	Amount        float64
	PaidAt        time.Time
	Method        string
	Status        PaymentStatus
	ReferenceCode string
	Description   *string

	CreatedAt time.Time
}

// IsConfirmed returns true if the payment counts towards settlement
func (p *Payment) IsConfirmed() bool {
	return p.Status == PaymentConfirmed
}
