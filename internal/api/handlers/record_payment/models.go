package record_payment

import (
	"fmt"
	"time"

	uc "github.com/m04kA/SMC-CourtService/internal/usecase/record_payment"
)

// RecordPaymentRequest HTTP request model
type RecordPaymentRequest struct {
	Amount        float64 `json:"amount"`
	PaidAt        string  `json:"paidAt"` // ISO 8601 format
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	ReferenceCode string  `json:"referenceCode"`
	Description   *string `json:"description,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *RecordPaymentRequest) ToUseCaseRequest(reservationID, clientID int64) (*uc.Request, error) {
	paidAt, err := time.Parse(time.RFC3339, r.PaidAt)
	if err != nil {
		return nil, fmt.Errorf("invalid paidAt: %w", err)
	}

	return &uc.Request{
		ReservationID: reservationID,
		ClientID:      clientID,
		Amount:        r.Amount,
		PaidAt:        paidAt,
		Method:        r.Method,
		Status:        r.Status,
		ReferenceCode: r.ReferenceCode,
		Description:   r.Description,
	}, nil
}
