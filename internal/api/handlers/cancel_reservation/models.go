package cancel_reservation

import (
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	CancellationReason string  `json:"cancellationReason"`
	Notes              *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelReservationRequest) ToServiceRequest(requesterID int64) *models.CancelReservationRequest {
	return &models.CancelReservationRequest{
		RequesterID:        requesterID,
		CancellationReason: r.CancellationReason,
		Notes:              r.Notes,
	}
}
