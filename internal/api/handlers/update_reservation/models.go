package update_reservation

import (
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
)

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	ReservationDate string  `json:"reservationDate"` // "2026-09-15"
	StartTime       string  `json:"startTime"`       // "10:00"
	EndTime         string  `json:"endTime"`         // "11:30"
	Notes           *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateReservationRequest) ToServiceRequest(requesterID int64) *models.UpdateReservationRequest {
	return &models.UpdateReservationRequest{
		RequesterID:     requesterID,
		ReservationDate: r.ReservationDate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Notes:           r.Notes,
	}
}
