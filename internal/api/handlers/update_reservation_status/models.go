package update_reservation_status

import (
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(requesterID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		RequesterID: requesterID,
		Status:      r.Status,
	}
}
