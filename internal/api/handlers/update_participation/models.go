package update_participation

import (
	"github.com/m04kA/SMC-CourtService/internal/service/guests/models"
)

// UpdateParticipationRequest HTTP request model
type UpdateParticipationRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateParticipationRequest) ToServiceRequest() *models.UpdateParticipationRequest {
	return &models.UpdateParticipationRequest{
		Notes: r.Notes,
	}
}
