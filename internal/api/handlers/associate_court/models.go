package associate_court

import (
	"github.com/m04kA/SMC-CourtService/internal/service/associations/models"
)

// AssociateCourtRequest HTTP request model
type AssociateCourtRequest struct {
	CourtID      int64 `json:"courtId"`
	DisciplineID int64 `json:"disciplineId"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *AssociateCourtRequest) ToServiceRequest(requesterID int64) *models.AssociateCourtRequest {
	return &models.AssociateCourtRequest{
		RequesterID:  requesterID,
		CourtID:      r.CourtID,
		DisciplineID: r.DisciplineID,
	}
}
