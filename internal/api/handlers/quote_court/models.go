package quote_court

import (
	"github.com/m04kA/SMC-CourtService/internal/service/associations/models"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	CourtID      int64 `json:"courtId"`
	DisciplineID int64 `json:"disciplineId"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *QuoteRequest) ToServiceRequest() *models.QuoteRequest {
	return &models.QuoteRequest{
		CourtID:      r.CourtID,
		DisciplineID: r.DisciplineID,
	}
}
