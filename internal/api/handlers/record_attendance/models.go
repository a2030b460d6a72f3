package record_attendance

import (
	"github.com/m04kA/SMC-CourtService/internal/service/guests/models"
)

// AttendanceRequest HTTP request model
type AttendanceRequest struct {
	Attended bool `json:"attended"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *AttendanceRequest) ToServiceRequest() *models.AttendanceRequest {
	return &models.AttendanceRequest{
		Attended: r.Attended,
	}
}
