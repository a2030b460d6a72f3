package record_attendance

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/guests/models"
)

type GuestService interface {
	RecordAttendance(ctx context.Context, reservationID, guestID int64, req *models.AttendanceRequest) (*models.ParticipationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
