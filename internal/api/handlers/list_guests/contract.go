package list_guests

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/guests/models"
)

type GuestService interface {
	ListByReservation(ctx context.Context, reservationID int64, onlyConfirmed bool) (*models.ParticipationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
