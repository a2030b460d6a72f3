package confirm_guest

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/guests/models"
)

type GuestService interface {
	Confirm(ctx context.Context, reservationID, guestID int64) (*models.ParticipationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
