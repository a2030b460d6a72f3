package invite_guest

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/guests/models"
)

type GuestService interface {
	Invite(ctx context.Context, reservationID int64, req *models.InviteGuestRequest) (*models.ParticipationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
