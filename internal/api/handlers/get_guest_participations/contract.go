package get_guest_participations

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/guests/models"
)

type GuestService interface {
	ListByGuest(ctx context.Context, guestID int64) (*models.ParticipationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
