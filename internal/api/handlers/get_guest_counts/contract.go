package get_guest_counts

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/guests/models"
)

type GuestService interface {
	GetCounts(ctx context.Context, reservationID int64) (*models.GuestCountsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
