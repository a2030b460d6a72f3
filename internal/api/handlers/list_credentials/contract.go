package list_credentials

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/credentials/models"
)

type CredentialService interface {
	ListByReservation(ctx context.Context, reservationID int64) (*models.CredentialListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
