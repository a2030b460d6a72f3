package get_reservation_courts

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/associations/models"
)

type AssociationService interface {
	ListByReservation(ctx context.Context, reservationID int64) (*models.AssociationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
