package associate_court

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/associations/models"
)

type AssociationService interface {
	Associate(ctx context.Context, reservationID int64, req *models.AssociateCourtRequest) (*models.AssociationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
