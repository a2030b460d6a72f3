package remove_court

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

type AssociationService interface {
	Remove(ctx context.Context, key domain.AssociationKey, requesterID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
