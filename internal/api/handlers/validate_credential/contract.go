package validate_credential

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/credentials/models"
)

type CredentialService interface {
	ValidateByCode(ctx context.Context, code string) (*models.ValidationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
