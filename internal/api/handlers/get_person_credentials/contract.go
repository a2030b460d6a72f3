package get_person_credentials

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/credentials/models"
)

type CredentialService interface {
	ListByPerson(ctx context.Context, personID int64) (*models.CredentialListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
