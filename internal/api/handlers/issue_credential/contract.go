package issue_credential

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/credentials/models"
)

type CredentialService interface {
	Issue(ctx context.Context, reservationID int64, req *models.IssueCredentialRequest) (*models.CredentialResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
