package issue_credential

import (
	"github.com/m04kA/SMC-CourtService/internal/service/credentials/models"
)

// IssueCredentialRequest HTTP request model
type IssueCredentialRequest struct {
	PersonID int64 `json:"personId"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *IssueCredentialRequest) ToServiceRequest() *models.IssueCredentialRequest {
	return &models.IssueCredentialRequest{
		PersonID: r.PersonID,
	}
}
