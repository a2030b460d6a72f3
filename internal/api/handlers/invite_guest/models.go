package invite_guest

import (
	"github.com/m04kA/SMC-CourtService/internal/service/guests/models"
)

// InviteGuestRequest HTTP request model
type InviteGuestRequest struct {
	GuestID int64   `json:"guestId"`
	Notes   *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *InviteGuestRequest) ToServiceRequest(requesterID int64) *models.InviteGuestRequest {
	return &models.InviteGuestRequest{
		RequesterID: requesterID,
		GuestID:     r.GuestID,
		Notes:       r.Notes,
	}
}
