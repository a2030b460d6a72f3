package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Request модели

// AssociateCourtRequest запрос на привязку корта и дисциплины к бронированию
type AssociateCourtRequest struct {
	RequesterID  int64 `json:"requesterId"`
	CourtID      int64 `json:"courtId"`
	DisciplineID int64 `json:"disciplineId"`
}

// QuoteRequest запрос на расчёт стоимости без сохранения
type QuoteRequest struct {
	CourtID      int64 `json:"courtId"`
	DisciplineID int64 `json:"disciplineId"`
}

// Response модели

// AssociationResponse ответ с данными связки
type AssociationResponse struct {
	ReservationID       int64   `json:"reservationId"`
	CourtID             int64   `json:"courtId"`
	DisciplineID        int64   `json:"disciplineId"`
	Amount              float64 `json:"amount"`
	ConfirmedGuestCount int     `json:"confirmedGuestCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QuoteResponse расчёт стоимости интервала бронирования на корте
type QuoteResponse struct {
	ReservationID   int64   `json:"reservationId"`
	CourtID         int64   `json:"courtId"`
	DisciplineID    int64   `json:"disciplineId"`
	HourlyRate      float64 `json:"hourlyRate"`
	DurationMinutes int     `json:"durationMinutes"`
	Amount          float64 `json:"amount"`
}

// AssociationListResponse ответ со списком связок
type AssociationListResponse struct {
	Associations []AssociationResponse `json:"associations"`
}

// Методы конвертации

// FromDomainAssociation конвертирует domain модель в DTO
func FromDomainAssociation(a *domain.CourtAssociation) *AssociationResponse {
	if a == nil {
		return nil
	}

	return &AssociationResponse{
		ReservationID:       a.ReservationID,
		CourtID:             a.CourtID,
		DisciplineID:        a.DisciplineID,
		Amount:              a.Amount,
		ConfirmedGuestCount: a.ConfirmedGuestCount,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

// FromDomainAssociationList конвертирует список domain моделей в DTO
func FromDomainAssociationList(assocs []*domain.CourtAssociation) *AssociationListResponse {
	if assocs == nil {
		return &AssociationListResponse{
			Associations: []AssociationResponse{},
		}
	}

	resp := &AssociationListResponse{
		Associations: make([]AssociationResponse, len(assocs)),
	}

	for i, a := range assocs {
		if assocResp := FromDomainAssociation(a); assocResp != nil {
			resp.Associations[i] = *assocResp
		}
	}

	return resp
}
