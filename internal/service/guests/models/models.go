package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Request модели

// InviteGuestRequest запрос на приглашение гостя
type InviteGuestRequest struct {
	RequesterID int64   `json:"requesterId"`
	GuestID     int64   `json:"guestId"`
	Notes       *string `json:"notes,omitempty"`
}

// AttendanceRequest запрос на отметку посещения
type AttendanceRequest struct {
	Attended bool `json:"attended"`
}

// UpdateParticipationRequest запрос на обновление заметок приглашения
type UpdateParticipationRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// Response модели

// ParticipationResponse ответ с данными приглашения
type ParticipationResponse struct {
	ReservationID int64   `json:"reservationId"`
	GuestID       int64   `json:"guestId"`
	Confirmed     bool    `json:"confirmed"`
	Attended      bool    `json:"attended"`
	Notified      bool    `json:"notified"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ParticipationListResponse ответ со списком приглашений
type ParticipationListResponse struct {
	Participations []ParticipationResponse `json:"participations"`
}

// GuestCountsResponse счётчики гостей бронирования
type GuestCountsResponse struct {
	ReservationID int64 `json:"reservationId"`
	Total         int64 `json:"total"`
	Confirmed     int64 `json:"confirmed"`
	Attended      int64 `json:"attended"`
	MaxGuests     int   `json:"maxGuests"`
}

// Методы конвертации

// FromDomainParticipation конвертирует domain модель в DTO
func FromDomainParticipation(p *domain.GuestParticipation) *ParticipationResponse {
	if p == nil {
		return nil
	}

	return &ParticipationResponse{
		ReservationID: p.ReservationID,
		GuestID:       p.GuestID,
		Confirmed:     p.Confirmed,
		Attended:      p.Attended,
		Notified:      p.Notified,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainParticipationList конвертирует список domain моделей в DTO
func FromDomainParticipationList(participations []*domain.GuestParticipation) *ParticipationListResponse {
	if participations == nil {
		return &ParticipationListResponse{
			Participations: []ParticipationResponse{},
		}
	}

	resp := &ParticipationListResponse{
		Participations: make([]ParticipationResponse, len(participations)),
	}

	for i, p := range participations {
		if pResp := FromDomainParticipation(p); pResp != nil {
			resp.Participations[i] = *pResp
		}
	}

	return resp
}
