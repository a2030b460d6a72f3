package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// UpdateReservationRequest запрос на изменение даты, времени или заметок
type UpdateReservationRequest struct {
	RequesterID     int64   `json:"requesterId"`
	ReservationDate string  `json:"reservationDate"` // "2026-09-15"
	StartTime       string  `json:"startTime"`       // "10:00"
	EndTime         string  `json:"endTime"`         // "11:30"
	Notes           *string `json:"notes,omitempty"`
}

// UpdateStatusRequest запрос на перевод бронирования в новый статус
type UpdateStatusRequest struct {
	RequesterID int64  `json:"requesterId"`
	Status      string `json:"status"`
}

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	RequesterID        int64   `json:"requesterId"`
	CancellationReason string  `json:"cancellationReason"`
	Notes              *string `json:"notes,omitempty"`
}

// GetClientReservationsRequest запрос на получение бронирований клиента
type GetClientReservationsRequest struct {
	ClientID    int64   `json:"clientId"`
	RequesterID int64   `json:"-"` // ID запрашивающего пользователя (из заголовка)
	Status      *string `json:"status,omitempty"`
}

// ListReservationsRequest запрос на получение бронирований с фильтрацией
type ListReservationsRequest struct {
	CourtID         *int64     `json:"courtId,omitempty"`
	ClientID        *int64     `json:"clientId,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		CourtID:         r.CourtID,
		ClientID:        r.ClientID,
		Date:            r.Date,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// CourtAssociationInfo связка корт-дисциплина в составе бронирования
type CourtAssociationInfo struct {
	CourtID             int64   `json:"courtId"`
	DisciplineID        int64   `json:"disciplineId"`
	Amount              float64 `json:"amount"`
	ConfirmedGuestCount int     `json:"confirmedGuestCount"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64  `json:"id"`
	ClientID        int64  `json:"clientId"`
	ReservationDate string `json:"reservationDate"` // "2026-09-15"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "11:30"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	Notes *string `json:"notes,omitempty"`

	// Платёжное состояние, обновляется сверкой платежей
	TotalPaid float64 `json:"totalPaid"`
	Balance   float64 `json:"balance"`
	FullyPaid bool    `json:"fullyPaid"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	Courts []CourtAssociationInfo `json:"courts,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(res *domain.Reservation, assocs []*domain.CourtAssociation) *ReservationResponse {
	if res == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 res.ID,
		ClientID:           res.ClientID,
		ReservationDate:    res.ReservationDate.Format(domain.DateFormat),
		StartTime:          res.StartTime.String(),
		EndTime:            res.EndTime.String(),
		DurationMinutes:    res.DurationMinutes,
		Status:             string(res.Status),
		Notes:              res.Notes,
		TotalPaid:          res.TotalPaid,
		Balance:            res.Balance,
		FullyPaid:          res.FullyPaid,
		CancellationReason: res.CancellationReason,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if res.CancelledAt != nil {
		cancelledStr := res.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	for _, a := range assocs {
		resp.Courts = append(resp.Courts, CourtAssociationInfo{
			CourtID:             a.CourtID,
			DisciplineID:        a.DisciplineID,
			Amount:              a.Amount,
			ConfirmedGuestCount: a.ConfirmedGuestCount,
		})
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, res := range reservations {
		if resResp := FromDomainReservation(res, nil); resResp != nil {
			resp.Reservations[i] = *resResp
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	// Валидируем статус
	validStatuses := []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
