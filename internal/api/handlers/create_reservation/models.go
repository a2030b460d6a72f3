package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	uc "github.com/m04kA/SMC-CourtService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CourtID      int64   `json:"courtId"`
	DisciplineID int64   `json:"disciplineId"`
	Date         string  `json:"date"`      // "2026-09-15"
	StartTime    string  `json:"startTime"` // "10:00"
	EndTime      string  `json:"endTime"`   // "11:30"
	Notes        *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(clientID int64) (*uc.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	return &uc.Request{
		ClientID:     clientID,
		CourtID:      r.CourtID,
		DisciplineID: r.DisciplineID,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Notes:        r.Notes,
	}, nil
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	CourtID         int64   `json:"courtId"`
	DisciplineID    int64   `json:"disciplineId"`
	ReservationDate string  `json:"reservationDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CourtName       string  `json:"courtName"`
	HourlyRate      float64 `json:"hourlyRate"`
	Amount          float64 `json:"amount"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *uc.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		CourtID:         resp.CourtID,
		DisciplineID:    resp.DisciplineID,
		ReservationDate: resp.ReservationDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CourtName:       resp.CourtName,
		HourlyRate:      resp.HourlyRate,
		Amount:          resp.Amount,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
