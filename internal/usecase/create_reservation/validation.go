package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.DisciplineID <= 0 {
		return fmt.Errorf("%w: disciplineID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateTimeRange проверяет порядок и минимальную длительность интервала
func validateTimeRange(startTime, endTime types.TimeString) (int, error) {
	if !startTime.IsBefore(endTime) {
		return 0, fmt.Errorf("%w: start time must be before end time", ErrInvalidTimeRange)
	}

	durationMinutes, err := startTime.MinutesUntil(endTime)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if durationMinutes < domain.MinDurationMinutes {
		return 0, fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidTimeRange, domain.MinDurationMinutes)
	}

	return durationMinutes, nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(reservationDate time.Time, now time.Time) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(reservationDate, now) {
		return ErrInvalidDate
	}

	// Проверяем окно бронирования вперёд
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, domain.MaxAdvanceMonths, 0)

	dateOnly := time.Date(reservationDate.Year(), reservationDate.Month(), reservationDate.Day(), 0, 0, 0, 0, time.UTC)

	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d months in advance", ErrDateTooFarInFuture, domain.MaxAdvanceMonths)
	}

	return nil
}

// validateOperatingHours проверяет, что интервал лежит в часах работы зоны.
// Зона без настроенного расписания бронированию не подлежит.
func validateOperatingHours(area *facilityservice.Area, startTime, endTime types.TimeString) error {
	if !area.HasOperatingHours() {
		return ErrHoursNotConfigured
	}

	openTime, err := types.NewTimeStringFromString(*area.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: invalid area open time: %v", ErrInternal, err)
	}

	closeTime, err := types.NewTimeStringFromString(*area.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: invalid area close time: %v", ErrInternal, err)
	}

	if startTime.IsBefore(openTime) || endTime.IsAfter(closeTime) {
		return fmt.Errorf("%w: area is open %s - %s", ErrOutsideOperatingHours, openTime, closeTime)
	}

	return nil
}

// findTimeConflict ищет пересечение интервала с существующими бронированиями.
// Граничные случаи (конец одного совпадает с началом другого) пересечением не считаются.
func findTimeConflict(startTime, endTime types.TimeString, reservations []*domain.Reservation) *domain.Reservation {
	for _, res := range reservations {
		// Отменённые и no-show не занимают корт
		if !res.BlocksCourt() {
			continue
		}

		if res.StartTime.IsBefore(endTime) && res.EndTime.IsAfter(startTime) {
			return res
		}
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня).
// Сравниваются только календарные даты, независимо от часового пояса.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
