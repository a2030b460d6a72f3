package create_reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
)

func validTestRequest() *Request {
	return &Request{
		ClientID:     1,
		CourtID:      2,
		DisciplineID: 3,
		Date:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "11:30",
	}
}

func TestValidateRequest_OK(t *testing.T) {
	assert.NoError(t, validateRequest(validTestRequest()))
}

func TestValidateRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"non-positive clientID", func(r *Request) { r.ClientID = 0 }},
		{"non-positive courtID", func(r *Request) { r.CourtID = -1 }},
		{"non-positive disciplineID", func(r *Request) { r.DisciplineID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty startTime", func(r *Request) { r.StartTime = "" }},
		{"bad startTime format", func(r *Request) { r.StartTime = "25:99" }},
		{"empty endTime", func(r *Request) { r.EndTime = "" }},
		{"bad endTime format", func(r *Request) { r.EndTime = "11-30" }},
		{"notes too long", func(r *Request) {
			long := strings.Repeat("a", domain.MaxNotesLength+1)
			r.Notes = &long
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTestRequest()
			tt.mutate(req)

			err := validateRequest(req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidateTimeRange(t *testing.T) {
	duration, err := validateTimeRange("10:00", "11:30")
	require.NoError(t, err)
	assert.Equal(t, 90, duration)

	_, err = validateTimeRange("11:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = validateTimeRange("10:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Короче минимальной длительности
	_, err = validateTimeRange("10:00", "10:15")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	assert.NoError(t, validateDate(now, now), "today is bookable")
	assert.NoError(t, validateDate(now.AddDate(0, 0, 1), now))

	err := validateDate(now.AddDate(0, 0, -1), now)
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Ровно на границе окна бронирования
	assert.NoError(t, validateDate(now.AddDate(0, domain.MaxAdvanceMonths, 0), now))

	err = validateDate(now.AddDate(0, domain.MaxAdvanceMonths, 1), now)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestValidateOperatingHours(t *testing.T) {
	openTime, closeTime := "08:00", "22:00"
	area := &facilityservice.Area{ID: 1, Name: "Main hall", OpenTime: &openTime, CloseTime: &closeTime}

	assert.NoError(t, validateOperatingHours(area, "10:00", "11:00"))
	assert.NoError(t, validateOperatingHours(area, "08:00", "22:00"), "full window is allowed")

	err := validateOperatingHours(area, "07:00", "09:00")
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	err = validateOperatingHours(area, "21:00", "23:00")
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	noHours := &facilityservice.Area{ID: 2, Name: "Unscheduled"}
	err = validateOperatingHours(noHours, "10:00", "11:00")
	assert.ErrorIs(t, err, ErrHoursNotConfigured)
}

func TestFindTimeConflict(t *testing.T) {
	existing := []*domain.Reservation{
		{ID: 10, Status: domain.StatusConfirmed, StartTime: "10:00", EndTime: "11:00"},
		{ID: 11, Status: domain.StatusCancelled, StartTime: "12:00", EndTime: "13:00"},
	}

	conflict := findTimeConflict("10:30", "11:30", existing)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(10), conflict.ID)

	// Границы впритык пересечением не считаются
	assert.Nil(t, findTimeConflict("11:00", "12:00", existing))
	assert.Nil(t, findTimeConflict("09:00", "10:00", existing))

	// Отменённое бронирование корт не занимает
	assert.Nil(t, findTimeConflict("12:00", "13:00", existing))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)

	assert.True(t, isDateInPast(now.AddDate(0, 0, -1), now))
	assert.False(t, isDateInPast(now, now), "same day is not the past")
	// Время суток не учитывается
	assert.False(t, isDateInPast(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(now.AddDate(0, 0, 1), now))
}
