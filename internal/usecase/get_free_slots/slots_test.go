package get_free_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func reservation(status domain.ReservationStatus, start, end string) *domain.Reservation {
	return &domain.Reservation{
		Status:    status,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestComputeFreeIntervals_NoReservations(t *testing.T) {
	intervals := computeFreeIntervals("08:00", "22:00", nil)

	require.Len(t, intervals, 1)
	assert.Equal(t, types.TimeString("08:00"), intervals[0].Start)
	assert.Equal(t, types.TimeString("22:00"), intervals[0].End)
}

func TestComputeFreeIntervals_SingleReservationSplitsWindow(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(domain.StatusConfirmed, "10:00", "11:00"),
	}

	intervals := computeFreeIntervals("08:00", "22:00", reservations)

	require.Len(t, intervals, 2)
	assert.Equal(t, types.TimeString("08:00"), intervals[0].Start)
	assert.Equal(t, types.TimeString("10:00"), intervals[0].End)
	assert.Equal(t, types.TimeString("11:00"), intervals[1].Start)
	assert.Equal(t, types.TimeString("22:00"), intervals[1].End)
}

func TestComputeFreeIntervals_BackToBackReservations(t *testing.T) {
	// Два бронирования впритык не дают промежутка между собой
	reservations := []*domain.Reservation{
		reservation(domain.StatusConfirmed, "08:00", "09:00"),
		reservation(domain.StatusPending, "09:00", "10:00"),
	}

	intervals := computeFreeIntervals("08:00", "22:00", reservations)

	require.Len(t, intervals, 1)
	assert.Equal(t, types.TimeString("10:00"), intervals[0].Start)
	assert.Equal(t, types.TimeString("22:00"), intervals[0].End)
}

func TestComputeFreeIntervals_UnsortedInput(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(domain.StatusConfirmed, "14:00", "15:00"),
		reservation(domain.StatusConfirmed, "09:00", "10:00"),
	}

	intervals := computeFreeIntervals("08:00", "22:00", reservations)

	require.Len(t, intervals, 3)
	assert.Equal(t, types.TimeString("08:00"), intervals[0].Start)
	assert.Equal(t, types.TimeString("09:00"), intervals[0].End)
	assert.Equal(t, types.TimeString("10:00"), intervals[1].Start)
	assert.Equal(t, types.TimeString("14:00"), intervals[1].End)
	assert.Equal(t, types.TimeString("15:00"), intervals[2].Start)
	assert.Equal(t, types.TimeString("22:00"), intervals[2].End)
}

func TestComputeFreeIntervals_CancelledAndNoShowIgnored(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(domain.StatusCancelled, "10:00", "11:00"),
		reservation(domain.StatusNoShow, "12:00", "13:00"),
	}

	intervals := computeFreeIntervals("08:00", "22:00", reservations)

	require.Len(t, intervals, 1)
	assert.Equal(t, types.TimeString("08:00"), intervals[0].Start)
	assert.Equal(t, types.TimeString("22:00"), intervals[0].End)
}

func TestComputeFreeIntervals_ReservationReachesClose(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(domain.StatusConfirmed, "20:00", "22:00"),
	}

	intervals := computeFreeIntervals("08:00", "22:00", reservations)

	require.Len(t, intervals, 1)
	assert.Equal(t, types.TimeString("08:00"), intervals[0].Start)
	assert.Equal(t, types.TimeString("20:00"), intervals[0].End)
}

func TestComputeFreeIntervals_FullyBooked(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(domain.StatusConfirmed, "08:00", "22:00"),
	}

	intervals := computeFreeIntervals("08:00", "22:00", reservations)

	assert.Empty(t, intervals)
}

func TestComputeFreeIntervals_ReservationOutsideWindow(t *testing.T) {
	// Бронирование целиком до открытия не влияет на окно
	reservations := []*domain.Reservation{
		reservation(domain.StatusConfirmed, "06:00", "07:00"),
	}

	intervals := computeFreeIntervals("08:00", "22:00", reservations)

	require.Len(t, intervals, 1)
	assert.Equal(t, types.TimeString("08:00"), intervals[0].Start)
	assert.Equal(t, types.TimeString("22:00"), intervals[0].End)
}

func TestCarveSlots_ExactFit(t *testing.T) {
	intervals := []domain.FreeInterval{
		{Start: "09:00", End: "10:00"},
	}

	slots := carveSlots(intervals, domain.SlotDurationMinutes)

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("09:30"), slots[0].End)
	assert.Equal(t, types.TimeString("09:30"), slots[1].Start)
	assert.Equal(t, types.TimeString("10:00"), slots[1].End)
	assert.Equal(t, domain.SlotDurationMinutes, slots[0].DurationMinutes)
}

func TestCarveSlots_RemainderDropped(t *testing.T) {
	// Остаток 20 минут короче шага и отбрасывается
	intervals := []domain.FreeInterval{
		{Start: "10:00", End: "10:50"},
	}

	slots := carveSlots(intervals, domain.SlotDurationMinutes)

	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("10:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("10:30"), slots[0].End)
}

func TestCarveSlots_IntervalShorterThanSlot(t *testing.T) {
	intervals := []domain.FreeInterval{
		{Start: "10:00", End: "10:20"},
	}

	slots := carveSlots(intervals, domain.SlotDurationMinutes)

	assert.Empty(t, slots)
}

func TestCarveSlots_MultipleIntervals(t *testing.T) {
	intervals := []domain.FreeInterval{
		{Start: "08:00", End: "09:00"},
		{Start: "11:00", End: "11:30"},
	}

	slots := carveSlots(intervals, domain.SlotDurationMinutes)

	require.Len(t, slots, 3)
	assert.Equal(t, "08:00 - 08:30", slots[0].Label())
	assert.Equal(t, "08:30 - 09:00", slots[1].Label())
	assert.Equal(t, "11:00 - 11:30", slots[2].Label())
}
