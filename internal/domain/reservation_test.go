package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatusPredicates(t *testing.T) {
	tests := []struct {
		status      ReservationStatus
		active      bool
		modifiable  bool
		cancellable bool
		terminal    bool
		blocks      bool
	}{
		{StatusPending, false, true, true, false, true},
		{StatusConfirmed, true, true, true, false, true},
		{StatusInProgress, true, false, true, false, true},
		{StatusCompleted, false, false, false, true, true},
		{StatusCancelled, false, false, false, true, false},
		{StatusNoShow, false, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}
			assert.Equal(t, tt.active, r.IsActive(), "IsActive")
			assert.Equal(t, tt.modifiable, r.IsModifiable(), "IsModifiable")
			assert.Equal(t, tt.cancellable, r.CanBeCancelled(), "CanBeCancelled")
			assert.Equal(t, tt.terminal, r.IsTerminal(), "IsTerminal")
			assert.Equal(t, tt.blocks, r.BlocksCourt(), "BlocksCourt")
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 83.33, Round2(83.3333))
	assert.Equal(t, 83.34, Round2(83.336))
	assert.Equal(t, 1500.00, Round2(1500))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -10.56, Round2(-10.556))
}

func TestMaxGuests(t *testing.T) {
	assert.Equal(t, 3, MaxGuests(4))
	assert.Equal(t, 0, MaxGuests(1), "one seat belongs to the client")
	assert.Equal(t, 0, MaxGuests(0))
	assert.Equal(t, 0, MaxGuests(-5))
}

func TestFreeIntervalIsEmpty(t *testing.T) {
	assert.False(t, FreeInterval{Start: "10:00", End: "11:00"}.IsEmpty())
	assert.True(t, FreeInterval{Start: "10:00", End: "10:00"}.IsEmpty())
	assert.True(t, FreeInterval{Start: "11:00", End: "10:00"}.IsEmpty())
}

func TestSlotLabel(t *testing.T) {
	slot := Slot{Start: "09:00", End: "09:30", DurationMinutes: 30}
	assert.Equal(t, "09:00 - 09:30", slot.Label())
}
