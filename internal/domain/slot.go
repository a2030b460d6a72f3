package domain

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// FreeInterval is a contiguous gap between reservations inside a court's
// operating window.
type FreeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// IsEmpty returns true if the interval has zero or negative length
func (i FreeInterval) IsEmpty() bool {
	return !i.Start.IsBefore(i.End)
}

// Slot is a fixed-size bookable block carved out of a free interval
type Slot struct {
	Start           types.TimeString
	End             types.TimeString
	DurationMinutes int
}

// Label returns the human-readable "HH:MM - HH:MM" form of the slot
func (s Slot) Label() string {
	return fmt.Sprintf("%s - %s", s.Start, s.End)
}
