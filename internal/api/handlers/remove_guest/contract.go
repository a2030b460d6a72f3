package remove_guest

import (
	"context"
)

type GuestService interface {
	Remove(ctx context.Context, reservationID, guestID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
