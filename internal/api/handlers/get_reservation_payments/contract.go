package get_reservation_payments

import (
	"context"

	uc "github.com/m04kA/SMC-CourtService/internal/usecase/record_payment"
)

type RecordPaymentUseCase interface {
	ListByReservation(ctx context.Context, reservationID int64) (*uc.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
