package reconcile_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	reconcilePayment "github.com/m04kA/SMC-CourtService/internal/usecase/reconcile_payment"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgReservationNotFound  = "бронирование не найдено"
	msgReservationInactive  = "бронирование отменено или пропущено"
	msgNoCourtAssociated    = "к бронированию не привязан корт"
)

type Handler struct {
	useCase ReconcilePaymentUseCase
	logger  Logger
}

func NewHandler(useCase ReconcilePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/payments/reconcile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/payments/reconcile - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Сверяем платежи
	result, err := h.useCase.Execute(r.Context(), &reconcilePayment.Request{
		ReservationID: reservationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, reconcilePayment.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/payments/reconcile - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reconcilePayment.ErrReservationInactive):
			h.logger.Warn("POST /reservations/{id}/payments/reconcile - Reservation inactive: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgReservationInactive)

		case errors.Is(err, reconcilePayment.ErrNoCourtAssociated):
			h.logger.Warn("POST /reservations/{id}/payments/reconcile - No court associated: reservation_id=%d", reservationID)
			handlers.RespondUnprocessable(w, msgNoCourtAssociated)

		default:
			h.logger.Error("POST /reservations/{id}/payments/reconcile - Failed to reconcile: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/payments/reconcile - Reconciliation completed: reservation_id=%d, balance=%.2f, fully_paid=%t, confirmed=%t",
		reservationID, result.Balance, result.FullyPaid, result.Confirmed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
