package notify_guest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/guests"
)

const (
	msgInvalidReservationID  = "некорректный ID бронирования"
	msgInvalidGuestID        = "некорректный ID гостя"
	msgReservationNotFound   = "бронирование не найдено"
	msgParticipationNotFound = "приглашение не найдено"
)

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/guests/{guestId}/notify
// Повторный вызов не ошибка, отметка идемпотентна.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем reservationId из URL
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/guests/{id}/notify - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Извлекаем guestId из URL
	guestID, err := strconv.ParseInt(vars["guestId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/guests/{id}/notify - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	// Отмечаем гостя уведомлённым
	err = h.service.MarkNotified(r.Context(), reservationID, guestID)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/guests/{id}/notify - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, guests.ErrParticipationNotFound):
			h.logger.Warn("POST /reservations/{id}/guests/{id}/notify - Participation not found: reservation_id=%d, guest_id=%d",
				reservationID, guestID)
			handlers.RespondNotFound(w, msgParticipationNotFound)

		default:
			h.logger.Error("POST /reservations/{id}/guests/{id}/notify - Failed to mark notified: reservation_id=%d, guest_id=%d, error=%v",
				reservationID, guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/guests/{id}/notify - Guest marked notified: reservation_id=%d, guest_id=%d",
		reservationID, guestID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
