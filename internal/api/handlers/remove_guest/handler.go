package remove_guest

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
	msgNotModifiable         = "бронирование нельзя изменить в текущем статусе"
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

// Handle DELETE /api/v1/reservations/{reservationId}/guests/{guestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем reservationId из URL
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id}/guests/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Извлекаем guestId из URL
	guestID, err := strconv.ParseInt(vars["guestId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id}/guests/{id} - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	// Удаляем приглашение
	err = h.service.Remove(r.Context(), reservationID, guestID)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id}/guests/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, guests.ErrParticipationNotFound):
			h.logger.Warn("DELETE /reservations/{id}/guests/{id} - Participation not found: reservation_id=%d, guest_id=%d",
				reservationID, guestID)
			handlers.RespondNotFound(w, msgParticipationNotFound)

		case errors.Is(err, guests.ErrNotModifiable):
			h.logger.Warn("DELETE /reservations/{id}/guests/{id} - Reservation not modifiable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotModifiable)

		default:
			h.logger.Error("DELETE /reservations/{id}/guests/{id} - Failed to remove guest: reservation_id=%d, guest_id=%d, error=%v",
				reservationID, guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id}/guests/{id} - Guest removed successfully: reservation_id=%d, guest_id=%d",
		reservationID, guestID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
