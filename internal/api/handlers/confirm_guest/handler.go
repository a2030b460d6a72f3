package confirm_guest

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
	msgAlreadyConfirmed      = "участие уже подтверждено"
	msgCapacityExceeded      = "вместимость корта исчерпана"
	msgReservationNotActive  = "бронирование неактивно"
	msgNoCourtAssociated     = "к бронированию не привязан корт"
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

// Handle POST /api/v1/reservations/{reservationId}/guests/{guestId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем reservationId из URL
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/guests/{id}/confirm - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Извлекаем guestId из URL
	guestID, err := strconv.ParseInt(vars["guestId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/guests/{id}/confirm - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	// Подтверждаем участие гостя
	result, err := h.service.Confirm(r.Context(), reservationID, guestID)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/guests/{id}/confirm - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, guests.ErrParticipationNotFound):
			h.logger.Warn("POST /reservations/{id}/guests/{id}/confirm - Participation not found: reservation_id=%d, guest_id=%d",
				reservationID, guestID)
			handlers.RespondNotFound(w, msgParticipationNotFound)

		case errors.Is(err, guests.ErrAlreadyConfirmed):
			h.logger.Warn("POST /reservations/{id}/guests/{id}/confirm - Already confirmed: reservation_id=%d, guest_id=%d",
				reservationID, guestID)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		case errors.Is(err, guests.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations/{id}/guests/{id}/confirm - Capacity exceeded: reservation_id=%d, guest_id=%d",
				reservationID, guestID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, guests.ErrReservationNotActive):
			h.logger.Warn("POST /reservations/{id}/guests/{id}/confirm - Reservation not active: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgReservationNotActive)

		case errors.Is(err, guests.ErrNoCourtAssociated):
			h.logger.Warn("POST /reservations/{id}/guests/{id}/confirm - No court associated: reservation_id=%d", reservationID)
			handlers.RespondUnprocessable(w, msgNoCourtAssociated)

		default:
			h.logger.Error("POST /reservations/{id}/guests/{id}/confirm - Failed to confirm guest: reservation_id=%d, guest_id=%d, error=%v",
				reservationID, guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/guests/{id}/confirm - Guest confirmed successfully: reservation_id=%d, guest_id=%d",
		reservationID, guestID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
