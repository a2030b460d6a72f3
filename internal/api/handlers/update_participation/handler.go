package update_participation

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
	msgInvalidRequestBody    = "некорректное тело запроса"
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

// Handle PATCH /api/v1/reservations/{reservationId}/guests/{guestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем reservationId из URL
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/guests/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Извлекаем guestId из URL
	guestID, err := strconv.ParseInt(vars["guestId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/guests/{id} - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	// Декодируем body
	var req UpdateParticipationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/guests/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем приглашение
	result, err := h.service.Update(r.Context(), reservationID, guestID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/guests/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, guests.ErrParticipationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/guests/{id} - Participation not found: reservation_id=%d, guest_id=%d",
				reservationID, guestID)
			handlers.RespondNotFound(w, msgParticipationNotFound)

		default:
			h.logger.Error("PATCH /reservations/{id}/guests/{id} - Failed to update participation: reservation_id=%d, guest_id=%d, error=%v",
				reservationID, guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/guests/{id} - Participation updated successfully: reservation_id=%d, guest_id=%d",
		reservationID, guestID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
