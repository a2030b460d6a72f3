package list_guests

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/guests"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidConfirmed     = "некорректное значение параметра confirmed"
	msgReservationNotFound  = "бронирование не найдено"
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

// Handle GET /api/v1/reservations/{reservationId}/guests
// Query params: confirmed (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/{id}/guests - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Опциональный фильтр только подтверждённых
	onlyConfirmed := false
	if v := r.URL.Query().Get("confirmed"); v != "" {
		onlyConfirmed, err = strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /reservations/{id}/guests - Invalid confirmed param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfirmed)
			return
		}
	}

	// Получаем список приглашений
	result, err := h.service.ListByReservation(r.Context(), reservationID, onlyConfirmed)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id}/guests - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("GET /reservations/{id}/guests - Failed to list guests: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id}/guests - Guests listed successfully: reservation_id=%d, count=%d",
		reservationID, len(result.Participations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
