package record_attendance

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
	msgNotConfirmed          = "участие не подтверждено"
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

// Handle PATCH /api/v1/reservations/{reservationId}/guests/{guestId}/attendance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем reservationId из URL
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/guests/{id}/attendance - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Извлекаем guestId из URL
	guestID, err := strconv.ParseInt(vars["guestId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/guests/{id}/attendance - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	// Декодируем body
	var req AttendanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/guests/{id}/attendance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Отмечаем посещение
	result, err := h.service.RecordAttendance(r.Context(), reservationID, guestID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/guests/{id}/attendance - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, guests.ErrParticipationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/guests/{id}/attendance - Participation not found: reservation_id=%d, guest_id=%d",
				reservationID, guestID)
			handlers.RespondNotFound(w, msgParticipationNotFound)

		case errors.Is(err, guests.ErrNotConfirmed):
			h.logger.Warn("PATCH /reservations/{id}/guests/{id}/attendance - Participation not confirmed: reservation_id=%d, guest_id=%d",
				reservationID, guestID)
			handlers.RespondConflict(w, msgNotConfirmed)

		default:
			h.logger.Error("PATCH /reservations/{id}/guests/{id}/attendance - Failed to record attendance: reservation_id=%d, guest_id=%d, error=%v",
				reservationID, guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/guests/{id}/attendance - Attendance recorded successfully: reservation_id=%d, guest_id=%d, attended=%t",
		reservationID, guestID, req.Attended)
	handlers.RespondJSON(w, http.StatusOK, result)
}
