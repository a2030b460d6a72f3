package invite_guest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/service/guests"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgReservationNotFound  = "бронирование не найдено"
	msgGuestNotFound        = "гость не найден"
	msgNotAGuest            = "персона не может быть приглашена как гость"
	msgAlreadyInvited       = "гость уже приглашен"
	msgCapacityExceeded     = "вместимость корта исчерпана"
	msgNotModifiable        = "бронирование нельзя изменить в текущем статусе"
	msgNoCourtAssociated    = "к бронированию не привязан корт"
	msgInvalidInput         = "некорректные входные данные"
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

// Handle POST /api/v1/reservations/{reservationId}/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/guests - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/guests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req InviteGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/guests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Приглашаем гостя
	result, err := h.service.Invite(r.Context(), reservationID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/guests - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, guests.ErrGuestNotFound):
			h.logger.Warn("POST /reservations/{id}/guests - Guest not found: reservation_id=%d, guest_id=%d",
				reservationID, req.GuestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, guests.ErrNotAGuest):
			h.logger.Warn("POST /reservations/{id}/guests - Person is not a guest: reservation_id=%d, guest_id=%d",
				reservationID, req.GuestID)
			handlers.RespondConflict(w, msgNotAGuest)

		case errors.Is(err, guests.ErrAlreadyInvited):
			h.logger.Warn("POST /reservations/{id}/guests - Guest already invited: reservation_id=%d, guest_id=%d",
				reservationID, req.GuestID)
			handlers.RespondConflict(w, msgAlreadyInvited)

		case errors.Is(err, guests.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations/{id}/guests - Capacity exceeded: reservation_id=%d, guest_id=%d",
				reservationID, req.GuestID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, guests.ErrNotModifiable):
			h.logger.Warn("POST /reservations/{id}/guests - Reservation not modifiable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotModifiable)

		case errors.Is(err, guests.ErrNoCourtAssociated):
			h.logger.Warn("POST /reservations/{id}/guests - No court associated: reservation_id=%d", reservationID)
			handlers.RespondUnprocessable(w, msgNoCourtAssociated)

		case errors.Is(err, guests.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/guests - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/guests - Failed to invite guest: reservation_id=%d, guest_id=%d, error=%v",
				reservationID, req.GuestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/guests - Guest invited successfully: reservation_id=%d, guest_id=%d, user_id=%d",
		reservationID, req.GuestID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
