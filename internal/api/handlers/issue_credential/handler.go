package issue_credential

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/credentials"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgReservationNotFound  = "бронирование не найдено"
	msgPersonNotFound       = "персона не найдена"
	msgNotParticipant       = "персона не участвует в бронировании"
	msgReservationNotActive = "бронирование неактивно"
	msgNoCourtAssociated    = "к бронированию не привязан корт"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	service CredentialService
	logger  Logger
}

func NewHandler(service CredentialService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/credentials
// Повторный вызов возвращает действующий пропуск участника.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/credentials - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Декодируем body
	var req IssueCredentialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/credentials - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Выдаём пропуск
	result, err := h.service.Issue(r.Context(), reservationID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/credentials - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, credentials.ErrPersonNotFound):
			h.logger.Warn("POST /reservations/{id}/credentials - Person not found: reservation_id=%d, person_id=%d",
				reservationID, req.PersonID)
			handlers.RespondNotFound(w, msgPersonNotFound)

		case errors.Is(err, credentials.ErrNotParticipant):
			h.logger.Warn("POST /reservations/{id}/credentials - Not a participant: reservation_id=%d, person_id=%d",
				reservationID, req.PersonID)
			handlers.RespondConflict(w, msgNotParticipant)

		case errors.Is(err, credentials.ErrReservationNotActive):
			h.logger.Warn("POST /reservations/{id}/credentials - Reservation not active: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgReservationNotActive)

		case errors.Is(err, credentials.ErrNoCourtAssociated):
			h.logger.Warn("POST /reservations/{id}/credentials - No court associated: reservation_id=%d", reservationID)
			handlers.RespondUnprocessable(w, msgNoCourtAssociated)

		case errors.Is(err, credentials.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/credentials - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/credentials - Failed to issue credential: reservation_id=%d, person_id=%d, error=%v",
				reservationID, req.PersonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/credentials - Credential issued successfully: credential_id=%d, reservation_id=%d, person_id=%d",
		result.ID, reservationID, req.PersonID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
