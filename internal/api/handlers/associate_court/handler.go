package associate_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/service/associations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgReservationNotFound  = "бронирование не найдено"
	msgCourtNotFound        = "корт не найден"
	msgDisciplineNotFound   = "дисциплина не найдена"
	msgCourtInactive        = "корт недоступен для бронирования"
	msgAssociationExists    = "корт уже привязан к бронированию"
	msgNotModifiable        = "бронирование нельзя изменить в текущем статусе"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	service AssociationService
	logger  Logger
}

func NewHandler(service AssociationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/courts - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/courts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req AssociateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Привязываем корт к бронированию
	result, err := h.service.Associate(r.Context(), reservationID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, associations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/courts - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, associations.ErrCourtNotFound):
			h.logger.Warn("POST /reservations/{id}/courts - Court not found: reservation_id=%d, court_id=%d",
				reservationID, req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, associations.ErrDisciplineNotFound):
			h.logger.Warn("POST /reservations/{id}/courts - Discipline not found: reservation_id=%d, discipline_id=%d",
				reservationID, req.DisciplineID)
			handlers.RespondNotFound(w, msgDisciplineNotFound)

		case errors.Is(err, associations.ErrCourtInactive):
			h.logger.Warn("POST /reservations/{id}/courts - Court inactive: reservation_id=%d, court_id=%d",
				reservationID, req.CourtID)
			handlers.RespondConflict(w, msgCourtInactive)

		case errors.Is(err, associations.ErrAssociationExists):
			h.logger.Warn("POST /reservations/{id}/courts - Association exists: reservation_id=%d, court_id=%d, discipline_id=%d",
				reservationID, req.CourtID, req.DisciplineID)
			handlers.RespondConflict(w, msgAssociationExists)

		case errors.Is(err, associations.ErrNotModifiable):
			h.logger.Warn("POST /reservations/{id}/courts - Reservation not modifiable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotModifiable)

		case errors.Is(err, associations.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/courts - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/courts - Failed to associate court: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/courts - Court associated successfully: reservation_id=%d, court_id=%d, discipline_id=%d, amount=%.2f",
		reservationID, req.CourtID, req.DisciplineID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
