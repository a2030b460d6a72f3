package quote_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/associations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgReservationNotFound  = "бронирование не найдено"
	msgCourtNotFound        = "корт не найден"
	msgDisciplineNotFound   = "дисциплина не найдена"
	msgCourtInactive        = "корт недоступен для бронирования"
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

// Handle POST /api/v1/reservations/{reservationId}/courts/quote
// Детерминированный расчёт стоимости, ничего не сохраняет.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/courts/quote - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Декодируем body
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/courts/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Рассчитываем стоимость
	result, err := h.service.Quote(r.Context(), reservationID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, associations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/courts/quote - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, associations.ErrCourtNotFound):
			h.logger.Warn("POST /reservations/{id}/courts/quote - Court not found: reservation_id=%d, court_id=%d",
				reservationID, req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, associations.ErrDisciplineNotFound):
			h.logger.Warn("POST /reservations/{id}/courts/quote - Discipline not found: reservation_id=%d, discipline_id=%d",
				reservationID, req.DisciplineID)
			handlers.RespondNotFound(w, msgDisciplineNotFound)

		case errors.Is(err, associations.ErrCourtInactive):
			h.logger.Warn("POST /reservations/{id}/courts/quote - Court inactive: reservation_id=%d, court_id=%d",
				reservationID, req.CourtID)
			handlers.RespondConflict(w, msgCourtInactive)

		case errors.Is(err, associations.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/courts/quote - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/courts/quote - Failed to quote: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/courts/quote - Quote calculated successfully: reservation_id=%d, court_id=%d, amount=%.2f",
		reservationID, req.CourtID, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
