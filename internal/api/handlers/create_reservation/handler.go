package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-CourtService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgCourtNotFound         = "корт не найден"
	msgCourtInactive         = "корт недоступен для бронирования"
	msgDisciplineNotFound    = "дисциплина не найдена"
	msgClientNotFound        = "клиент не найден"
	msgNotAClient            = "пользователь не может создавать бронирования"
	msgInvalidDate           = "некорректная дата бронирования"
	msgDateTooFar            = "дата превышает окно бронирования"
	msgInvalidTimeRange      = "некорректный временной диапазон"
	msgHoursNotConfigured    = "часы работы зоны не настроены"
	msgOutsideOperatingHours = "время вне часов работы зоны"
	msgTimeConflict          = "время пересекается с другим бронированием"
	msgInvalidInput          = "некорректные входные данные"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель use case
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid request fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	// Создаём бронирование
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrCourtNotFound):
			h.logger.Warn("POST /reservations - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createReservation.ErrCourtInactive):
			h.logger.Warn("POST /reservations - Court inactive: court_id=%d", req.CourtID)
			handlers.RespondConflict(w, msgCourtInactive)

		case errors.Is(err, createReservation.ErrDisciplineNotFound):
			h.logger.Warn("POST /reservations - Discipline not found: discipline_id=%d", req.DisciplineID)
			handlers.RespondNotFound(w, msgDisciplineNotFound)

		case errors.Is(err, createReservation.ErrClientNotFound):
			h.logger.Warn("POST /reservations - Client not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createReservation.ErrNotAClient):
			h.logger.Warn("POST /reservations - Person is not a client: user_id=%d", userID)
			handlers.RespondForbidden(w, msgNotAClient)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			h.logger.Warn("POST /reservations - Date too far in the future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReservation.ErrInvalidTimeRange):
			h.logger.Warn("POST /reservations - Invalid time range: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createReservation.ErrHoursNotConfigured):
			h.logger.Warn("POST /reservations - Operating hours not configured: court_id=%d", req.CourtID)
			handlers.RespondUnprocessable(w, msgHoursNotConfigured)

		case errors.Is(err, createReservation.ErrOutsideOperatingHours):
			h.logger.Warn("POST /reservations - Outside operating hours: court_id=%d, start=%s, end=%s",
				req.CourtID, req.StartTime, req.EndTime)
			handlers.RespondUnprocessable(w, msgOutsideOperatingHours)

		case errors.Is(err, createReservation.ErrTimeConflict):
			h.logger.Warn("POST /reservations - Time conflict: court_id=%d, date=%s, start=%s, end=%s",
				req.CourtID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, court_id=%d",
		result.ID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
