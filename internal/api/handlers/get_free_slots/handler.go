package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	getFreeSlots "github.com/m04kA/SMC-CourtService/internal/usecase/get_free_slots"
)

const (
	msgInvalidCourtID     = "некорректный ID корта"
	msgMissingDate        = "дата обязательна"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCourtNotFound      = "корт не найден"
	msgCourtInactive      = "корт недоступен для бронирования"
	msgHoursNotConfigured = "часы работы зоны не настроены"
	msgInvalidDate        = "некорректная дата"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/free-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем courtId из URL
	vars := mux.Vars(r)
	courtIDStr := vars["courtId"]

	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/free-slots - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courts/{id}/free-slots - Missing date: court_id=%d", courtID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/free-slots - Invalid date format: court_id=%d, date=%s", courtID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{
		CourtID: courtID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/free-slots - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getFreeSlots.ErrCourtInactive):
			h.logger.Warn("GET /courts/{id}/free-slots - Court inactive: court_id=%d", courtID)
			handlers.RespondConflict(w, msgCourtInactive)

		case errors.Is(err, getFreeSlots.ErrHoursNotConfigured):
			h.logger.Warn("GET /courts/{id}/free-slots - Operating hours not configured: court_id=%d", courtID)
			handlers.RespondUnprocessable(w, msgHoursNotConfigured)

		case errors.Is(err, getFreeSlots.ErrInvalidDate):
			h.logger.Warn("GET /courts/{id}/free-slots - Invalid date: court_id=%d, date=%s", courtID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /courts/{id}/free-slots - Failed to get free slots: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/free-slots - Free slots retrieved successfully: court_id=%d, date=%s, slots_count=%d",
		courtID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
