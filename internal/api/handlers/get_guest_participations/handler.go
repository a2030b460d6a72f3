package get_guest_participations

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
)

const (
	msgInvalidGuestID = "некорректный ID гостя"
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

// Handle GET /api/v1/guests/{guestId}/participations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем guestId из URL
	vars := mux.Vars(r)
	guestIDStr := vars["guestId"]

	guestID, err := strconv.ParseInt(guestIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /guests/{id}/participations - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	// Получаем приглашения гостя
	result, err := h.service.ListByGuest(r.Context(), guestID)
	if err != nil {
		h.logger.Error("GET /guests/{id}/participations - Failed to list participations: guest_id=%d, error=%v",
			guestID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guests/{id}/participations - Participations listed successfully: guest_id=%d, count=%d",
		guestID, len(result.Participations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
