package get_person_credentials

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
)

const (
	msgInvalidPersonID = "некорректный ID персоны"
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

// Handle GET /api/v1/persons/{personId}/credentials
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем personId из URL
	vars := mux.Vars(r)
	personIDStr := vars["personId"]

	personID, err := strconv.ParseInt(personIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /persons/{id}/credentials - Invalid person ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPersonID)
		return
	}

	// Получаем пропуска персоны
	result, err := h.service.ListByPerson(r.Context(), personID)
	if err != nil {
		h.logger.Error("GET /persons/{id}/credentials - Failed to list credentials: person_id=%d, error=%v",
			personID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /persons/{id}/credentials - Credentials listed successfully: person_id=%d, count=%d",
		personID, len(result.Credentials))
	handlers.RespondJSON(w, http.StatusOK, result)
}
