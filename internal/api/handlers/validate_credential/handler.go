package validate_credential

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/credentials"
)

const (
	msgMissingCode        = "код пропуска обязателен"
	msgCredentialNotFound = "пропуск не найден"
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

// Handle GET /api/v1/credentials/{code}/validate
// Просроченный или отозванный пропуск не ошибка: возвращается valid=false.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем code из URL
	vars := mux.Vars(r)
	code := vars["code"]

	if code == "" {
		h.logger.Warn("GET /credentials/{code}/validate - Missing code")
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	// Проверяем пропуск
	result, err := h.service.ValidateByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrCredentialNotFound):
			h.logger.Warn("GET /credentials/{code}/validate - Credential not found: code=%s", code)
			handlers.RespondNotFound(w, msgCredentialNotFound)

		default:
			h.logger.Error("GET /credentials/{code}/validate - Failed to validate credential: code=%s, error=%v",
				code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /credentials/{code}/validate - Credential validated: code=%s, valid=%t", code, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, result)
}
