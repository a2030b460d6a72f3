package remove_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/service/associations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidCourtID       = "некорректный ID корта"
	msgInvalidDisciplineID  = "некорректный ID дисциплины"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgReservationNotFound  = "бронирование не найдено"
	msgAssociationNotFound  = "связка не найдена"
	msgNotModifiable        = "бронирование нельзя изменить в текущем статусе"
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

// Handle DELETE /api/v1/reservations/{reservationId}/courts/{courtId}/disciplines/{disciplineId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем reservationId из URL
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id}/courts/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Извлекаем courtId из URL
	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id}/courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Извлекаем disciplineId из URL
	disciplineID, err := strconv.ParseInt(vars["disciplineId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id}/courts/{id} - Invalid discipline ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDisciplineID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /reservations/{id}/courts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	key := domain.AssociationKey{
		ReservationID: reservationID,
		CourtID:       courtID,
		DisciplineID:  disciplineID,
	}

	// Удаляем связку
	err = h.service.Remove(r.Context(), key, userID)
	if err != nil {
		switch {
		case errors.Is(err, associations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id}/courts/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, associations.ErrAssociationNotFound):
			h.logger.Warn("DELETE /reservations/{id}/courts/{id} - Association not found: reservation_id=%d, court_id=%d, discipline_id=%d",
				reservationID, courtID, disciplineID)
			handlers.RespondNotFound(w, msgAssociationNotFound)

		case errors.Is(err, associations.ErrNotModifiable):
			h.logger.Warn("DELETE /reservations/{id}/courts/{id} - Reservation not modifiable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotModifiable)

		default:
			h.logger.Error("DELETE /reservations/{id}/courts/{id} - Failed to remove association: reservation_id=%d, court_id=%d, discipline_id=%d, error=%v",
				reservationID, courtID, disciplineID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id}/courts/{id} - Association removed successfully: reservation_id=%d, court_id=%d, discipline_id=%d, user_id=%d",
		reservationID, courtID, disciplineID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
