package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	personClient "github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// statusTransitions допустимые переходы жизненного цикла бронирования.
// Отмена идёт через отдельную операцию Cancel с указанием причины.
// Подтверждение pending-бронирования происходит только через сверку
// платежей при полной оплате, поэтому здесь его нет.
var statusTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.StatusConfirmed:  {domain.StatusInProgress, domain.StatusNoShow},
	domain.StatusInProgress: {domain.StatusCompleted},
}

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	assocRepo       AssociationRepository
	credentialRepo  CredentialRepository
	personClient    PersonServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	assocRepo AssociationRepository,
	credentialRepo CredentialRepository,
	personClient PersonServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		assocRepo:       assocRepo,
		credentialRepo:  credentialRepo,
		personClient:    personClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID вместе со связками кортов
// Клиент видит только свои бронирования, персонал - любые
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for requester=%d", id, requesterID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkAccess(ctx, res.ClientID, requesterID); err != nil {
		s.logger.Warn("GetByID: access denied for requester=%d to reservation id=%d", requesterID, id)
		return nil, err
	}

	assocs, err := s.assocRepo.ListByReservation(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch associations for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - associations error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(res, assocs), nil
}

// GetClientReservations получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientReservations(ctx context.Context, req *models.GetClientReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetClientReservations: fetching reservations for client=%d, status=%v", req.ClientID, req.Status)

	// Клиент видит только свои бронирования
	if err := s.checkAccess(ctx, req.ClientID, req.RequesterID); err != nil {
		return nil, err
	}

	// Конвертируем статус из строки в domain.ReservationStatus
	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientReservations: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.ListByClient(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientReservations: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientReservations: successfully fetched %d reservations for client=%d", len(reservations), req.ClientID)
	return models.FromDomainReservationList(reservations), nil
}

// ListReservations получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по корту, клиенту, дате, периоду и статусу
func (s *Service) ListReservations(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListReservations: fetching reservations court=%v client=%v", req.CourtID, req.ClientID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListReservations: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListReservations: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Update изменяет дату, время или заметки бронирования.
// Допускается только для изменяемых статусов (pending, confirmed).
// Проверка пересечений выполняется в serializable транзакции.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: updating reservation id=%d by requester=%d", id, req.RequesterID)

	date, startTime, endTime, durationMinutes, err := s.validateTimeRange(req.ReservationDate, req.StartTime, req.EndTime)
	if err != nil {
		s.logger.Warn("Update: invalid time range for reservation id=%d: %v", id, err)
		return nil, err
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		s.logger.Warn("Update: notes too long for reservation id=%d", id)
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	var updated *domain.Reservation

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if err := s.checkAccess(ctx, res.ClientID, req.RequesterID); err != nil {
			return err
		}

		if !res.IsModifiable() {
			return ErrNotModifiable
		}

		// Проверяем пересечения на всех кортах бронирования
		assocs, err := s.assocRepo.ListByReservation(ctx, id)
		if err != nil {
			return fmt.Errorf("%w: Update - associations error: %v", ErrInternal, err)
		}

		for _, assoc := range assocs {
			if err := s.checkTimeConflict(ctx, assoc.CourtID, id, date, startTime, endTime); err != nil {
				return err
			}
		}

		res.ReservationDate = date
		res.StartTime = startTime
		res.EndTime = endTime
		res.DurationMinutes = durationMinutes
		if req.Notes != nil {
			res.Notes = req.Notes
		}

		if err := s.reservationRepo.Update(ctx, res); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = res
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("Update: reservation id=%d not updated: %v", id, err)
		} else {
			s.logger.Error("Update: failed to update reservation id=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("Update: successfully updated reservation id=%d", id)
	return models.FromDomainReservation(updated, nil), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Допустимы только переходы жизненного цикла: отмена идёт через Cancel,
// подтверждение - через сверку платежей.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by requester=%d",
		id, req.Status, req.RequesterID)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation requested via status update for reservation id=%d", id)
		return fmt.Errorf("%w: cancellation requires a reason, use the cancel operation", ErrInvalidInput)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if err := s.checkAccess(ctx, res.ClientID, req.RequesterID); err != nil {
			return err
		}

		if !canTransition(res.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, newStatus)
		}

		if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("UpdateStatus: reservation id=%d not updated: %v", id, err)
		} else {
			s.logger.Error("UpdateStatus: failed to update reservation id=%d: %v", id, err)
		}
		return err
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", id, newStatus)
	return nil
}

// Cancel отменяет бронирование с указанием причины.
// Завершённые, уже отменённые и no-show бронирования отменить нельзя.
// Пропуска отменённого бронирования отзываются, ошибка отзыва не фатальна.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by requester=%d", id, req.RequesterID)

	if req.CancellationReason == "" {
		s.logger.Warn("Cancel: empty cancellation reason for reservation id=%d", id)
		return fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancelReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for reservation id=%d", id)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if err := s.checkAccess(ctx, res.ClientID, req.RequesterID); err != nil {
			return err
		}

		if !res.CanBeCancelled() {
			return ErrCannotCancel
		}

		// Причина дублируется префиксом в заметках, прежние заметки сохраняются
		note := "cancelled: " + req.CancellationReason
		prior := res.Notes
		if req.Notes != nil {
			prior = req.Notes
		}
		if prior != nil && *prior != "" {
			note = note + ". " + *prior
		}

		if err := s.reservationRepo.Cancel(ctx, id, req.CancellationReason, &note); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("Cancel: reservation id=%d not cancelled: %v", id, err)
		} else {
			s.logger.Error("Cancel: failed to cancel reservation id=%d: %v", id, err)
		}
		return err
	}

	// Отзываем пропуска вне транзакции: отмена уже состоялась,
	// неудавшийся отзыв только логируем
	if err := s.credentialRepo.DeactivateByReservation(ctx, id); err != nil {
		s.logger.Error("Cancel: failed to deactivate credentials for reservation id=%d: %v", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// Delete физически удаляет бронирование вместе со связками кортов.
// Допускается только для завершённых, отменённых и no-show бронирований.
func (s *Service) Delete(ctx context.Context, id int64, requesterID int64) error {
	s.logger.Info("Delete: deleting reservation id=%d by requester=%d", id, requesterID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if err := s.checkAccess(ctx, res.ClientID, requesterID); err != nil {
			return err
		}

		if !res.IsTerminal() {
			return ErrActiveReservation
		}

		if err := s.assocRepo.DeleteByReservation(ctx, id); err != nil {
			return fmt.Errorf("%w: Delete - associations error: %v", ErrInternal, err)
		}

		if err := s.reservationRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("Delete: reservation id=%d not deleted: %v", id, err)
		} else {
			s.logger.Error("Delete: failed to delete reservation id=%d: %v", id, err)
		}
		return err
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// Вспомогательные методы

// canTransition проверяет допустимость перехода статуса
func canTransition(from, to domain.ReservationStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// checkAccess проверяет, что запрашивающий имеет доступ к бронированию.
// Клиент видит только свои бронирования, персонал и администраторы - любые.
func (s *Service) checkAccess(ctx context.Context, clientID, requesterID int64) error {
	// Владелец бронирования - доступ разрешён
	if clientID == requesterID {
		return nil
	}

	person, err := s.personClient.GetPerson(ctx, requesterID)
	if err != nil {
		if errors.Is(err, personClient.ErrPersonNotFound) {
			s.logger.Warn("checkAccess: requester=%d not found", requesterID)
			return ErrAccessDenied
		}
		s.logger.Error("checkAccess: failed to get person=%d: %v", requesterID, err)
		return fmt.Errorf("%w: checkAccess - failed to get person: %v", ErrInternal, err)
	}

	if person.Kind == personClient.KindStaff || person.Kind == personClient.KindAdmin {
		return nil
	}

	s.logger.Warn("checkAccess: requester=%d has no access to reservation of client=%d", requesterID, clientID)
	return ErrAccessDenied
}

// validateTimeRange валидирует дату и временной диапазон бронирования
func (s *Service) validateTimeRange(dateStr, startStr, endStr string) (time.Time, types.TimeString, types.TimeString, int, error) {
	var zero types.TimeString

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, zero, zero, 0, fmt.Errorf("%w: invalid date format, expected %s", ErrInvalidDate, domain.DateFormat)
	}

	// Сравниваем только календарные даты, независимо от часового пояса
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if dateOnly.Before(today) {
		return time.Time{}, zero, zero, 0, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	if dateOnly.After(today.AddDate(0, domain.MaxAdvanceMonths, 0)) {
		return time.Time{}, zero, zero, 0, fmt.Errorf("%w: date is more than %d months ahead", ErrInvalidDate, domain.MaxAdvanceMonths)
	}

	startTime, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return time.Time{}, zero, zero, 0, fmt.Errorf("%w: invalid start time", ErrInvalidTimeRange)
	}

	endTime, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return time.Time{}, zero, zero, 0, fmt.Errorf("%w: invalid end time", ErrInvalidTimeRange)
	}

	if !startTime.IsBefore(endTime) {
		return time.Time{}, zero, zero, 0, fmt.Errorf("%w: start time must be before end time", ErrInvalidTimeRange)
	}

	durationMinutes, err := startTime.MinutesUntil(endTime)
	if err != nil {
		return time.Time{}, zero, zero, 0, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if durationMinutes < domain.MinDurationMinutes {
		return time.Time{}, zero, zero, 0, fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidTimeRange, domain.MinDurationMinutes)
	}

	return date, startTime, endTime, durationMinutes, nil
}

// checkTimeConflict проверяет пересечение с другими бронированиями корта на дату
func (s *Service) checkTimeConflict(ctx context.Context, courtID, excludeReservationID int64, date time.Time, startTime, endTime types.TimeString) error {
	filter := domain.ReservationsFilter{
		CourtID: &courtID,
		Date:    &date,
	}

	existing, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		return fmt.Errorf("%w: checkTimeConflict - repository error: %v", ErrInternal, err)
	}

	for _, other := range existing {
		if other.ID == excludeReservationID || !other.BlocksCourt() {
			continue
		}
		// Пересечение полуинтервалов [start, end)
		if startTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(endTime) {
			return fmt.Errorf("%w: court %d is busy %s - %s", ErrTimeConflict, courtID, other.StartTime, other.EndTime)
		}
	}

	return nil
}
