package guests

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	participationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/participation"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	facilityClient "github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	personClient "github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
	"github.com/m04kA/SMC-CourtService/internal/service/guests/models"
)

// Service сервис управления гостями бронирований
type Service struct {
	reservationRepo   ReservationRepository
	assocRepo         AssociationRepository
	participationRepo ParticipationRepository
	personClient      PersonServiceClient
	facilityClient    FacilityServiceClient
	credentialIssuer  CredentialIssuer
	txManager         TransactionManager
	logger            Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(
	reservationRepo ReservationRepository,
	assocRepo AssociationRepository,
	participationRepo ParticipationRepository,
	personClient PersonServiceClient,
	facilityClient FacilityServiceClient,
	credentialIssuer CredentialIssuer,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo:   reservationRepo,
		assocRepo:         assocRepo,
		participationRepo: participationRepo,
		personClient:      personClient,
		facilityClient:    facilityClient,
		credentialIssuer:  credentialIssuer,
		txManager:         txManager,
		logger:            logger,
	}
}

// Invite приглашает гостя на бронирование.
// Потолок приглашений - вместимость корта минус место клиента,
// считается по общему числу приглашённых. Проверка и вставка идут
// в serializable транзакции, чтобы два параллельных приглашения
// не пробили лимит.
func (s *Service) Invite(ctx context.Context, reservationID int64, req *models.InviteGuestRequest) (*models.ParticipationResponse, error) {
	s.logger.Info("Invite: inviting guest=%d to reservation=%d by requester=%d",
		req.GuestID, reservationID, req.RequesterID)

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		s.logger.Warn("Invite: notes too long for reservation=%d", reservationID)
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Проверяем гостя в PersonService до транзакции
	guest, err := s.personClient.GetPerson(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, personClient.ErrPersonNotFound) {
			s.logger.Warn("Invite: guest=%d not found", req.GuestID)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("Invite: failed to get guest=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: Invite - failed to get guest: %v", ErrInternal, err)
	}

	if !guest.IsGuest() {
		s.logger.Warn("Invite: person=%d has kind=%s, not a guest", req.GuestID, guest.Kind)
		return nil, ErrNotAGuest
	}

	var created *domain.GuestParticipation

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByID(ctx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Invite - repository error: %v", ErrInternal, err)
		}

		if !res.IsModifiable() {
			return ErrNotModifiable
		}

		maxGuests, err := s.guestCeiling(ctx, reservationID)
		if err != nil {
			return err
		}

		counts, err := s.participationRepo.CountByReservation(ctx, reservationID)
		if err != nil {
			return fmt.Errorf("%w: Invite - count error: %v", ErrInternal, err)
		}

		// Потолок приглашений считается по всем приглашённым,
		// а не только по подтверждённым
		if counts.Total >= int64(maxGuests) {
			return ErrCapacityExceeded
		}

		p := &domain.GuestParticipation{
			ReservationID: reservationID,
			GuestID:       req.GuestID,
			Notes:         req.Notes,
		}

		created, err = s.participationRepo.Create(ctx, p)
		if err != nil {
			if errors.Is(err, participationRepo.ErrParticipationExists) {
				return ErrAlreadyInvited
			}
			return fmt.Errorf("%w: Invite - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("Invite: guest=%d not invited to reservation=%d: %v", req.GuestID, reservationID, err)
		} else {
			s.logger.Error("Invite: failed for reservation=%d: %v", reservationID, err)
		}
		return nil, err
	}

	s.logger.Info("Invite: successfully invited guest=%d to reservation=%d", req.GuestID, reservationID)
	return models.FromDomainParticipation(created), nil
}

// Confirm подтверждает участие гостя.
// Потолок подтверждений считается по счётчику связки корта, счётчик
// растёт атомарно в той же транзакции. После подтверждения гостю
// выдаётся пропуск, ошибка выдачи не откатывает подтверждение.
func (s *Service) Confirm(ctx context.Context, reservationID, guestID int64) (*models.ParticipationResponse, error) {
	s.logger.Info("Confirm: confirming guest=%d for reservation=%d", guestID, reservationID)

	var confirmed *domain.GuestParticipation

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByID(ctx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		if !res.IsActive() {
			return ErrReservationNotActive
		}

		p, err := s.participationRepo.Get(ctx, reservationID, guestID)
		if err != nil {
			if errors.Is(err, participationRepo.ErrParticipationNotFound) {
				return ErrParticipationNotFound
			}
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		if p.Confirmed {
			return ErrAlreadyConfirmed
		}

		assocs, err := s.assocRepo.ListByReservation(ctx, reservationID)
		if err != nil {
			return fmt.Errorf("%w: Confirm - associations error: %v", ErrInternal, err)
		}
		if len(assocs) == 0 {
			return ErrNoCourtAssociated
		}
		assoc := assocs[0]

		court, err := s.facilityClient.GetCourt(ctx, assoc.CourtID)
		if err != nil {
			if errors.Is(err, facilityClient.ErrCourtNotFound) {
				return ErrNoCourtAssociated
			}
			return fmt.Errorf("%w: Confirm - failed to get court: %v", ErrInternal, err)
		}

		// Потолок подтверждений считается по счётчику связки.
		// Счётчик монотонный: удаление гостя его не уменьшает.
		if assoc.ConfirmedGuestCount >= domain.MaxGuests(court.Capacity) {
			return ErrCapacityExceeded
		}

		// Подтверждение считается и уведомлением гостя
		p.Confirmed = true
		p.Notified = true
		if err := s.participationRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		if err := s.assocRepo.IncrementConfirmedGuests(ctx, assoc.Key()); err != nil {
			return fmt.Errorf("%w: Confirm - counter error: %v", ErrInternal, err)
		}

		confirmed = p
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("Confirm: guest=%d not confirmed for reservation=%d: %v", guestID, reservationID, err)
		} else {
			s.logger.Error("Confirm: failed for reservation=%d: %v", reservationID, err)
		}
		return nil, err
	}

	// Выдаём пропуск вне транзакции: подтверждение уже состоялось
	if err := s.credentialIssuer.IssueForPerson(ctx, reservationID, guestID); err != nil {
		s.logger.Error("Confirm: failed to issue credential for guest=%d reservation=%d: %v",
			guestID, reservationID, err)
	}

	s.logger.Info("Confirm: successfully confirmed guest=%d for reservation=%d", guestID, reservationID)
	return models.FromDomainParticipation(confirmed), nil
}

// RecordAttendance отмечает фактическое посещение гостя.
// Посещение отмечается только для подтверждённых приглашений.
func (s *Service) RecordAttendance(ctx context.Context, reservationID, guestID int64, req *models.AttendanceRequest) (*models.ParticipationResponse, error) {
	s.logger.Info("RecordAttendance: marking guest=%d attended=%v for reservation=%d",
		guestID, req.Attended, reservationID)

	var updated *domain.GuestParticipation

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		p, err := s.participationRepo.Get(ctx, reservationID, guestID)
		if err != nil {
			if errors.Is(err, participationRepo.ErrParticipationNotFound) {
				return ErrParticipationNotFound
			}
			return fmt.Errorf("%w: RecordAttendance - repository error: %v", ErrInternal, err)
		}

		if !p.Confirmed {
			return ErrNotConfirmed
		}

		p.Attended = req.Attended
		if err := s.participationRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("%w: RecordAttendance - repository error: %v", ErrInternal, err)
		}

		updated = p
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("RecordAttendance: attendance not recorded for guest=%d reservation=%d: %v",
				guestID, reservationID, err)
		} else {
			s.logger.Error("RecordAttendance: failed for reservation=%d: %v", reservationID, err)
		}
		return nil, err
	}

	s.logger.Info("RecordAttendance: successfully recorded attendance for guest=%d reservation=%d",
		guestID, reservationID)
	return models.FromDomainParticipation(updated), nil
}

// MarkNotified отмечает, что гостю отправлено уведомление
func (s *Service) MarkNotified(ctx context.Context, reservationID, guestID int64) error {
	s.logger.Info("MarkNotified: marking guest=%d notified for reservation=%d", guestID, reservationID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		p, err := s.participationRepo.Get(ctx, reservationID, guestID)
		if err != nil {
			if errors.Is(err, participationRepo.ErrParticipationNotFound) {
				return ErrParticipationNotFound
			}
			return fmt.Errorf("%w: MarkNotified - repository error: %v", ErrInternal, err)
		}

		if p.Notified {
			return nil
		}

		p.Notified = true
		if err := s.participationRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("%w: MarkNotified - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("MarkNotified: guest=%d not marked for reservation=%d: %v", guestID, reservationID, err)
		} else {
			s.logger.Error("MarkNotified: failed for reservation=%d: %v", reservationID, err)
		}
		return err
	}

	s.logger.Info("MarkNotified: successfully marked guest=%d notified for reservation=%d", guestID, reservationID)
	return nil
}

// Update обновляет заметки приглашения
func (s *Service) Update(ctx context.Context, reservationID, guestID int64, req *models.UpdateParticipationRequest) (*models.ParticipationResponse, error) {
	s.logger.Info("Update: updating participation guest=%d reservation=%d", guestID, reservationID)

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		s.logger.Warn("Update: notes too long for reservation=%d", reservationID)
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	var updated *domain.GuestParticipation

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		p, err := s.participationRepo.Get(ctx, reservationID, guestID)
		if err != nil {
			if errors.Is(err, participationRepo.ErrParticipationNotFound) {
				return ErrParticipationNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		p.Notes = req.Notes
		if err := s.participationRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = p
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("Update: participation not updated for guest=%d reservation=%d: %v",
				guestID, reservationID, err)
		} else {
			s.logger.Error("Update: failed for reservation=%d: %v", reservationID, err)
		}
		return nil, err
	}

	s.logger.Info("Update: successfully updated participation guest=%d reservation=%d", guestID, reservationID)
	return models.FromDomainParticipation(updated), nil
}

// Remove удаляет приглашение гостя.
// Счётчик подтверждённых гостей связки при этом не уменьшается:
// освободившееся место не возвращается в потолок подтверждений.
func (s *Service) Remove(ctx context.Context, reservationID, guestID int64) error {
	s.logger.Info("Remove: removing guest=%d from reservation=%d", guestID, reservationID)

	err := s.participationRepo.Delete(ctx, reservationID, guestID)
	if err != nil {
		if errors.Is(err, participationRepo.ErrParticipationNotFound) {
			s.logger.Warn("Remove: participation not found for guest=%d reservation=%d", guestID, reservationID)
			return ErrParticipationNotFound
		}
		s.logger.Error("Remove: repository error for reservation=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: successfully removed guest=%d from reservation=%d", guestID, reservationID)
	return nil
}

// Get получает приглашение гостя
func (s *Service) Get(ctx context.Context, reservationID, guestID int64) (*models.ParticipationResponse, error) {
	s.logger.Info("Get: fetching participation guest=%d reservation=%d", guestID, reservationID)

	p, err := s.participationRepo.Get(ctx, reservationID, guestID)
	if err != nil {
		if errors.Is(err, participationRepo.ErrParticipationNotFound) {
			s.logger.Warn("Get: participation not found for guest=%d reservation=%d", guestID, reservationID)
			return nil, ErrParticipationNotFound
		}
		s.logger.Error("Get: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainParticipation(p), nil
}

// ListByReservation получает приглашения бронирования.
// При onlyConfirmed=true возвращает только подтверждённых гостей.
func (s *Service) ListByReservation(ctx context.Context, reservationID int64, onlyConfirmed bool) (*models.ParticipationListResponse, error) {
	s.logger.Info("ListByReservation: fetching participations for reservation=%d onlyConfirmed=%v",
		reservationID, onlyConfirmed)

	// Проверяем существование бронирования, чтобы отличить пустой список от 404
	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("ListByReservation: reservation=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("ListByReservation: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	participations, err := s.participationRepo.ListByReservation(ctx, reservationID, onlyConfirmed)
	if err != nil {
		s.logger.Error("ListByReservation: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByReservation: successfully fetched %d participations for reservation=%d",
		len(participations), reservationID)
	return models.FromDomainParticipationList(participations), nil
}

// ListByGuest получает все приглашения гостя
func (s *Service) ListByGuest(ctx context.Context, guestID int64) (*models.ParticipationListResponse, error) {
	s.logger.Info("ListByGuest: fetching participations for guest=%d", guestID)

	participations, err := s.participationRepo.ListByGuest(ctx, guestID)
	if err != nil {
		s.logger.Error("ListByGuest: repository error for guest=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: ListByGuest - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByGuest: successfully fetched %d participations for guest=%d", len(participations), guestID)
	return models.FromDomainParticipationList(participations), nil
}

// GetCounts получает счётчики гостей бронирования вместе с потолком
func (s *Service) GetCounts(ctx context.Context, reservationID int64) (*models.GuestCountsResponse, error) {
	s.logger.Info("GetCounts: fetching guest counts for reservation=%d", reservationID)

	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetCounts: reservation=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetCounts: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetCounts - repository error: %v", ErrInternal, err)
	}

	counts, err := s.participationRepo.CountByReservation(ctx, reservationID)
	if err != nil {
		s.logger.Error("GetCounts: count error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetCounts - count error: %v", ErrInternal, err)
	}

	maxGuests, err := s.guestCeiling(ctx, reservationID)
	if err != nil && !errors.Is(err, ErrNoCourtAssociated) {
		return nil, err
	}

	return &models.GuestCountsResponse{
		ReservationID: reservationID,
		Total:         counts.Total,
		Confirmed:     counts.Confirmed,
		Attended:      counts.Attended,
		MaxGuests:     maxGuests,
	}, nil
}

// Вспомогательные методы

// guestCeiling возвращает потолок гостей по вместимости корта бронирования
func (s *Service) guestCeiling(ctx context.Context, reservationID int64) (int, error) {
	assocs, err := s.assocRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		return 0, fmt.Errorf("%w: guestCeiling - associations error: %v", ErrInternal, err)
	}
	if len(assocs) == 0 {
		return 0, ErrNoCourtAssociated
	}

	court, err := s.facilityClient.GetCourt(ctx, assocs[0].CourtID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrCourtNotFound) {
			return 0, ErrNoCourtAssociated
		}
		return 0, fmt.Errorf("%w: guestCeiling - failed to get court: %v", ErrInternal, err)
	}

	return domain.MaxGuests(court.Capacity), nil
}
