package associations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	assocRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/association"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	facilityClient "github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-CourtService/internal/service/associations/models"
)

// Service сервис привязки кортов и расчёта стоимости бронирований
type Service struct {
	reservationRepo ReservationRepository
	assocRepo       AssociationRepository
	facilityClient  FacilityServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса связок
func NewService(
	reservationRepo ReservationRepository,
	assocRepo AssociationRepository,
	facilityClient FacilityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		assocRepo:       assocRepo,
		facilityClient:  facilityClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Associate привязывает корт и дисциплину к бронированию.
// Стоимость считается из почасовой ставки корта и длительности интервала,
// расчёт детерминирован: повторный вызов с той же тройкой ключей
// возвращает ErrAssociationExists, а не вторую связку.
func (s *Service) Associate(ctx context.Context, reservationID int64, req *models.AssociateCourtRequest) (*models.AssociationResponse, error) {
	s.logger.Info("Associate: associating court=%d discipline=%d to reservation=%d",
		req.CourtID, req.DisciplineID, reservationID)

	court, err := s.getActiveCourt(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	if err := s.checkDiscipline(ctx, req.DisciplineID); err != nil {
		return nil, err
	}

	var created *domain.CourtAssociation

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByID(ctx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Associate - repository error: %v", ErrInternal, err)
		}

		if !res.IsModifiable() {
			return ErrNotModifiable
		}

		amount := quoteAmount(court.HourlyRate, res.DurationMinutes)

		assoc := &domain.CourtAssociation{
			ReservationID:       reservationID,
			CourtID:             req.CourtID,
			DisciplineID:        req.DisciplineID,
			Amount:              amount,
			ConfirmedGuestCount: 0,
		}

		created, err = s.assocRepo.Create(ctx, assoc)
		if err != nil {
			if errors.Is(err, assocRepo.ErrAssociationExists) {
				return ErrAssociationExists
			}
			return fmt.Errorf("%w: Associate - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("Associate: court=%d not associated to reservation=%d: %v", req.CourtID, reservationID, err)
		} else {
			s.logger.Error("Associate: failed for reservation=%d: %v", reservationID, err)
		}
		return nil, err
	}

	s.logger.Info("Associate: successfully associated court=%d to reservation=%d, amount=%.2f",
		req.CourtID, reservationID, created.Amount)
	return models.FromDomainAssociation(created), nil
}

// Quote считает стоимость интервала бронирования на корте без сохранения.
// Повторный вызов с теми же аргументами даёт тот же результат.
func (s *Service) Quote(ctx context.Context, reservationID int64, req *models.QuoteRequest) (*models.QuoteResponse, error) {
	s.logger.Info("Quote: quoting court=%d for reservation=%d", req.CourtID, reservationID)

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Quote: reservation=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Quote: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Quote - repository error: %v", ErrInternal, err)
	}

	court, err := s.getActiveCourt(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	if err := s.checkDiscipline(ctx, req.DisciplineID); err != nil {
		return nil, err
	}

	amount := quoteAmount(court.HourlyRate, res.DurationMinutes)

	s.logger.Info("Quote: court=%d reservation=%d rate=%.2f minutes=%d amount=%.2f",
		req.CourtID, reservationID, court.HourlyRate, res.DurationMinutes, amount)

	return &models.QuoteResponse{
		ReservationID:   reservationID,
		CourtID:         req.CourtID,
		DisciplineID:    req.DisciplineID,
		HourlyRate:      court.HourlyRate,
		DurationMinutes: res.DurationMinutes,
		Amount:          amount,
	}, nil
}

// GetByKey получает связку по тройке (бронирование, корт, дисциплина)
func (s *Service) GetByKey(ctx context.Context, key domain.AssociationKey) (*models.AssociationResponse, error) {
	s.logger.Info("GetByKey: fetching association reservation=%d court=%d discipline=%d",
		key.ReservationID, key.CourtID, key.DisciplineID)

	assoc, err := s.assocRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, assocRepo.ErrAssociationNotFound) {
			s.logger.Warn("GetByKey: association not found for reservation=%d court=%d", key.ReservationID, key.CourtID)
			return nil, ErrAssociationNotFound
		}
		s.logger.Error("GetByKey: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByKey - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAssociation(assoc), nil
}

// ListByReservation получает связки бронирования
func (s *Service) ListByReservation(ctx context.Context, reservationID int64) (*models.AssociationListResponse, error) {
	s.logger.Info("ListByReservation: fetching associations for reservation=%d", reservationID)

	// Проверяем существование бронирования, чтобы отличить пустой список от 404
	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("ListByReservation: reservation=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("ListByReservation: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	assocs, err := s.assocRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		s.logger.Error("ListByReservation: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByReservation: successfully fetched %d associations for reservation=%d", len(assocs), reservationID)
	return models.FromDomainAssociationList(assocs), nil
}

// ListByCourt получает связки по корту
func (s *Service) ListByCourt(ctx context.Context, courtID int64) (*models.AssociationListResponse, error) {
	s.logger.Info("ListByCourt: fetching associations for court=%d", courtID)

	assocs, err := s.assocRepo.ListByCourt(ctx, courtID)
	if err != nil {
		s.logger.Error("ListByCourt: repository error for court=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: ListByCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCourt: successfully fetched %d associations for court=%d", len(assocs), courtID)
	return models.FromDomainAssociationList(assocs), nil
}

// Remove удаляет связку бронирования с кортом.
// Счётчик подтверждённых гостей при этом не переносится и не обнуляется
// в других связках - история подтверждений остаётся за бронированием.
func (s *Service) Remove(ctx context.Context, key domain.AssociationKey, requesterID int64) error {
	s.logger.Info("Remove: removing association reservation=%d court=%d discipline=%d by requester=%d",
		key.ReservationID, key.CourtID, key.DisciplineID, requesterID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByID(ctx, key.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
		}

		if !res.IsModifiable() {
			return ErrNotModifiable
		}

		if err := s.assocRepo.Delete(ctx, key); err != nil {
			if errors.Is(err, assocRepo.ErrAssociationNotFound) {
				return ErrAssociationNotFound
			}
			return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("Remove: association not removed for reservation=%d: %v", key.ReservationID, err)
		} else {
			s.logger.Error("Remove: failed for reservation=%d: %v", key.ReservationID, err)
		}
		return err
	}

	s.logger.Info("Remove: successfully removed association reservation=%d court=%d", key.ReservationID, key.CourtID)
	return nil
}

// Вспомогательные методы

// quoteAmount считает стоимость интервала: почасовая ставка x часы, два знака
func quoteAmount(hourlyRate float64, durationMinutes int) float64 {
	return domain.Round2(hourlyRate * float64(durationMinutes) / 60.0)
}

// getActiveCourt получает корт и проверяет, что он активен
func (s *Service) getActiveCourt(ctx context.Context, courtID int64) (*facilityClient.Court, error) {
	court, err := s.facilityClient.GetCourt(ctx, courtID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrCourtNotFound) {
			s.logger.Warn("getActiveCourt: court=%d not found", courtID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("getActiveCourt: failed to get court=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: getActiveCourt - failed to get court: %v", ErrInternal, err)
	}

	if !court.Active {
		s.logger.Warn("getActiveCourt: court=%d is not active", courtID)
		return nil, ErrCourtInactive
	}

	return court, nil
}

// checkDiscipline проверяет существование дисциплины
func (s *Service) checkDiscipline(ctx context.Context, disciplineID int64) error {
	if _, err := s.facilityClient.GetDiscipline(ctx, disciplineID); err != nil {
		if errors.Is(err, facilityClient.ErrDisciplineNotFound) {
			s.logger.Warn("checkDiscipline: discipline=%d not found", disciplineID)
			return ErrDisciplineNotFound
		}
		s.logger.Error("checkDiscipline: failed to get discipline=%d: %v", disciplineID, err)
		return fmt.Errorf("%w: checkDiscipline - failed to get discipline: %v", ErrInternal, err)
	}

	return nil
}
