package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	facilityClient "github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	personClient "github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	assocRepo       AssociationRepository
	facilityClient  FacilityServiceClient
	personClient    PersonServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	assocRepo AssociationRepository,
	facilityClient FacilityServiceClient,
	personClient PersonServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		assocRepo:       assocRepo,
		facilityClient:  facilityClient,
		personClient:    personClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Бронирование создаётся в статусе pending вместе со связкой корта,
// проверка пересечений и вставка идут в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%d, court=%d, discipline=%d, date=%s, time=%s-%s",
		req.ClientID, req.CourtID, req.DisciplineID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация временного диапазона
	durationMinutes, err := validateTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateReservation: time range validation failed: %v", err)
		return nil, err
	}

	// 3. Валидация даты относительно текущего времени
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем корт
	court, err := uc.facilityClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrCourtNotFound) {
			uc.logger.Warn("CreateReservation: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateReservation: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.Active {
		uc.logger.Warn("CreateReservation: court id=%d is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 5. Проверяем часы работы зоны корта
	if err := validateOperatingHours(&court.Area, req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateReservation: operating hours check failed for court id=%d: %v", req.CourtID, err)
		return nil, err
	}

	// 6. Проверяем существование дисциплины
	if _, err := uc.facilityClient.GetDiscipline(ctx, req.DisciplineID); err != nil {
		if errors.Is(err, facilityClient.ErrDisciplineNotFound) {
			uc.logger.Warn("CreateReservation: discipline id=%d not found", req.DisciplineID)
			return nil, ErrDisciplineNotFound
		}
		uc.logger.Error("CreateReservation: failed to get discipline id=%d: %v", req.DisciplineID, err)
		return nil, fmt.Errorf("%w: failed to get discipline: %v", ErrInternal, err)
	}

	// 7. Проверяем клиента
	person, err := uc.personClient.GetPerson(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, personClient.ErrPersonNotFound) {
			uc.logger.Warn("CreateReservation: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateReservation: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	if !person.IsClient() {
		uc.logger.Warn("CreateReservation: person id=%d has kind=%s, cannot own a reservation", req.ClientID, person.Kind)
		return nil, ErrNotAClient
	}

	// Стоимость интервала: почасовая ставка x часы, два знака
	amount := domain.Round2(court.HourlyRate * float64(durationMinutes) / 60.0)

	// Переменные для хранения результата
	var createdRes *domain.Reservation
	var createdAssoc *domain.CourtAssociation

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем бронирования корта на дату с блокировкой (FOR UPDATE)
		filter := domain.ReservationsFilter{
			CourtID: &req.CourtID,
			Date:    &req.Date,
		}

		existing, err := uc.reservationRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 8.2. Проверяем пересечения
		if conflict := findTimeConflict(req.StartTime, req.EndTime, existing); conflict != nil {
			uc.logger.Warn("CreateReservation: court id=%d is busy %s - %s",
				req.CourtID, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: court is busy %s - %s", ErrTimeConflict, conflict.StartTime, conflict.EndTime)
		}

		// 8.3. Создаем бронирование
		reservation := &domain.Reservation{
			ClientID:        req.ClientID,
			ReservationDate: req.Date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			DurationMinutes: durationMinutes,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		createdRes, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 8.4. Создаем связку корта с рассчитанной стоимостью
		assoc := &domain.CourtAssociation{
			ReservationID: createdRes.ID,
			CourtID:       req.CourtID,
			DisciplineID:  req.DisciplineID,
			Amount:        amount,
		}

		createdAssoc, err = uc.assocRepo.Create(txCtx, assoc)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create association: %v", err)
			return fmt.Errorf("%w: failed to create association: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, amount=%.2f",
		createdRes.ID, createdAssoc.Amount)

	// Конвертируем в response
	return &Response{
		ID:              createdRes.ID,
		ClientID:        createdRes.ClientID,
		CourtID:         createdAssoc.CourtID,
		DisciplineID:    createdAssoc.DisciplineID,
		ReservationDate: createdRes.ReservationDate,
		StartTime:       createdRes.StartTime,
		EndTime:         createdRes.EndTime,
		DurationMinutes: createdRes.DurationMinutes,
		Status:          string(createdRes.Status),
		CourtName:       court.Name,
		HourlyRate:      court.HourlyRate,
		Amount:          createdAssoc.Amount,
		Notes:           createdRes.Notes,
		CreatedAt:       createdRes.CreatedAt,
		UpdatedAt:       createdRes.UpdatedAt,
	}, nil
}
