package get_free_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	facilityClient "github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// UseCase use case для расчёта свободных слотов корта на дату
type UseCase struct {
	reservationRepo ReservationRepository
	facilityClient  FacilityServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityClient FacilityServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityClient:  facilityClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case расчёта свободных слотов.
// Свободные промежутки вычисляются проходом курсора по бронированиям
// внутри окна работы зоны, затем нарезаются на блоки по 30 минут.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.CourtID <= 0 {
		uc.logger.Warn("GetFreeSlots: invalid courtID=%d", req.CourtID)
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		uc.logger.Warn("GetFreeSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetFreeSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Получаем корт вместе с зоной
	court, err := uc.facilityClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrCourtNotFound) {
			uc.logger.Warn("GetFreeSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.Active {
		uc.logger.Warn("GetFreeSlots: court id=%d is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 3. Зона без расписания не подлежит бронированию
	if !court.Area.HasOperatingHours() {
		uc.logger.Warn("GetFreeSlots: area id=%d has no operating hours", court.Area.ID)
		return nil, ErrHoursNotConfigured
	}

	openTime, err := types.NewTimeStringFromString(*court.Area.OpenTime)
	if err != nil {
		uc.logger.Error("GetFreeSlots: invalid open time for area id=%d: %v", court.Area.ID, err)
		return nil, fmt.Errorf("%w: invalid area open time: %v", ErrInternal, err)
	}

	closeTime, err := types.NewTimeStringFromString(*court.Area.CloseTime)
	if err != nil {
		uc.logger.Error("GetFreeSlots: invalid close time for area id=%d: %v", court.Area.ID, err)
		return nil, fmt.Errorf("%w: invalid area close time: %v", ErrInternal, err)
	}

	// 4. Получаем бронирования корта на дату
	filter := domain.ReservationsFilter{
		CourtID: &req.CourtID,
		Date:    &req.Date,
	}

	reservations, err := uc.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Вычисляем свободные промежутки и нарезаем слоты
	intervals := computeFreeIntervals(openTime, closeTime, reservations)
	slots := carveSlots(intervals, domain.SlotDurationMinutes)

	uc.logger.Info("GetFreeSlots: court=%d date=%s, %d intervals, %d slots",
		req.CourtID, req.Date.Format(domain.DateFormat), len(intervals), len(slots))

	// Конвертируем в response
	resp := &Response{
		CourtID:       req.CourtID,
		Date:          req.Date.Format(domain.DateFormat),
		OpenTime:      openTime.String(),
		CloseTime:     closeTime.String(),
		FreeIntervals: make([]FreeInterval, len(intervals)),
		Slots:         make([]Slot, len(slots)),
	}

	for i, interval := range intervals {
		resp.FreeIntervals[i] = FreeInterval{
			StartTime: interval.Start.String(),
			EndTime:   interval.End.String(),
		}
	}

	for i, slot := range slots {
		resp.Slots[i] = Slot{
			StartTime:       slot.Start.String(),
			EndTime:         slot.End.String(),
			DurationMinutes: slot.DurationMinutes,
			Label:           slot.Label(),
		}
	}

	return resp, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня).
// Сравниваются только календарные даты, независимо от часового пояса.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
