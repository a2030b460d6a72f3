package record_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
)

// UseCase use case записи платежа по бронированию
type UseCase struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	reconciler      Reconciler
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	reconciler Reconciler,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		reconciler:      reconciler,
		logger:          logger,
	}
}

// Execute записывает платёж и запускает сверку.
// Подтверждённый платёж может довести бронирование до полной оплаты,
// ошибка самой сверки не отменяет записанный платёж.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecordPayment: reservation=%d, client=%d, amount=%.2f, status=%s",
		req.ReservationID, req.ClientID, req.Amount, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RecordPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем бронирование
	res, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("RecordPayment: reservation=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("RecordPayment: failed to get reservation=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if !res.BlocksCourt() {
		uc.logger.Warn("RecordPayment: reservation=%d is %s", req.ReservationID, res.Status)
		return nil, ErrReservationInactive
	}

	// 3. Записываем платёж
	payment := &domain.Payment{
		ReservationID: req.ReservationID,
		ClientID:      req.ClientID,
		Amount:        domain.Round2(req.Amount),
		PaidAt:        req.PaidAt,
		Method:        req.Method,
		Status:        domain.PaymentStatus(req.Status),
		ReferenceCode: req.ReferenceCode,
		Description:   req.Description,
	}

	created, err := uc.paymentRepo.Create(ctx, payment)
	if err != nil {
		uc.logger.Error("RecordPayment: failed to create payment: %v", err)
		return nil, fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
	}

	uc.logger.Info("RecordPayment: successfully recorded payment id=%d for reservation=%d",
		created.ID, req.ReservationID)

	// 4. Запускаем сверку, её ошибка не отменяет платёж
	if created.IsConfirmed() {
		if err := uc.reconciler.Reconcile(ctx, req.ReservationID); err != nil {
			uc.logger.Error("RecordPayment: reconciliation failed for reservation=%d: %v", req.ReservationID, err)
		}
	}

	resp := fromDomainPayment(created)
	return &resp, nil
}

// ListByReservation получает платежи бронирования
func (uc *UseCase) ListByReservation(ctx context.Context, reservationID int64) (*PaymentListResponse, error) {
	uc.logger.Info("RecordPayment: listing payments for reservation=%d", reservationID)

	if reservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	// Проверяем существование бронирования, чтобы отличить пустой список от 404
	if _, err := uc.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("RecordPayment: reservation=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("RecordPayment: failed to get reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	payments, err := uc.paymentRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		uc.logger.Error("RecordPayment: failed to list payments for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: failed to list payments: %v", ErrInternal, err)
	}

	resp := &PaymentListResponse{
		Payments: make([]Response, len(payments)),
	}
	for i, p := range payments {
		resp.Payments[i] = fromDomainPayment(p)
	}

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if req.PaidAt.IsZero() {
		return fmt.Errorf("%w: paidAt is required", ErrInvalidInput)
	}

	if req.Method == "" {
		return fmt.Errorf("%w: method is required", ErrInvalidInput)
	}

	switch domain.PaymentStatus(req.Status) {
	case domain.PaymentPending, domain.PaymentConfirmed:
	default:
		return ErrInvalidStatus
	}

	return nil
}
