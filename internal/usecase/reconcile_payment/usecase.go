package reconcile_payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
)

// UseCase use case сверки платежей бронирования
type UseCase struct {
	reservationRepo   ReservationRepository
	assocRepo         AssociationRepository
	paymentRepo       PaymentRepository
	participationRepo ParticipationRepository
	credentialIssuer  CredentialIssuer
	txManager         TransactionManager
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	assocRepo AssociationRepository,
	paymentRepo PaymentRepository,
	participationRepo ParticipationRepository,
	credentialIssuer CredentialIssuer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:   reservationRepo,
		assocRepo:         assocRepo,
		paymentRepo:       paymentRepo,
		participationRepo: participationRepo,
		credentialIssuer:  credentialIssuer,
		txManager:         txManager,
		logger:            logger,
	}
}

// Execute выполняет сверку платежей бронирования.
// Ожидаемая сумма - сумма связок кортов, оплачено - сумма подтверждённых
// платежей. Бронирование считается оплаченным при |балансе| в пределах
// допуска. Полная оплата подтверждает pending-бронирование, после чего
// всем участникам веерно выдаются пропуска - ошибки выдачи не фатальны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReconcilePayment: reservation=%d", req.ReservationID)

	// 1. Валидация входных данных
	if req.ReservationID <= 0 {
		uc.logger.Warn("ReconcilePayment: invalid reservationID=%d", req.ReservationID)
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	var result *Response
	var becameConfirmed bool

	// 2. Считаем и сохраняем платёжное состояние в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// Отменённые и no-show бронирования сверке не подлежат
		if !res.BlocksCourt() {
			return ErrReservationInactive
		}

		// 2.2. Ожидаемая сумма - сумма связок кортов
		assocs, err := uc.assocRepo.ListByReservation(txCtx, req.ReservationID)
		if err != nil {
			return fmt.Errorf("%w: failed to get associations: %v", ErrInternal, err)
		}
		if len(assocs) == 0 {
			return ErrNoCourtAssociated
		}

		var expected float64
		for _, assoc := range assocs {
			expected += assoc.Amount
		}
		expected = domain.Round2(expected)

		// 2.3. Сумма подтверждённых платежей
		totalPaid, err := uc.paymentRepo.SumConfirmedByReservation(txCtx, req.ReservationID)
		if err != nil {
			return fmt.Errorf("%w: failed to sum payments: %v", ErrInternal, err)
		}
		totalPaid = domain.Round2(totalPaid)

		balance := domain.Round2(expected - totalPaid)
		fullyPaid := math.Abs(balance) <= domain.SettlementTolerance

		// 2.4. Сохраняем платёжное состояние на бронировании
		if err := uc.reservationRepo.UpdatePaymentState(txCtx, req.ReservationID, totalPaid, balance, fullyPaid); err != nil {
			return fmt.Errorf("%w: failed to update payment state: %v", ErrInternal, err)
		}

		status := res.Status

		// 2.5. Полная оплата подтверждает ожидающее бронирование
		if fullyPaid && res.Status == domain.StatusPending {
			if err := uc.reservationRepo.UpdateStatus(txCtx, req.ReservationID, domain.StatusConfirmed); err != nil {
				return fmt.Errorf("%w: failed to confirm reservation: %v", ErrInternal, err)
			}
			status = domain.StatusConfirmed
			becameConfirmed = true
		}

		result = &Response{
			ReservationID:  req.ReservationID,
			ExpectedAmount: expected,
			TotalPaid:      totalPaid,
			Balance:        balance,
			FullyPaid:      fullyPaid,
			Status:         string(status),
			Confirmed:      becameConfirmed,
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("ReconcilePayment: failed for reservation=%d: %v", req.ReservationID, err)
		} else {
			uc.logger.Warn("ReconcilePayment: reservation=%d not reconciled: %v", req.ReservationID, err)
		}
		return nil, err
	}

	uc.logger.Info("ReconcilePayment: reservation=%d expected=%.2f paid=%.2f balance=%.2f fullyPaid=%v",
		req.ReservationID, result.ExpectedAmount, result.TotalPaid, result.Balance, result.FullyPaid)

	// 3. Подтверждение оплатой запускает веерную выдачу пропусков
	if becameConfirmed {
		uc.issueCredentials(ctx, req.ReservationID)
	}

	return result, nil
}

// Reconcile выполняет сверку, отбрасывая результат.
// Используется после записи нового платежа.
func (uc *UseCase) Reconcile(ctx context.Context, reservationID int64) error {
	_, err := uc.Execute(ctx, &Request{ReservationID: reservationID})
	return err
}

// issueCredentials веерно выдаёт пропуска клиенту и подтверждённым гостям.
// Ошибки выдачи логируются и не прерывают обработку остальных участников.
func (uc *UseCase) issueCredentials(ctx context.Context, reservationID int64) {
	res, err := uc.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		uc.logger.Error("ReconcilePayment: failed to reload reservation=%d for credentials: %v", reservationID, err)
		return
	}

	if err := uc.credentialIssuer.IssueForPerson(ctx, reservationID, res.ClientID); err != nil {
		uc.logger.Error("ReconcilePayment: failed to issue credential for client=%d reservation=%d: %v",
			res.ClientID, reservationID, err)
	}

	confirmed, err := uc.participationRepo.ListByReservation(ctx, reservationID, true)
	if err != nil {
		uc.logger.Error("ReconcilePayment: failed to list confirmed guests for reservation=%d: %v", reservationID, err)
		return
	}

	for _, p := range confirmed {
		if err := uc.credentialIssuer.IssueForPerson(ctx, reservationID, p.GuestID); err != nil {
			uc.logger.Error("ReconcilePayment: failed to issue credential for guest=%d reservation=%d: %v",
				p.GuestID, reservationID, err)
		}
	}
}
