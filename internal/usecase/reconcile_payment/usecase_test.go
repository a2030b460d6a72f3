package reconcile_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

type fakeReservationRepo struct {
	res *domain.Reservation

	totalPaid float64
	balance   float64
	fullyPaid bool

	statusUpdates []domain.ReservationStatus
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	return f.res, nil
}

func (f *fakeReservationRepo) UpdatePaymentState(_ context.Context, _ int64, totalPaid, balance float64, fullyPaid bool) error {
	f.totalPaid = totalPaid
	f.balance = balance
	f.fullyPaid = fullyPaid
	f.res.TotalPaid = totalPaid
	f.res.Balance = balance
	f.res.FullyPaid = fullyPaid
	return nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ int64, status domain.ReservationStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	f.res.Status = status
	return nil
}

type fakeAssocRepo struct {
	assocs []*domain.CourtAssociation
}

func (f *fakeAssocRepo) ListByReservation(_ context.Context, _ int64) ([]*domain.CourtAssociation, error) {
	return f.assocs, nil
}

type fakePaymentRepo struct {
	sum float64
}

func (f *fakePaymentRepo) SumConfirmedByReservation(_ context.Context, _ int64) (float64, error) {
	return f.sum, nil
}

type fakeParticipationRepo struct {
	confirmed []*domain.GuestParticipation
}

func (f *fakeParticipationRepo) ListByReservation(_ context.Context, _ int64, _ bool) ([]*domain.GuestParticipation, error) {
	return f.confirmed, nil
}

type fakeIssuer struct {
	issued []int64
}

func (f *fakeIssuer) IssueForPerson(_ context.Context, _, personID int64) error {
	f.issued = append(f.issued, personID)
	return nil
}

type serialTxManager struct{}

func (serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newReconcileFixture(status domain.ReservationStatus, expected, paid float64) (*UseCase, *fakeReservationRepo, *fakeIssuer) {
	reservations := &fakeReservationRepo{
		res: &domain.Reservation{ID: 1, ClientID: 10, Status: status},
	}
	assocs := &fakeAssocRepo{
		assocs: []*domain.CourtAssociation{
			{ReservationID: 1, CourtID: 5, DisciplineID: 2, Amount: expected},
		},
	}
	payments := &fakePaymentRepo{sum: paid}
	participations := &fakeParticipationRepo{
		confirmed: []*domain.GuestParticipation{
			{ReservationID: 1, GuestID: 99, Confirmed: true},
		},
	}
	issuer := &fakeIssuer{}

	uc := NewUseCase(reservations, assocs, payments, participations, issuer, serialTxManager{}, nopLogger{})
	return uc, reservations, issuer
}

func TestExecuteFullPaymentConfirmsAndIssuesCredentials(t *testing.T) {
	uc, reservations, issuer := newReconcileFixture(domain.StatusPending, 2250, 2250)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1})

	require.NoError(t, err)
	assert.True(t, resp.FullyPaid)
	assert.True(t, resp.Confirmed)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.InDelta(t, 2250.0, resp.TotalPaid, 0.0001)
	assert.InDelta(t, 0.0, resp.Balance, 0.0001)

	// Полная оплата подтвердила бронирование
	assert.Equal(t, []domain.ReservationStatus{domain.StatusConfirmed}, reservations.statusUpdates)

	// Пропуска веерно выданы клиенту и подтверждённому гостю
	assert.Equal(t, []int64{10, 99}, issuer.issued)
}

func TestExecuteWithinToleranceIsFullyPaid(t *testing.T) {
	uc, _, _ := newReconcileFixture(domain.StatusPending, 2250, 2249.99)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1})

	require.NoError(t, err)
	assert.True(t, resp.FullyPaid, "balance within tolerance counts as settled")
	assert.True(t, resp.Confirmed)
}

func TestExecutePartialPaymentKeepsPending(t *testing.T) {
	uc, reservations, issuer := newReconcileFixture(domain.StatusPending, 2250, 1000)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1})

	require.NoError(t, err)
	assert.False(t, resp.FullyPaid)
	assert.False(t, resp.Confirmed)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.InDelta(t, 1250.0, resp.Balance, 0.0001)

	assert.Empty(t, reservations.statusUpdates)
	assert.Empty(t, issuer.issued)
}

func TestExecuteConfirmedStaysConfirmed(t *testing.T) {
	// Повторная сверка уже подтверждённого бронирования статус не трогает
	uc, reservations, issuer := newReconcileFixture(domain.StatusConfirmed, 2250, 2250)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1})

	require.NoError(t, err)
	assert.True(t, resp.FullyPaid)
	assert.False(t, resp.Confirmed)
	assert.Empty(t, reservations.statusUpdates)
	assert.Empty(t, issuer.issued)
}

func TestExecuteCancelledReservationRejected(t *testing.T) {
	uc, _, _ := newReconcileFixture(domain.StatusCancelled, 2250, 2250)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1})

	require.ErrorIs(t, err, ErrReservationInactive)
}
