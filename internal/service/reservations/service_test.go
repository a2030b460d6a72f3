package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
)

type fakeReservationRepo struct {
	res           *domain.Reservation
	statusUpdates []domain.ReservationStatus
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	return f.res, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, res *domain.Reservation) error {
	f.res = res
	return nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ int64, status domain.ReservationStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	f.res.Status = status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ int64, reason string, notes *string) error {
	f.res.Status = domain.StatusCancelled
	f.res.CancellationReason = &reason
	f.res.Notes = notes
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeReservationRepo) ListByClient(_ context.Context, _ int64, _ *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return []*domain.Reservation{f.res}, nil
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return []*domain.Reservation{f.res}, nil
}

type fakeAssocRepo struct{}

func (fakeAssocRepo) ListByReservation(_ context.Context, _ int64) ([]*domain.CourtAssociation, error) {
	return nil, nil
}

func (fakeAssocRepo) DeleteByReservation(_ context.Context, _ int64) error {
	return nil
}

type fakeCredentialRepo struct{}

func (fakeCredentialRepo) DeactivateByReservation(_ context.Context, _ int64) error {
	return nil
}

type fakePersonClient struct{}

func (fakePersonClient) GetPerson(_ context.Context, personID int64) (*personservice.Person, error) {
	return &personservice.Person{ID: personID, DisplayName: "Клиент", Kind: personservice.KindClient, Active: true}, nil
}

type passTxManager struct{}

func (passTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newStatusFixture(status domain.ReservationStatus) (*Service, *fakeReservationRepo) {
	reservations := &fakeReservationRepo{
		res: &domain.Reservation{ID: 1, ClientID: 10, Status: status},
	}
	svc := NewService(reservations, fakeAssocRepo{}, fakeCredentialRepo{}, fakePersonClient{}, passTxManager{}, nopLogger{})
	return svc, reservations
}

func TestUpdateStatusRejectsPendingToConfirmed(t *testing.T) {
	// Неоплаченное pending-бронирование нельзя подтвердить напрямую:
	// подтверждение происходит только через сверку платежей
	svc, reservations := newStatusFixture(domain.StatusPending)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		RequesterID: 10,
		Status:      string(domain.StatusConfirmed),
	})

	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, reservations.statusUpdates)
	assert.Equal(t, domain.StatusPending, reservations.res.Status)
}

func TestUpdateStatusConfirmedToInProgress(t *testing.T) {
	svc, reservations := newStatusFixture(domain.StatusConfirmed)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		RequesterID: 10,
		Status:      string(domain.StatusInProgress),
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.ReservationStatus{domain.StatusInProgress}, reservations.statusUpdates)
}

func TestUpdateStatusRejectsCancellation(t *testing.T) {
	svc, _ := newStatusFixture(domain.StatusConfirmed)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		RequesterID: 10,
		Status:      string(domain.StatusCancelled),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateTimeRangeDates(t *testing.T) {
	svc := &Service{logger: nopLogger{}}
	today := time.Now().Format(domain.DateFormat)
	yesterday := time.Now().AddDate(0, 0, -1).Format(domain.DateFormat)

	_, _, _, duration, err := svc.validateTimeRange(today, "10:00", "11:30")
	require.NoError(t, err, "today must be bookable regardless of the wall clock")
	assert.Equal(t, 90, duration)

	_, _, _, _, err = svc.validateTimeRange(yesterday, "10:00", "11:30")
	assert.ErrorIs(t, err, ErrInvalidDate)

	tooFar := time.Now().AddDate(0, domain.MaxAdvanceMonths, 1).Format(domain.DateFormat)
	_, _, _, _, err = svc.validateTimeRange(tooFar, "10:00", "11:30")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
