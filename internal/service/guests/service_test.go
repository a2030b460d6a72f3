package guests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	participationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/participation"
	"github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
)

type fakeReservationRepo struct {
	res *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	return f.res, nil
}

type fakeAssocRepo struct {
	assocs     []*domain.CourtAssociation
	increments []domain.AssociationKey
}

func (f *fakeAssocRepo) ListByReservation(_ context.Context, _ int64) ([]*domain.CourtAssociation, error) {
	return f.assocs, nil
}

func (f *fakeAssocRepo) IncrementConfirmedGuests(_ context.Context, key domain.AssociationKey) error {
	f.increments = append(f.increments, key)
	return nil
}

type fakeParticipationRepo struct {
	participations map[int64]*domain.GuestParticipation
	updated        []*domain.GuestParticipation
}

func (f *fakeParticipationRepo) Create(_ context.Context, p *domain.GuestParticipation) (*domain.GuestParticipation, error) {
	f.participations[p.GuestID] = p
	return p, nil
}

func (f *fakeParticipationRepo) Get(_ context.Context, _, guestID int64) (*domain.GuestParticipation, error) {
	p, ok := f.participations[guestID]
	if !ok {
		return nil, participationRepo.ErrParticipationNotFound
	}
	return p, nil
}

func (f *fakeParticipationRepo) Update(_ context.Context, p *domain.GuestParticipation) error {
	f.participations[p.GuestID] = p
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeParticipationRepo) Delete(_ context.Context, _, guestID int64) error {
	delete(f.participations, guestID)
	return nil
}

func (f *fakeParticipationRepo) ListByReservation(_ context.Context, _ int64, onlyConfirmed bool) ([]*domain.GuestParticipation, error) {
	out := make([]*domain.GuestParticipation, 0, len(f.participations))
	for _, p := range f.participations {
		if onlyConfirmed && !p.Confirmed {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeParticipationRepo) ListByGuest(_ context.Context, guestID int64) ([]*domain.GuestParticipation, error) {
	if p, ok := f.participations[guestID]; ok {
		return []*domain.GuestParticipation{p}, nil
	}
	return nil, nil
}

func (f *fakeParticipationRepo) CountByReservation(_ context.Context, _ int64) (*domain.GuestCounts, error) {
	counts := &domain.GuestCounts{}
	for _, p := range f.participations {
		counts.Total++
		if p.Confirmed {
			counts.Confirmed++
		}
		if p.Attended {
			counts.Attended++
		}
	}
	return counts, nil
}

type fakePersonClient struct {
	person *personservice.Person
}

func (f *fakePersonClient) GetPerson(_ context.Context, _ int64) (*personservice.Person, error) {
	return f.person, nil
}

type fakeFacilityClient struct {
	court *facilityservice.Court
}

func (f *fakeFacilityClient) GetCourt(_ context.Context, _ int64) (*facilityservice.Court, error) {
	return f.court, nil
}

type fakeIssuer struct {
	issued []int64
}

func (f *fakeIssuer) IssueForPerson(_ context.Context, _, personID int64) error {
	f.issued = append(f.issued, personID)
	return nil
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

func newConfirmFixture(confirmedCount, capacity int) (*Service, *fakeParticipationRepo, *fakeAssocRepo, *fakeIssuer) {
	reservations := &fakeReservationRepo{
		res: &domain.Reservation{ID: 1, ClientID: 10, Status: domain.StatusConfirmed},
	}
	assocs := &fakeAssocRepo{
		assocs: []*domain.CourtAssociation{
			{ReservationID: 1, CourtID: 5, DisciplineID: 2, Amount: 1500, ConfirmedGuestCount: confirmedCount},
		},
	}
	participations := &fakeParticipationRepo{
		participations: map[int64]*domain.GuestParticipation{
			99: {ReservationID: 1, GuestID: 99},
		},
	}
	persons := &fakePersonClient{
		person: &personservice.Person{ID: 99, DisplayName: "Гость", Kind: personservice.KindGuest, Active: true},
	}
	facilities := &fakeFacilityClient{
		court: &facilityservice.Court{ID: 5, Name: "Корт 5", HourlyRate: 1500, Capacity: capacity, Active: true},
	}
	issuer := &fakeIssuer{}

	svc := NewService(reservations, assocs, participations, persons, facilities, issuer, passTxManager{}, nopLogger{})
	return svc, participations, assocs, issuer
}

func TestConfirmMarksConfirmedAndNotified(t *testing.T) {
	svc, participations, assocs, issuer := newConfirmFixture(0, 4)

	resp, err := svc.Confirm(context.Background(), 1, 99)

	require.NoError(t, err)
	assert.True(t, resp.Confirmed)
	assert.True(t, resp.Notified, "confirmation also marks the guest as notified")

	stored := participations.participations[99]
	assert.True(t, stored.Confirmed)
	assert.True(t, stored.Notified)

	require.Len(t, assocs.increments, 1)
	assert.Equal(t, domain.AssociationKey{ReservationID: 1, CourtID: 5, DisciplineID: 2}, assocs.increments[0])

	assert.Equal(t, []int64{99}, issuer.issued)
}

func TestConfirmCapacityExceeded(t *testing.T) {
	// Вместимость 3: место клиента плюс два гостя, счётчик уже на потолке
	svc, participations, assocs, issuer := newConfirmFixture(2, 3)

	_, err := svc.Confirm(context.Background(), 1, 99)

	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.False(t, participations.participations[99].Confirmed)
	assert.Empty(t, assocs.increments)
	assert.Empty(t, issuer.issued)
}

func TestConfirmAlreadyConfirmed(t *testing.T) {
	svc, participations, _, _ := newConfirmFixture(1, 4)
	participations.participations[99].Confirmed = true

	_, err := svc.Confirm(context.Background(), 1, 99)

	require.ErrorIs(t, err, ErrAlreadyConfirmed)
}

func TestConfirmInactiveReservation(t *testing.T) {
	svc, _, _, _ := newConfirmFixture(0, 4)
	svc.reservationRepo.(*fakeReservationRepo).res.Status = domain.StatusPending

	_, err := svc.Confirm(context.Background(), 1, 99)

	require.ErrorIs(t, err, ErrReservationNotActive)
}
