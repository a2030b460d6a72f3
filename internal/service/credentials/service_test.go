package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	credentialRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/credential"
	participationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/participation"
	"github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	personClient "github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
	"github.com/m04kA/SMC-CourtService/internal/service/credentials/models"
)

type fakeReservationRepo struct {
	res *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	return f.res, nil
}

type fakeAssocRepo struct {
	assocs []*domain.CourtAssociation
}

func (f *fakeAssocRepo) ListByReservation(_ context.Context, _ int64) ([]*domain.CourtAssociation, error) {
	return f.assocs, nil
}

type fakeParticipationRepo struct {
	participations map[int64]*domain.GuestParticipation
}

func (f *fakeParticipationRepo) Get(_ context.Context, _, guestID int64) (*domain.GuestParticipation, error) {
	p, ok := f.participations[guestID]
	if !ok {
		return nil, participationRepo.ErrParticipationNotFound
	}
	return p, nil
}

type fakeCredentialRepo struct {
	nextID      int64
	credentials map[int64]*domain.Credential
	creates     int
}

func (f *fakeCredentialRepo) Create(_ context.Context, c *domain.Credential) (*domain.Credential, error) {
	f.nextID++
	f.creates++
	stored := *c
	stored.ID = f.nextID
	f.credentials[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeCredentialRepo) GetByCode(_ context.Context, code string) (*domain.Credential, error) {
	for _, c := range f.credentials {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, credentialRepo.ErrCredentialNotFound
}

func (f *fakeCredentialRepo) GetActiveByReservationAndPerson(_ context.Context, reservationID, personID int64) (*domain.Credential, error) {
	for _, c := range f.credentials {
		if c.ReservationID == reservationID && c.PersonID == personID && c.Active {
			return c, nil
		}
	}
	return nil, credentialRepo.ErrCredentialNotFound
}

func (f *fakeCredentialRepo) ListByReservation(_ context.Context, reservationID int64) ([]*domain.Credential, error) {
	var out []*domain.Credential
	for _, c := range f.credentials {
		if c.ReservationID == reservationID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCredentialRepo) ListByPerson(_ context.Context, personID int64) ([]*domain.Credential, error) {
	var out []*domain.Credential
	for _, c := range f.credentials {
		if c.PersonID == personID && c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCredentialRepo) UpdateImageURL(_ context.Context, id int64, imageURL string) error {
	f.credentials[id].ImageURL = &imageURL
	return nil
}

func (f *fakeCredentialRepo) Deactivate(_ context.Context, id int64) error {
	f.credentials[id].Active = false
	return nil
}

type fakeFacilityClient struct {
	court *facilityservice.Court
}

func (f *fakeFacilityClient) GetCourt(_ context.Context, _ int64) (*facilityservice.Court, error) {
	return f.court, nil
}

type fakePersonClient struct {
	persons map[int64]*personClient.Person
}

func (f *fakePersonClient) GetPerson(_ context.Context, personID int64) (*personClient.Person, error) {
	p, ok := f.persons[personID]
	if !ok {
		return nil, personClient.ErrPersonNotFound
	}
	return p, nil
}

type fakeQREncoder struct{}

func (fakeQREncoder) Encode(_ context.Context, _ string, fileName string) (string, error) {
	return "http://images.local/" + fileName + ".png", nil
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

func newIssueFixture() (*Service, *fakeCredentialRepo) {
	reservations := &fakeReservationRepo{
		res: &domain.Reservation{
			ID:        1,
			ClientID:  10,
			Status:    domain.StatusConfirmed,
			StartTime: "10:00",
			EndTime:   "11:30",
		},
	}
	assocs := &fakeAssocRepo{
		assocs: []*domain.CourtAssociation{
			{ReservationID: 1, CourtID: 5, DisciplineID: 2, Amount: 2250},
		},
	}
	participations := &fakeParticipationRepo{
		participations: map[int64]*domain.GuestParticipation{
			99: {ReservationID: 1, GuestID: 99, Confirmed: false},
		},
	}
	credentials := &fakeCredentialRepo{credentials: map[int64]*domain.Credential{}}
	facilities := &fakeFacilityClient{
		court: &facilityservice.Court{ID: 5, Name: "Корт 5", HourlyRate: 1500, Capacity: 4, Active: true},
	}
	persons := &fakePersonClient{
		persons: map[int64]*personClient.Person{
			10: {ID: 10, DisplayName: "Клиент", Kind: personClient.KindClient, Active: true},
			99: {ID: 99, DisplayName: "Гость", Kind: personClient.KindGuest, Active: true},
		},
	}

	svc := NewService(reservations, assocs, participations, credentials, facilities, persons,
		fakeQREncoder{}, passTxManager{}, nopLogger{})
	return svc, credentials
}

func TestIssueIdempotentPerReservationAndPerson(t *testing.T) {
	svc, credentials := newIssueFixture()

	first, err := svc.Issue(context.Background(), 1, &models.IssueCredentialRequest{PersonID: 10})
	require.NoError(t, err)
	assert.True(t, first.IsClient)
	assert.True(t, first.Active)
	assert.NotEmpty(t, first.Code)

	// Повторная выдача возвращает уже действующий пропуск
	second, err := svc.Issue(context.Background(), 1, &models.IssueCredentialRequest{PersonID: 10})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, 1, credentials.creates)
}

func TestIssueRegisteredUnconfirmedGuest(t *testing.T) {
	svc, credentials := newIssueFixture()

	// Приглашённый, но ещё не подтверждённый гость получает пропуск
	resp, err := svc.Issue(context.Background(), 1, &models.IssueCredentialRequest{PersonID: 99})

	require.NoError(t, err)
	assert.False(t, resp.IsClient)
	assert.Equal(t, int64(99), resp.PersonID)
	assert.Equal(t, 1, credentials.creates)
}

func TestIssueNotParticipant(t *testing.T) {
	svc, credentials := newIssueFixture()

	_, err := svc.Issue(context.Background(), 1, &models.IssueCredentialRequest{PersonID: 77})

	require.ErrorIs(t, err, ErrNotParticipant)
	assert.Zero(t, credentials.creates)
}

func TestIssueInactiveReservation(t *testing.T) {
	svc, _ := newIssueFixture()
	svc.reservationRepo.(*fakeReservationRepo).res.Status = domain.StatusPending

	_, err := svc.Issue(context.Background(), 1, &models.IssueCredentialRequest{PersonID: 10})

	require.ErrorIs(t, err, ErrReservationNotActive)
}
