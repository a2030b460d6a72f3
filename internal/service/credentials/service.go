package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	credentialRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/credential"
	participationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/participation"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	facilityClient "github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	personClient "github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
	"github.com/m04kA/SMC-CourtService/internal/service/credentials/models"
)

// Service сервис выдачи и проверки пропусков (QR-учётных данных)
type Service struct {
	reservationRepo   ReservationRepository
	assocRepo         AssociationRepository
	participationRepo ParticipationRepository
	credentialRepo    CredentialRepository
	facilityClient    FacilityServiceClient
	personClient      PersonServiceClient
	qrEncoder         QREncoderClient
	txManager         TransactionManager
	logger            Logger
}

// NewService создает новый экземпляр сервиса пропусков
func NewService(
	reservationRepo ReservationRepository,
	assocRepo AssociationRepository,
	participationRepo ParticipationRepository,
	credentialRepo CredentialRepository,
	facilityClient FacilityServiceClient,
	personClient PersonServiceClient,
	qrEncoder QREncoderClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo:   reservationRepo,
		assocRepo:         assocRepo,
		participationRepo: participationRepo,
		credentialRepo:    credentialRepo,
		facilityClient:    facilityClient,
		personClient:      personClient,
		qrEncoder:         qrEncoder,
		txManager:         txManager,
		logger:            logger,
	}
}

// Issue выдаёт пропуск участнику бронирования.
// Выдача идемпотентна: повторный запрос для той же пары
// (бронирование, персона) возвращает уже выданный действующий пропуск.
// Рендеринг QR-изображения выполняется после сохранения, его ошибка
// не отменяет выдачу.
func (s *Service) Issue(ctx context.Context, reservationID int64, req *models.IssueCredentialRequest) (*models.CredentialResponse, error) {
	s.logger.Info("Issue: issuing credential for person=%d reservation=%d", req.PersonID, reservationID)

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Issue: reservation=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Issue: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Issue - repository error: %v", ErrInternal, err)
	}

	if !res.IsActive() {
		s.logger.Warn("Issue: reservation=%d is not active, status=%s", reservationID, res.Status)
		return nil, ErrReservationNotActive
	}

	isClient := req.PersonID == res.ClientID
	if !isClient {
		// Не клиент - пропуск положен только приглашённому гостю
		if _, err := s.participationRepo.Get(ctx, reservationID, req.PersonID); err != nil {
			if errors.Is(err, participationRepo.ErrParticipationNotFound) {
				s.logger.Warn("Issue: person=%d is not a participant of reservation=%d", req.PersonID, reservationID)
				return nil, ErrNotParticipant
			}
			s.logger.Error("Issue: repository error for reservation=%d: %v", reservationID, err)
			return nil, fmt.Errorf("%w: Issue - repository error: %v", ErrInternal, err)
		}
	}

	// Собираем содержимое пропуска до транзакции
	payload, description, err := s.buildPayload(ctx, res, req.PersonID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var issued *domain.Credential
	var reused bool

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		existing, err := s.credentialRepo.GetActiveByReservationAndPerson(ctx, reservationID, req.PersonID)
		if err != nil && !errors.Is(err, credentialRepo.ErrCredentialNotFound) {
			return fmt.Errorf("%w: Issue - repository error: %v", ErrInternal, err)
		}

		if existing != nil {
			if existing.IsValid(now) {
				issued = existing
				reused = true
				return nil
			}
			// Просроченный пропуск отзываем и выдаём новый
			if err := s.credentialRepo.Deactivate(ctx, existing.ID); err != nil {
				return fmt.Errorf("%w: Issue - deactivate error: %v", ErrInternal, err)
			}
		}

		c := &domain.Credential{
			Code:          uuid.NewString(),
			ReservationID: reservationID,
			PersonID:      req.PersonID,
			IsClient:      isClient,
			Description:   &description,
			GeneratedAt:   now,
			ExpiresAt:     now.AddDate(0, 0, domain.CredentialTTLDays),
			Active:        true,
		}

		issued, err = s.credentialRepo.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("%w: Issue - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Issue: failed for person=%d reservation=%d: %v", req.PersonID, reservationID, err)
		return nil, err
	}

	if reused {
		s.logger.Info("Issue: reusing active credential id=%d for person=%d reservation=%d",
			issued.ID, req.PersonID, reservationID)
		return models.FromDomainCredential(issued), nil
	}

	// Рендерим QR после сохранения, неудача только логируется
	content, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Issue: failed to marshal payload for credential id=%d: %v", issued.ID, err)
	} else {
		imageURL, err := s.qrEncoder.Encode(ctx, string(content), issued.Code)
		if err != nil {
			s.logger.Error("Issue: failed to render QR for credential id=%d: %v", issued.ID, err)
		} else if err := s.credentialRepo.UpdateImageURL(ctx, issued.ID, imageURL); err != nil {
			s.logger.Error("Issue: failed to store image URL for credential id=%d: %v", issued.ID, err)
		} else {
			issued.ImageURL = &imageURL
		}
	}

	s.logger.Info("Issue: successfully issued credential id=%d for person=%d reservation=%d",
		issued.ID, req.PersonID, reservationID)
	return models.FromDomainCredential(issued), nil
}

// IssueForPerson выдаёт пропуск участнику, отбрасывая ответ.
// Используется при веерной выдаче после подтверждения оплаты или гостя.
func (s *Service) IssueForPerson(ctx context.Context, reservationID, personID int64) error {
	_, err := s.Issue(ctx, reservationID, &models.IssueCredentialRequest{PersonID: personID})
	return err
}

// ValidateByCode проверяет пропуск по коду
func (s *Service) ValidateByCode(ctx context.Context, code string) (*models.ValidationResponse, error) {
	s.logger.Info("ValidateByCode: validating credential code=%s", code)

	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	c, err := s.credentialRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, credentialRepo.ErrCredentialNotFound) {
			s.logger.Warn("ValidateByCode: credential code=%s not found", code)
			return nil, ErrCredentialNotFound
		}
		s.logger.Error("ValidateByCode: repository error: %v", err)
		return nil, fmt.Errorf("%w: ValidateByCode - repository error: %v", ErrInternal, err)
	}

	if !c.Active {
		s.logger.Warn("ValidateByCode: credential id=%d is not active", c.ID)
		return nil, ErrCredentialInactive
	}

	if c.IsExpired(time.Now()) {
		s.logger.Warn("ValidateByCode: credential id=%d is expired", c.ID)
		return nil, ErrCredentialExpired
	}

	s.logger.Info("ValidateByCode: credential id=%d is valid", c.ID)
	return &models.ValidationResponse{
		Valid:         true,
		ReservationID: c.ReservationID,
		PersonID:      c.PersonID,
		ExpiresAt:     c.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// GetByCode получает пропуск по коду
func (s *Service) GetByCode(ctx context.Context, code string) (*models.CredentialResponse, error) {
	s.logger.Info("GetByCode: fetching credential code=%s", code)

	c, err := s.credentialRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, credentialRepo.ErrCredentialNotFound) {
			s.logger.Warn("GetByCode: credential code=%s not found", code)
			return nil, ErrCredentialNotFound
		}
		s.logger.Error("GetByCode: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCredential(c), nil
}

// ListByReservation получает пропуска бронирования
func (s *Service) ListByReservation(ctx context.Context, reservationID int64) (*models.CredentialListResponse, error) {
	s.logger.Info("ListByReservation: fetching credentials for reservation=%d", reservationID)

	// Проверяем существование бронирования, чтобы отличить пустой список от 404
	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("ListByReservation: reservation=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("ListByReservation: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	credentials, err := s.credentialRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		s.logger.Error("ListByReservation: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByReservation: successfully fetched %d credentials for reservation=%d",
		len(credentials), reservationID)
	return models.FromDomainCredentialList(credentials), nil
}

// ListByPerson получает пропуска участника
func (s *Service) ListByPerson(ctx context.Context, personID int64) (*models.CredentialListResponse, error) {
	s.logger.Info("ListByPerson: fetching credentials for person=%d", personID)

	credentials, err := s.credentialRepo.ListByPerson(ctx, personID)
	if err != nil {
		s.logger.Error("ListByPerson: repository error for person=%d: %v", personID, err)
		return nil, fmt.Errorf("%w: ListByPerson - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByPerson: successfully fetched %d credentials for person=%d", len(credentials), personID)
	return models.FromDomainCredentialList(credentials), nil
}

// Deactivate отзывает пропуск
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating credential id=%d", id)

	if err := s.credentialRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, credentialRepo.ErrCredentialNotFound) {
			s.logger.Warn("Deactivate: credential id=%d not found", id)
			return ErrCredentialNotFound
		}
		s.logger.Error("Deactivate: repository error for credential id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated credential id=%d", id)
	return nil
}

// Вспомогательные методы

// buildPayload собирает содержимое пропуска и его описание
func (s *Service) buildPayload(ctx context.Context, res *domain.Reservation, personID int64) (*domain.CredentialPayload, string, error) {
	assocs, err := s.assocRepo.ListByReservation(ctx, res.ID)
	if err != nil {
		s.logger.Error("buildPayload: associations error for reservation=%d: %v", res.ID, err)
		return nil, "", fmt.Errorf("%w: buildPayload - associations error: %v", ErrInternal, err)
	}
	if len(assocs) == 0 {
		s.logger.Warn("buildPayload: reservation=%d has no associated court", res.ID)
		return nil, "", ErrNoCourtAssociated
	}
	assoc := assocs[0]

	court, err := s.facilityClient.GetCourt(ctx, assoc.CourtID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrCourtNotFound) {
			s.logger.Warn("buildPayload: court=%d not found", assoc.CourtID)
			return nil, "", ErrNoCourtAssociated
		}
		s.logger.Error("buildPayload: failed to get court=%d: %v", assoc.CourtID, err)
		return nil, "", fmt.Errorf("%w: buildPayload - failed to get court: %v", ErrInternal, err)
	}

	client, err := s.getPerson(ctx, res.ClientID)
	if err != nil {
		return nil, "", err
	}

	participant := client
	if personID != res.ClientID {
		participant, err = s.getPerson(ctx, personID)
		if err != nil {
			return nil, "", err
		}
	}

	payload := &domain.CredentialPayload{
		ReservationID:   res.ID,
		CourtID:         court.ID,
		CourtName:       court.Name,
		ClientName:      client.DisplayName,
		ParticipantName: participant.DisplayName,
		Date:            res.ReservationDate.Format(domain.DateFormat),
		StartTime:       res.StartTime.String(),
		EndTime:         res.EndTime.String(),
		Amount:          assoc.Amount,
	}

	description := fmt.Sprintf("Пропуск: %s, корт %s, %s %s - %s",
		participant.DisplayName, court.Name, payload.Date, payload.StartTime, payload.EndTime)

	return payload, description, nil
}

// getPerson получает персону из PersonService
func (s *Service) getPerson(ctx context.Context, personID int64) (*personClient.Person, error) {
	person, err := s.personClient.GetPerson(ctx, personID)
	if err != nil {
		if errors.Is(err, personClient.ErrPersonNotFound) {
			s.logger.Warn("getPerson: person=%d not found", personID)
			return nil, ErrPersonNotFound
		}
		s.logger.Error("getPerson: failed to get person=%d: %v", personID, err)
		return nil, fmt.Errorf("%w: getPerson - failed to get person: %v", ErrInternal, err)
	}

	return person, nil
}
