package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Request модели

// IssueCredentialRequest запрос на выдачу пропуска участнику
type IssueCredentialRequest struct {
	PersonID int64 `json:"personId"`
}

// Response модели

// CredentialResponse ответ с данными пропуска
type CredentialResponse struct {
	ID            int64   `json:"id"`
	Code          string  `json:"code"`
	ReservationID int64   `json:"reservationId"`
	PersonID      int64   `json:"personId"`
	IsClient      bool    `json:"isClient"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	Description   *string `json:"description,omitempty"`

	GeneratedAt time.Time `json:"generatedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Active      bool      `json:"active"`
}

// CredentialListResponse ответ со списком пропусков
type CredentialListResponse struct {
	Credentials []CredentialResponse `json:"credentials"`
}

// ValidationResponse результат проверки пропуска по коду
type ValidationResponse struct {
	Valid         bool   `json:"valid"`
	ReservationID int64  `json:"reservationId"`
	PersonID      int64  `json:"personId"`
	ExpiresAt     string `json:"expiresAt"` // ISO 8601 format
}

// Методы конвертации

// FromDomainCredential конвертирует domain модель в DTO
func FromDomainCredential(c *domain.Credential) *CredentialResponse {
	if c == nil {
		return nil
	}

	return &CredentialResponse{
		ID:            c.ID,
		Code:          c.Code,
		ReservationID: c.ReservationID,
		PersonID:      c.PersonID,
		IsClient:      c.IsClient,
		ImageURL:      c.ImageURL,
		Description:   c.Description,
		GeneratedAt:   c.GeneratedAt,
		ExpiresAt:     c.ExpiresAt,
		Active:        c.Active,
	}
}

// FromDomainCredentialList конвертирует список domain моделей в DTO
func FromDomainCredentialList(credentials []*domain.Credential) *CredentialListResponse {
	if credentials == nil {
		return &CredentialListResponse{
			Credentials: []CredentialResponse{},
		}
	}

	resp := &CredentialListResponse{
		Credentials: make([]CredentialResponse, len(credentials)),
	}

	for i, c := range credentials {
		if cResp := FromDomainCredential(c); cResp != nil {
			resp.Credentials[i] = *cResp
		}
	}

	return resp
}
