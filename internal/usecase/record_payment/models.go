package record_payment

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Request модель запроса на запись платежа
type Request struct {
	ReservationID int64     // ID бронирования
	ClientID      int64     // ID плательщика
	Amount        float64   // Сумма платежа
	PaidAt        time.Time // Момент оплаты
	Method        string    // Способ оплаты (card, cash, transfer)
	Status        string    // Статус платежа (pending, confirmed)
	ReferenceCode string    // Внешний референс платёжного контура
	Description   *string   // Описание (опционально)
}

// Response модель ответа с записанным платежом
type Response struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservationId"`
	ClientID      int64     `json:"clientId"`
	Amount        float64   `json:"amount"`
	PaidAt        time.Time `json:"paidAt"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	ReferenceCode string    `json:"referenceCode"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PaymentListResponse ответ со списком платежей бронирования
type PaymentListResponse struct {
	Payments []Response `json:"payments"`
}

// fromDomainPayment конвертирует domain модель в DTO
func fromDomainPayment(p *domain.Payment) Response {
	return Response{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		ClientID:      p.ClientID,
		Amount:        p.Amount,
		PaidAt:        p.PaidAt,
		Method:        p.Method,
		Status:        string(p.Status),
		ReferenceCode: p.ReferenceCode,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
	}
}
