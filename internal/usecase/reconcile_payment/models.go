package reconcile_payment

// Request модель запроса на сверку платежей бронирования
type Request struct {
	ReservationID int64 // ID бронирования
}

// Response модель результата сверки
type Response struct {
	ReservationID  int64   `json:"reservationId"`
	ExpectedAmount float64 `json:"expectedAmount"` // Сумма связок кортов
	TotalPaid      float64 `json:"totalPaid"`      // Сумма подтверждённых платежей
	Balance        float64 `json:"balance"`        // ExpectedAmount - TotalPaid
	FullyPaid      bool    `json:"fullyPaid"`
	Status         string  `json:"status"` // Статус бронирования после сверки

	// Бронирование подтверждено этой сверкой
	Confirmed bool `json:"confirmed"`
}
