package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID     int64            // ID клиента-владельца
	CourtID      int64            // ID корта
	DisciplineID int64            // ID дисциплины
	Date         time.Time        // Дата бронирования (без времени)
	StartTime    types.TimeString // Время начала (например, "10:00")
	EndTime      types.TimeString // Время конца (например, "11:30")
	Notes        *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	ClientID        int64            // ID клиента
	CourtID         int64            // ID корта
	DisciplineID    int64            // ID дисциплины
	ReservationDate time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время конца
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	// Данные связки корта
	CourtName  string  // Название корта
	HourlyRate float64 // Почасовая ставка корта
	Amount     float64 // Стоимость интервала
	Notes      *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
